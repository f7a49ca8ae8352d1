package common

import (
	"fmt"
	"strings"
)

// ParseKeycode is the inverse of KeycodeString. It accepts "+"-joined modifiers followed by a key, e.g. "Shift+Ctrl+S"
// or "KEY_MASK_CTRL+KEY_S". Names are matched case-insensitively in either spelling.
// A lone modifier name such as "Shift" is the modifier key itself; modifier bits without a key are written "Shift+None".
//
// Parameters:
//   - s: the shortcut string
//
// Returns:
//   - int64: the key code combined with its modifier bits
//   - error: ErrUnknownSymbol if a part is not a modifier or key name
func ParseKeycode(s string) (int64, error) {
	parts := strings.Split(s, "+")
	keyPart, modParts := parts[len(parts)-1], parts[:len(parts)-1]
	if strings.TrimSpace(keyPart) == "" && len(modParts) > 0 && strings.TrimSpace(modParts[len(modParts)-1]) == "" {
		// "Ctrl++" names the Plus key
		keyPart, modParts = "Plus", modParts[:len(modParts)-1]
	}

	key, err := KeyEnum.Lookup(keyPart)
	if err != nil {
		return 0, fmt.Errorf("invalid shortcut %q: %w", s, err)
	}

	var mods KeyModifierMask
	for _, part := range modParts {
		m, err := KeyModifierMaskEnum.Lookup(part)
		if err != nil || m == 0 || m == KeyMaskModifierMask || m&KeyMaskModifierMask != m {
			return 0, fmt.Errorf("invalid shortcut %q: %w: modifier %q", s, ErrUnknownSymbol, strings.TrimSpace(part))
		}
		mods |= m
	}
	return key.WithModifiers(mods), nil
}
