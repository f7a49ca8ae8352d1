package registry

import (
	"math/bits"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCategories(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default())
	assert.Equal(t, len(EngineCategories()), r.Len())

	want := []string{
		"Side", "Corner", "Orientation", "ClockDirection", "HorizontalAlignment", "VerticalAlignment",
		"InlineAlignment", "EulerOrder", "Key", "KeyModifierMask", "KeyLocation", "MouseButton",
		"MouseButtonMask", "JoyButton", "JoyAxis", "MIDIMessage", "Error", "PropertyHint",
		"PropertyUsageFlags", "MethodFlags", "Variant.Type", "Variant.Operator",
	}
	assert.Equal(t, want, r.Categories())
}

func TestLookup(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		category string
		symbol   string
		want     int64
	}{
		{"key engine name", "Key", "KEY_ESCAPE", 4194305},
		{"key go name", "Key", "PageDown", 4194324},
		{"category case-insensitive", "key", "a", 65},
		{"mouse button", "MouseButton", "MOUSE_BUTTON_WHEEL_DOWN", 5},
		{"joy axis", "JoyAxis", "TriggerRight", 5},
		{"midi", "MIDIMessage", "MIDI_MESSAGE_SONG_SELECT", 243},
		{"error", "Error", "ERR_PRINTER_ON_FIRE", 48},
		{"ok", "Error", "OK", 0},
		{"property hint", "PropertyHint", "PROPERTY_HINT_LAYERS_AVOIDANCE", 37},
		{"dotted category", "Variant.Type", "TYPE_MAX", 39},
		{"operator", "variant.operator", "OP_MODULE", 12},
		{"flags expression", "KeyModifierMask", "Shift|Ctrl", 33554432 | 268435456},
		{"flags engine expression", "PropertyUsageFlags", "PROPERTY_USAGE_STORAGE|PROPERTY_USAGE_EDITOR", 6},
		{"inline alignment", "InlineAlignment", "INLINE_ALIGNMENT_BOTTOM", 14},
		{"orientation", "Orientation", "VERTICAL", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Lookup(tt.category, tt.symbol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupErrors(t *testing.T) {
	r := Default()

	_, err := r.Lookup("Keys", "A")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = r.Lookup("Key", "KEY_NOPE")
	assert.ErrorIs(t, err, common.ErrUnknownSymbol)

	// a symbol from another category is not a member
	_, err = r.Lookup("MouseButton", "KEY_ESCAPE")
	assert.ErrorIs(t, err, common.ErrUnknownSymbol)

	// "|" only composes flags categories
	_, err = r.Lookup("Key", "A|B")
	assert.ErrorIs(t, err, common.ErrUnknownSymbol)

	_, err = r.NamesOf("Nope", 0)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = r.Category("")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestNamesOf(t *testing.T) {
	r := Default()

	names, err := r.NamesOf("InlineAlignment", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"TopTo", "ToTop", "Top"}, names)

	names, err = r.NamesOf("PropertyUsageFlags", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Storage", "NoEditor"}, names)

	names, err = r.NamesOf("Key", 1)
	require.NoError(t, err)
	assert.Empty(t, names)
}

// Every declared name resolves back to the value it was listed under.
func TestEveryCategoryRoundTrips(t *testing.T) {
	r := Default()
	for _, name := range r.Categories() {
		c, err := r.Category(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for _, e := range c.Entries() {
				names := c.ValueNames(e.Value)
				require.Contains(t, names, e.Name)
				for _, n := range names {
					v, err := c.LookupValue(n)
					require.NoError(t, err)
					assert.Equal(t, e.Value, v, "%s.%s", name, n)
				}
				v, err := c.LookupValue(e.EngineName)
				require.NoError(t, err)
				assert.Equal(t, e.Value, v, "%s.%s", name, e.EngineName)
			}
		})
	}
}

func TestFlagsCategoriesCompose(t *testing.T) {
	r := Default()
	for _, name := range r.Categories() {
		c, err := r.Category(name)
		require.NoError(t, err)
		if !c.IsFlags() {
			continue
		}

		t.Run(name, func(t *testing.T) {
			var single []int64
			for _, e := range c.Entries() {
				if !e.Composite && e.Value != 0 {
					require.Equal(t, 1, bits.OnesCount64(uint64(e.Value)), "%s.%s", name, e.Name)
					single = append(single, e.Value)
				}
			}
			for _, a := range single {
				for _, b := range single {
					if a == b {
						continue
					}
					assert.Equal(t, a, (a|b)&a)
					assert.Equal(t, b, (a|b)&b)

					parsed, err := c.ParseValue(c.FormatValue(a|b, false))
					require.NoError(t, err)
					assert.Equal(t, a|b, parsed)
				}
			}
		})
	}
}

func TestSentinelsExceedMembers(t *testing.T) {
	r := Default()
	for _, name := range r.Categories() {
		c, err := r.Category(name)
		require.NoError(t, err)

		var limit int64
		var hasSentinel bool
		for _, e := range c.Entries() {
			if e.Sentinel && (!hasSentinel || e.Value > limit) {
				limit, hasSentinel = e.Value, true
			}
		}
		if !hasSentinel {
			continue
		}
		for _, e := range c.Entries() {
			if !e.Sentinel {
				assert.Less(t, e.Value, limit, "%s.%s", name, e.Name)
			}
		}
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(WithCategory(common.KeyEnum), WithCategories(common.MouseButtonEnum, common.ErrorEnum))
	require.NoError(t, err)
	assert.Equal(t, []string{"Key", "MouseButton", "Error"}, r.Categories())

	_, err = r.Category("JoyButton")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	empty, err := NewRegistry()
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	assert.Empty(t, empty.Categories())
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	other := common.MustEnum("key", []common.Member[int64]{
		{Name: "Only", EngineName: "ONLY", Value: 1},
	})

	_, err := NewRegistry(WithEngineCategories(), WithCategory(other))
	assert.ErrorIs(t, err, ErrDuplicateCategory)

	_, err = NewRegistry(WithCategory(nil))
	assert.Error(t, err)
}

func TestRegistryConcurrentReaders(t *testing.T) {
	r := Default()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range r.Categories() {
				c, err := r.Category(name)
				if !assert.NoError(t, err) {
					return
				}
				for _, e := range c.Entries() {
					_, err := r.Lookup(name, e.EngineName)
					assert.NoError(t, err)
				}
			}
		}()
	}
	wg.Wait()
}
