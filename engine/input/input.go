// Package input defines the input events a window delivers and the translation from GLFW codes
// into the engine constants of package common.
package input

import "github.com/Carmen-Shannon/oxy-constants/common"

// KeyEvent is a keyboard press, repeat or release.
type KeyEvent struct {
	// Key is the engine key code, KeyUnknown when GLFW reports a key the engine has no code for.
	Key common.Key

	// Location tells the left and right variants of modifier keys apart.
	Location common.KeyLocation

	// Modifiers holds the modifier keys held when the event fired.
	Modifiers common.KeyModifierMask

	// Pressed is true for press and repeat, false for release.
	Pressed bool

	// Echo is true when the event is an auto-repeat of a held key.
	Echo bool
}

// Keycode returns the key combined with its modifiers, suitable for shortcut matching.
//
// Returns:
//   - int64: the combined key code
func (e KeyEvent) Keycode() int64 {
	return e.Key.WithModifiers(e.Modifiers)
}

// String renders the event's combined key code, e.g. "Shift+Ctrl+A".
func (e KeyEvent) String() string {
	return common.KeycodeString(e.Keycode())
}

// MouseButtonEvent is a mouse button press or release. Wheel motion arrives as a press of a wheel button.
type MouseButtonEvent struct {
	// Button is the button that changed state.
	Button common.MouseButton

	// ButtonMask is the set of buttons held after this event was applied.
	ButtonMask common.MouseButtonMask

	// Modifiers holds the modifier keys held when the event fired.
	Modifiers common.KeyModifierMask

	// X and Y are the cursor position in window pixels.
	X, Y int32

	// Pressed is true for press, false for release.
	Pressed bool

	// Factor is the wheel delta magnitude for wheel buttons, 0 otherwise.
	Factor float32
}

// MouseMotionEvent is a cursor movement.
type MouseMotionEvent struct {
	// X and Y are the cursor position in window pixels.
	X, Y int32

	// RelX and RelY are the movement since the previous motion event.
	RelX, RelY int32

	// ButtonMask is the set of buttons held during the motion.
	ButtonMask common.MouseButtonMask
}

// JoyButtonEvent is a gamepad button press or release.
type JoyButtonEvent struct {
	// Device is the joystick slot the gamepad is connected to.
	Device int

	// Button is the SDL-layout button.
	Button common.JoyButton

	// Pressed is true for press, false for release.
	Pressed bool
}

// JoyAxisEvent is a gamepad axis change.
type JoyAxisEvent struct {
	// Device is the joystick slot the gamepad is connected to.
	Device int

	// Axis is the axis that moved.
	Axis common.JoyAxis

	// Value is -1..1 for sticks and 0..1 for triggers.
	Value float32
}

// ButtonTracker keeps the set of mouse buttons currently held.
// It is not safe for concurrent use; windows drive it from their event thread.
type ButtonTracker struct {
	mask common.MouseButtonMask
}

// Press records a button as held and returns the resulting mask.
// Wheel buttons are momentary and never enter the mask.
//
// Parameters:
//   - b: the button pressed
//
// Returns:
//   - common.MouseButtonMask: the held set after the press
func (t *ButtonTracker) Press(b common.MouseButton) common.MouseButtonMask {
	if !b.IsWheel() {
		t.mask |= b.Mask()
	}
	return t.mask
}

// Release records a button as released and returns the resulting mask.
//
// Parameters:
//   - b: the button released
//
// Returns:
//   - common.MouseButtonMask: the held set after the release
func (t *ButtonTracker) Release(b common.MouseButton) common.MouseButtonMask {
	t.mask &^= b.Mask()
	return t.mask
}

// Mask returns the held set.
func (t *ButtonTracker) Mask() common.MouseButtonMask {
	return t.mask
}

// Reset clears the held set, e.g. when the window loses focus.
func (t *ButtonTracker) Reset() {
	t.mask = 0
}
