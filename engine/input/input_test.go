package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromGLFW(t *testing.T) {
	tests := []struct {
		name string
		in   glfw.Key
		want common.Key
	}{
		{"letter", glfw.KeyA, common.KeyA},
		{"digit", glfw.Key7, common.Key7},
		{"space", glfw.KeySpace, common.KeySpace},
		{"punctuation", glfw.KeySemicolon, common.KeySemicolon},
		{"grave", glfw.KeyGraveAccent, common.KeyQuoteLeft},
		{"escape", glfw.KeyEscape, common.KeyEscape},
		{"print screen", glfw.KeyPrintScreen, common.KeyPrint},
		{"f1", glfw.KeyF1, common.KeyF1},
		{"f25", glfw.KeyF25, common.KeyF25},
		{"keypad digit", glfw.KeyKP4, common.KeyKp4},
		{"keypad enter", glfw.KeyKPEnter, common.KeyKpEnter},
		{"left shift", glfw.KeyLeftShift, common.KeyShift},
		{"right super", glfw.KeyRightSuper, common.KeyMeta},
		{"world key", glfw.KeyWorld1, common.KeyUnknown},
		{"unknown", glfw.KeyUnknown, common.KeyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromGLFW(tt.in))
		})
	}
}

func TestKeyLocationFromGLFW(t *testing.T) {
	assert.Equal(t, common.KeyLocationLeft, KeyLocationFromGLFW(glfw.KeyLeftControl))
	assert.Equal(t, common.KeyLocationRight, KeyLocationFromGLFW(glfw.KeyRightAlt))
	assert.Equal(t, common.KeyLocationUnspecified, KeyLocationFromGLFW(glfw.KeyA))
}

func TestModifiersFromGLFW(t *testing.T) {
	t.Run("ctrl is the command modifier", func(t *testing.T) {
		m := modifiersFromGLFW(glfw.ModControl|glfw.ModShift, false)
		assert.Equal(t, common.KeyMaskCtrl|common.KeyMaskCmdOrCtrl|common.KeyMaskShift, m)

		m = modifiersFromGLFW(glfw.ModSuper, false)
		assert.Equal(t, common.KeyMaskMeta, m)
	})

	t.Run("meta is the command modifier", func(t *testing.T) {
		m := modifiersFromGLFW(glfw.ModSuper|glfw.ModAlt, true)
		assert.Equal(t, common.KeyMaskMeta|common.KeyMaskCmdOrCtrl|common.KeyMaskAlt, m)

		m = modifiersFromGLFW(glfw.ModControl, true)
		assert.Equal(t, common.KeyMaskCtrl, m)
	})

	t.Run("lock keys are ignored", func(t *testing.T) {
		assert.Zero(t, modifiersFromGLFW(glfw.ModCapsLock|glfw.ModNumLock, false))
	})
}

func TestKeyEventKeycode(t *testing.T) {
	e := KeyEvent{Key: common.KeyS, Modifiers: common.KeyMaskCtrl | common.KeyMaskShift, Pressed: true}
	key, mods := common.SplitKeycode(e.Keycode())
	assert.Equal(t, common.KeyS, key)
	assert.Equal(t, common.KeyMaskCtrl|common.KeyMaskShift, mods)
	assert.Equal(t, "Shift+Ctrl+S", e.String())
}

func TestMouseButtonFromGLFW(t *testing.T) {
	assert.Equal(t, common.MouseButtonLeft, MouseButtonFromGLFW(glfw.MouseButtonLeft))
	assert.Equal(t, common.MouseButtonRight, MouseButtonFromGLFW(glfw.MouseButtonRight))
	assert.Equal(t, common.MouseButtonMiddle, MouseButtonFromGLFW(glfw.MouseButtonMiddle))
	assert.Equal(t, common.MouseButtonXButton1, MouseButtonFromGLFW(glfw.MouseButton4))
	assert.Equal(t, common.MouseButtonXButton2, MouseButtonFromGLFW(glfw.MouseButton5))
	assert.Equal(t, common.MouseButtonNone, MouseButtonFromGLFW(glfw.MouseButton8))
}

func TestButtonTracker(t *testing.T) {
	var tr ButtonTracker
	assert.Equal(t, common.MouseButtonMaskLeft, tr.Press(common.MouseButtonLeft))
	assert.Equal(t, common.MouseButtonMaskLeft|common.MouseButtonMaskMbXButton1, tr.Press(common.MouseButtonXButton1))

	// wheel buttons never stay held
	assert.Equal(t, common.MouseButtonMaskLeft|common.MouseButtonMaskMbXButton1, tr.Press(common.MouseButtonWheelUp))

	assert.Equal(t, common.MouseButtonMaskMbXButton1, tr.Release(common.MouseButtonLeft))
	assert.Equal(t, common.MouseButtonMaskMbXButton1, tr.Release(common.MouseButtonNone))

	tr.Reset()
	assert.Zero(t, tr.Mask())
}

func TestWheelEvents(t *testing.T) {
	held := common.MouseButtonMaskRight
	events := WheelEvents(-0.5, 2, 10, 20, held, common.KeyMaskShift)
	require.Len(t, events, 2)

	assert.Equal(t, common.MouseButtonWheelUp, events[0].Button)
	assert.Equal(t, float32(2), events[0].Factor)
	assert.True(t, events[0].Pressed)
	assert.Equal(t, held, events[0].ButtonMask)
	assert.Equal(t, int32(10), events[0].X)
	assert.Equal(t, int32(20), events[0].Y)

	assert.Equal(t, common.MouseButtonWheelLeft, events[1].Button)
	assert.Equal(t, float32(0.5), events[1].Factor)
	assert.Equal(t, common.KeyMaskShift, events[1].Modifiers)

	assert.Empty(t, WheelEvents(0, 0, 0, 0, 0, 0))

	events = WheelEvents(1, -1, 0, 0, 0, 0)
	require.Len(t, events, 2)
	assert.Equal(t, common.MouseButtonWheelDown, events[0].Button)
	assert.Equal(t, common.MouseButtonWheelRight, events[1].Button)
}

func TestJoyButtonFromGLFW(t *testing.T) {
	tests := []struct {
		in   glfw.GamepadButton
		want common.JoyButton
	}{
		{glfw.ButtonA, common.JoyButtonA},
		{glfw.ButtonY, common.JoyButtonY},
		{glfw.ButtonLeftBumper, common.JoyButtonLeftShoulder},
		{glfw.ButtonGuide, common.JoyButtonGuide},
		{glfw.ButtonRightThumb, common.JoyButtonRightStick},
		{glfw.ButtonDpadLeft, common.JoyButtonDpadLeft},
		{glfw.GamepadButton(-1), common.JoyButtonInvalid},
		{glfw.GamepadButton(99), common.JoyButtonInvalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoyButtonFromGLFW(tt.in), "button %d", tt.in)
	}
}

func TestJoyAxisFromGLFW(t *testing.T) {
	assert.Equal(t, common.JoyAxisLeftX, JoyAxisFromGLFW(glfw.AxisLeftX))
	assert.Equal(t, common.JoyAxisRightY, JoyAxisFromGLFW(glfw.AxisRightY))
	assert.Equal(t, common.JoyAxisTriggerLeft, JoyAxisFromGLFW(glfw.AxisLeftTrigger))
	assert.Equal(t, common.JoyAxisTriggerRight, JoyAxisFromGLFW(glfw.AxisRightTrigger))
	assert.Equal(t, common.JoyAxisInvalid, JoyAxisFromGLFW(glfw.GamepadAxis(7)))
}

func TestDiffGamepad(t *testing.T) {
	t.Run("nil previous is a resting pad", func(t *testing.T) {
		cur := restingGamepad()
		buttons, axes := DiffGamepad(0, nil, cur)
		assert.Empty(t, buttons)
		assert.Empty(t, axes)
	})

	t.Run("button and axis changes", func(t *testing.T) {
		prev := restingGamepad()
		cur := restingGamepad()
		cur.Buttons[glfw.ButtonA] = glfw.Press
		cur.Axes[glfw.AxisLeftX] = -0.75
		cur.Axes[glfw.AxisRightTrigger] = 1

		buttons, axes := DiffGamepad(2, prev, cur)
		require.Len(t, buttons, 1)
		assert.Equal(t, JoyButtonEvent{Device: 2, Button: common.JoyButtonA, Pressed: true}, buttons[0])

		require.Len(t, axes, 2)
		assert.Equal(t, JoyAxisEvent{Device: 2, Axis: common.JoyAxisLeftX, Value: -0.75}, axes[0])
		assert.Equal(t, JoyAxisEvent{Device: 2, Axis: common.JoyAxisTriggerRight, Value: 1}, axes[1])

		// releasing reports the reverse transition
		buttons, axes = DiffGamepad(2, cur, prev)
		require.Len(t, buttons, 1)
		assert.False(t, buttons[0].Pressed)
		require.Len(t, axes, 2)
		assert.Equal(t, float32(0), axes[1].Value)
	})

	t.Run("nil current", func(t *testing.T) {
		buttons, axes := DiffGamepad(0, restingGamepad(), nil)
		assert.Nil(t, buttons)
		assert.Nil(t, axes)
	})
}
