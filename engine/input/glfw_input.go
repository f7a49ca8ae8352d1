package input

import (
	"math"
	"runtime"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// cmdIsMeta is true where the Command key (GLFW Super) is the primary shortcut modifier.
var cmdIsMeta = runtime.GOOS == "darwin"

// glfwSpecialKeys maps the non-printable GLFW keys to engine key codes.
// Printable GLFW keys are ASCII and are translated without a table.
//
// GLFW reference: https://www.glfw.org/docs/latest/group__keys.html
var glfwSpecialKeys = map[glfw.Key]common.Key{
	glfw.KeyEscape:       common.KeyEscape,
	glfw.KeyEnter:        common.KeyEnter,
	glfw.KeyTab:          common.KeyTab,
	glfw.KeyBackspace:    common.KeyBackspace,
	glfw.KeyInsert:       common.KeyInsert,
	glfw.KeyDelete:       common.KeyDelete,
	glfw.KeyRight:        common.KeyRight,
	glfw.KeyLeft:         common.KeyLeft,
	glfw.KeyDown:         common.KeyDown,
	glfw.KeyUp:           common.KeyUp,
	glfw.KeyPageUp:       common.KeyPageUp,
	glfw.KeyPageDown:     common.KeyPageDown,
	glfw.KeyHome:         common.KeyHome,
	glfw.KeyEnd:          common.KeyEnd,
	glfw.KeyCapsLock:     common.KeyCapsLock,
	glfw.KeyScrollLock:   common.KeyScrollLock,
	glfw.KeyNumLock:      common.KeyNumLock,
	glfw.KeyPrintScreen:  common.KeyPrint,
	glfw.KeyPause:        common.KeyPause,
	glfw.KeyKPDecimal:    common.KeyKpPeriod,
	glfw.KeyKPDivide:     common.KeyKpDivide,
	glfw.KeyKPMultiply:   common.KeyKpMultiply,
	glfw.KeyKPSubtract:   common.KeyKpSubtract,
	glfw.KeyKPAdd:        common.KeyKpAdd,
	glfw.KeyKPEnter:      common.KeyKpEnter,
	glfw.KeyKPEqual:      common.KeyEqual,
	glfw.KeyLeftShift:    common.KeyShift,
	glfw.KeyRightShift:   common.KeyShift,
	glfw.KeyLeftControl:  common.KeyCtrl,
	glfw.KeyRightControl: common.KeyCtrl,
	glfw.KeyLeftAlt:      common.KeyAlt,
	glfw.KeyRightAlt:     common.KeyAlt,
	glfw.KeyLeftSuper:    common.KeyMeta,
	glfw.KeyRightSuper:   common.KeyMeta,
	glfw.KeyMenu:         common.KeyMenu,
}

// KeyFromGLFW translates a GLFW key into an engine key code.
// Keys the engine has no code for (e.g. the non-US World keys) become KeyUnknown.
//
// Parameters:
//   - k: the GLFW key
//
// Returns:
//   - common.Key: the engine key code
func KeyFromGLFW(k glfw.Key) common.Key {
	if key, ok := glfwSpecialKeys[k]; ok {
		return key
	}
	switch {
	case k >= glfw.KeyF1 && k <= glfw.KeyF25:
		return common.KeyF1 + common.Key(k-glfw.KeyF1)
	case k >= glfw.KeyKP0 && k <= glfw.KeyKP9:
		return common.KeyKp0 + common.Key(k-glfw.KeyKP0)
	case k >= glfw.KeySpace && k <= glfw.KeyGraveAccent:
		// GLFW printable keys use the ASCII code of the unshifted US-layout character.
		if key := common.Key(k); common.KeyEnum.Contains(key) {
			return key
		}
	}
	return common.KeyUnknown
}

// KeyLocationFromGLFW reports which side of the keyboard a GLFW modifier key is on.
//
// Parameters:
//   - k: the GLFW key
//
// Returns:
//   - common.KeyLocation: Left or Right for modifier keys, Unspecified otherwise
func KeyLocationFromGLFW(k glfw.Key) common.KeyLocation {
	switch k {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return common.KeyLocationLeft
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return common.KeyLocationRight
	}
	return common.KeyLocationUnspecified
}

// ModifiersFromGLFW translates GLFW modifier bits into an engine modifier mask.
// KeyMaskCmdOrCtrl is set alongside Meta on macOS and alongside Ctrl elsewhere.
//
// Parameters:
//   - mods: the GLFW modifier bits
//
// Returns:
//   - common.KeyModifierMask: the engine modifier mask
func ModifiersFromGLFW(mods glfw.ModifierKey) common.KeyModifierMask {
	return modifiersFromGLFW(mods, cmdIsMeta)
}

func modifiersFromGLFW(mods glfw.ModifierKey, cmdIsMeta bool) common.KeyModifierMask {
	var m common.KeyModifierMask
	if mods&glfw.ModShift != 0 {
		m |= common.KeyMaskShift
	}
	if mods&glfw.ModControl != 0 {
		m |= common.KeyMaskCtrl
		if !cmdIsMeta {
			m |= common.KeyMaskCmdOrCtrl
		}
	}
	if mods&glfw.ModAlt != 0 {
		m |= common.KeyMaskAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= common.KeyMaskMeta
		if cmdIsMeta {
			m |= common.KeyMaskCmdOrCtrl
		}
	}
	return m
}

// MouseButtonFromGLFW translates a GLFW mouse button.
// GLFW buttons 4 and 5 are the back/forward side buttons; buttons 6-8 have no engine code.
//
// Parameters:
//   - b: the GLFW mouse button
//
// Returns:
//   - common.MouseButton: the engine button, MouseButtonNone when unmapped
func MouseButtonFromGLFW(b glfw.MouseButton) common.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return common.MouseButtonLeft
	case glfw.MouseButtonRight:
		return common.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return common.MouseButtonMiddle
	case glfw.MouseButton4:
		return common.MouseButtonXButton1
	case glfw.MouseButton5:
		return common.MouseButtonXButton2
	}
	return common.MouseButtonNone
}

// WheelEvents converts a GLFW scroll offset into wheel button presses.
// Positive yoff scrolls up, positive xoff scrolls right. Each axis with a non-zero offset yields one event
// whose Factor is the offset magnitude.
//
// Parameters:
//   - xoff, yoff: the GLFW scroll offsets
//   - x, y: the cursor position
//   - held: the buttons currently held
//   - mods: the modifiers currently held
//
// Returns:
//   - []MouseButtonEvent: zero, one or two wheel presses
func WheelEvents(xoff, yoff float64, x, y int32, held common.MouseButtonMask, mods common.KeyModifierMask) []MouseButtonEvent {
	var events []MouseButtonEvent
	emit := func(b common.MouseButton, delta float64) {
		events = append(events, MouseButtonEvent{
			Button:     b,
			ButtonMask: held,
			Modifiers:  mods,
			X:          x,
			Y:          y,
			Pressed:    true,
			Factor:     float32(math.Abs(delta)),
		})
	}
	switch {
	case yoff > 0:
		emit(common.MouseButtonWheelUp, yoff)
	case yoff < 0:
		emit(common.MouseButtonWheelDown, yoff)
	}
	switch {
	case xoff > 0:
		emit(common.MouseButtonWheelRight, xoff)
	case xoff < 0:
		emit(common.MouseButtonWheelLeft, xoff)
	}
	return events
}

// glfwGamepadButtons maps GLFW gamepad buttons, indexed by glfw.GamepadButton, to the SDL layout.
var glfwGamepadButtons = [...]common.JoyButton{
	glfw.ButtonA:           common.JoyButtonA,
	glfw.ButtonB:           common.JoyButtonB,
	glfw.ButtonX:           common.JoyButtonX,
	glfw.ButtonY:           common.JoyButtonY,
	glfw.ButtonLeftBumper:  common.JoyButtonLeftShoulder,
	glfw.ButtonRightBumper: common.JoyButtonRightShoulder,
	glfw.ButtonBack:        common.JoyButtonBack,
	glfw.ButtonStart:       common.JoyButtonStart,
	glfw.ButtonGuide:       common.JoyButtonGuide,
	glfw.ButtonLeftThumb:   common.JoyButtonLeftStick,
	glfw.ButtonRightThumb:  common.JoyButtonRightStick,
	glfw.ButtonDpadUp:      common.JoyButtonDpadUp,
	glfw.ButtonDpadRight:   common.JoyButtonDpadRight,
	glfw.ButtonDpadDown:    common.JoyButtonDpadDown,
	glfw.ButtonDpadLeft:    common.JoyButtonDpadLeft,
}

// JoyButtonFromGLFW translates a GLFW gamepad button into the SDL layout.
//
// Parameters:
//   - b: the GLFW gamepad button
//
// Returns:
//   - common.JoyButton: the engine button, JoyButtonInvalid when out of range
func JoyButtonFromGLFW(b glfw.GamepadButton) common.JoyButton {
	if b < 0 || int(b) >= len(glfwGamepadButtons) {
		return common.JoyButtonInvalid
	}
	return glfwGamepadButtons[b]
}

// JoyAxisFromGLFW translates a GLFW gamepad axis.
//
// Parameters:
//   - a: the GLFW gamepad axis
//
// Returns:
//   - common.JoyAxis: the engine axis, JoyAxisInvalid when out of range
func JoyAxisFromGLFW(a glfw.GamepadAxis) common.JoyAxis {
	switch a {
	case glfw.AxisLeftX:
		return common.JoyAxisLeftX
	case glfw.AxisLeftY:
		return common.JoyAxisLeftY
	case glfw.AxisRightX:
		return common.JoyAxisRightX
	case glfw.AxisRightY:
		return common.JoyAxisRightY
	case glfw.AxisLeftTrigger:
		return common.JoyAxisTriggerLeft
	case glfw.AxisRightTrigger:
		return common.JoyAxisTriggerRight
	}
	return common.JoyAxisInvalid
}

// axisValue rescales GLFW triggers from -1..1 (rest at -1) to 0..1. Sticks pass through.
func axisValue(axis common.JoyAxis, raw float32) float32 {
	if axis.IsTrigger() {
		return (raw + 1) / 2
	}
	return raw
}

// DiffGamepad compares two polled gamepad states and returns the events that lead from prev to cur.
// A nil prev is treated as a gamepad at rest: every button released, sticks centered, triggers released.
//
// Parameters:
//   - device: the joystick slot, copied into every event
//   - prev: the previously polled state, or nil
//   - cur: the newly polled state
//
// Returns:
//   - []JoyButtonEvent: one event per button whose state changed
//   - []JoyAxisEvent: one event per axis whose value changed
func DiffGamepad(device int, prev, cur *glfw.GamepadState) ([]JoyButtonEvent, []JoyAxisEvent) {
	if cur == nil {
		return nil, nil
	}
	if prev == nil {
		prev = restingGamepad()
	}

	var buttons []JoyButtonEvent
	for i := range cur.Buttons {
		was := prev.Buttons[i] == glfw.Press
		is := cur.Buttons[i] == glfw.Press
		if was == is {
			continue
		}
		buttons = append(buttons, JoyButtonEvent{
			Device:  device,
			Button:  JoyButtonFromGLFW(glfw.GamepadButton(i)),
			Pressed: is,
		})
	}

	var axes []JoyAxisEvent
	for i := range cur.Axes {
		if prev.Axes[i] == cur.Axes[i] {
			continue
		}
		axis := JoyAxisFromGLFW(glfw.GamepadAxis(i))
		axes = append(axes, JoyAxisEvent{
			Device: device,
			Axis:   axis,
			Value:  axisValue(axis, cur.Axes[i]),
		})
	}

	return buttons, axes
}

func restingGamepad() *glfw.GamepadState {
	s := &glfw.GamepadState{}
	s.Axes[glfw.AxisLeftTrigger] = -1
	s.Axes[glfw.AxisRightTrigger] = -1
	return s
}
