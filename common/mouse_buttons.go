package common

// MouseButton identifies a mouse button. Wheel motion is reported as presses of the wheel buttons.
type MouseButton int64

const (
	MouseButtonNone       MouseButton = 0
	MouseButtonLeft       MouseButton = 1
	MouseButtonRight      MouseButton = 2
	MouseButtonMiddle     MouseButton = 3
	MouseButtonWheelUp    MouseButton = 4
	MouseButtonWheelDown  MouseButton = 5
	MouseButtonWheelLeft  MouseButton = 6
	MouseButtonWheelRight MouseButton = 7
	MouseButtonXButton1   MouseButton = 8 // usually "back"
	MouseButtonXButton2   MouseButton = 9 // usually "forward"
)

var MouseButtonEnum = MustEnum("MouseButton", []Member[MouseButton]{
	{Name: "None", EngineName: "MOUSE_BUTTON_NONE", Value: MouseButtonNone},
	{Name: "Left", EngineName: "MOUSE_BUTTON_LEFT", Value: MouseButtonLeft},
	{Name: "Right", EngineName: "MOUSE_BUTTON_RIGHT", Value: MouseButtonRight},
	{Name: "Middle", EngineName: "MOUSE_BUTTON_MIDDLE", Value: MouseButtonMiddle},
	{Name: "WheelUp", EngineName: "MOUSE_BUTTON_WHEEL_UP", Value: MouseButtonWheelUp},
	{Name: "WheelDown", EngineName: "MOUSE_BUTTON_WHEEL_DOWN", Value: MouseButtonWheelDown},
	{Name: "WheelLeft", EngineName: "MOUSE_BUTTON_WHEEL_LEFT", Value: MouseButtonWheelLeft},
	{Name: "WheelRight", EngineName: "MOUSE_BUTTON_WHEEL_RIGHT", Value: MouseButtonWheelRight},
	{Name: "XButton1", EngineName: "MOUSE_BUTTON_XBUTTON1", Value: MouseButtonXButton1},
	{Name: "XButton2", EngineName: "MOUSE_BUTTON_XBUTTON2", Value: MouseButtonXButton2},
})

// MouseButtonMask is the set of mouse buttons held down, one bit per button.
// Bit n-1 corresponds to MouseButton n; see MouseButton.Mask.
type MouseButtonMask int64

const (
	MouseButtonMaskLeft       MouseButtonMask = 1 << (MouseButtonLeft - 1)
	MouseButtonMaskRight      MouseButtonMask = 1 << (MouseButtonRight - 1)
	MouseButtonMaskMiddle     MouseButtonMask = 1 << (MouseButtonMiddle - 1)
	MouseButtonMaskMbXButton1 MouseButtonMask = 1 << (MouseButtonXButton1 - 1)
	MouseButtonMaskMbXButton2 MouseButtonMask = 1 << (MouseButtonXButton2 - 1)
)

var MouseButtonMaskEnum = MustEnum("MouseButtonMask", []Member[MouseButtonMask]{
	{Name: "Left", EngineName: "MOUSE_BUTTON_MASK_LEFT", Value: MouseButtonMaskLeft},
	{Name: "Right", EngineName: "MOUSE_BUTTON_MASK_RIGHT", Value: MouseButtonMaskRight},
	{Name: "Middle", EngineName: "MOUSE_BUTTON_MASK_MIDDLE", Value: MouseButtonMaskMiddle},
	{Name: "MbXButton1", EngineName: "MOUSE_BUTTON_MASK_MB_XBUTTON1", Value: MouseButtonMaskMbXButton1},
	{Name: "MbXButton2", EngineName: "MOUSE_BUTTON_MASK_MB_XBUTTON2", Value: MouseButtonMaskMbXButton2},
}, AsFlags())

func (b MouseButton) String() string     { return MouseButtonEnum.NameOf(b) }
func (m MouseButtonMask) String() string { return MouseButtonMaskEnum.Format(m) }

// IsWheel reports whether the button is one of the four wheel directions.
func (b MouseButton) IsWheel() bool {
	return b >= MouseButtonWheelUp && b <= MouseButtonWheelRight
}

// Mask returns the MouseButtonMask bit for the button.
// MouseButtonNone and out-of-range values have no bit and return 0.
func (b MouseButton) Mask() MouseButtonMask {
	if b <= MouseButtonNone || b > MouseButtonXButton2 {
		return 0
	}
	return 1 << (b - 1)
}
