package common

// JoyButton identifies a game controller button using the SDL layout.
// Raw buttons beyond the SDL layout are reported up to JoyButtonMax.
type JoyButton int64

const (
	JoyButtonInvalid       JoyButton = -1
	JoyButtonA             JoyButton = 0 // Sony Cross, Xbox A, Nintendo B
	JoyButtonB             JoyButton = 1 // Sony Circle, Xbox B, Nintendo A
	JoyButtonX             JoyButton = 2 // Sony Square, Xbox X, Nintendo Y
	JoyButtonY             JoyButton = 3 // Sony Triangle, Xbox Y, Nintendo X
	JoyButtonBack          JoyButton = 4
	JoyButtonGuide         JoyButton = 5
	JoyButtonStart         JoyButton = 6
	JoyButtonLeftStick     JoyButton = 7
	JoyButtonRightStick    JoyButton = 8
	JoyButtonLeftShoulder  JoyButton = 9
	JoyButtonRightShoulder JoyButton = 10
	JoyButtonDpadUp        JoyButton = 11
	JoyButtonDpadDown      JoyButton = 12
	JoyButtonDpadLeft      JoyButton = 13
	JoyButtonDpadRight     JoyButton = 14
	JoyButtonMisc1         JoyButton = 15 // share / capture / microphone
	JoyButtonPaddle1       JoyButton = 16
	JoyButtonPaddle2       JoyButton = 17
	JoyButtonPaddle3       JoyButton = 18
	JoyButtonPaddle4       JoyButton = 19
	JoyButtonTouchpad      JoyButton = 20

	JoyButtonSDLMax JoyButton = 21 // number of buttons in the SDL layout
	JoyButtonMax    JoyButton = 128 // maximum raw button index
)

var JoyButtonEnum = MustEnum("JoyButton", []Member[JoyButton]{
	{Name: "Invalid", EngineName: "JOY_BUTTON_INVALID", Value: JoyButtonInvalid},
	{Name: "A", EngineName: "JOY_BUTTON_A", Value: JoyButtonA},
	{Name: "B", EngineName: "JOY_BUTTON_B", Value: JoyButtonB},
	{Name: "X", EngineName: "JOY_BUTTON_X", Value: JoyButtonX},
	{Name: "Y", EngineName: "JOY_BUTTON_Y", Value: JoyButtonY},
	{Name: "Back", EngineName: "JOY_BUTTON_BACK", Value: JoyButtonBack},
	{Name: "Guide", EngineName: "JOY_BUTTON_GUIDE", Value: JoyButtonGuide},
	{Name: "Start", EngineName: "JOY_BUTTON_START", Value: JoyButtonStart},
	{Name: "LeftStick", EngineName: "JOY_BUTTON_LEFT_STICK", Value: JoyButtonLeftStick},
	{Name: "RightStick", EngineName: "JOY_BUTTON_RIGHT_STICK", Value: JoyButtonRightStick},
	{Name: "LeftShoulder", EngineName: "JOY_BUTTON_LEFT_SHOULDER", Value: JoyButtonLeftShoulder},
	{Name: "RightShoulder", EngineName: "JOY_BUTTON_RIGHT_SHOULDER", Value: JoyButtonRightShoulder},
	{Name: "DpadUp", EngineName: "JOY_BUTTON_DPAD_UP", Value: JoyButtonDpadUp},
	{Name: "DpadDown", EngineName: "JOY_BUTTON_DPAD_DOWN", Value: JoyButtonDpadDown},
	{Name: "DpadLeft", EngineName: "JOY_BUTTON_DPAD_LEFT", Value: JoyButtonDpadLeft},
	{Name: "DpadRight", EngineName: "JOY_BUTTON_DPAD_RIGHT", Value: JoyButtonDpadRight},
	{Name: "Misc1", EngineName: "JOY_BUTTON_MISC1", Value: JoyButtonMisc1},
	{Name: "Paddle1", EngineName: "JOY_BUTTON_PADDLE1", Value: JoyButtonPaddle1},
	{Name: "Paddle2", EngineName: "JOY_BUTTON_PADDLE2", Value: JoyButtonPaddle2},
	{Name: "Paddle3", EngineName: "JOY_BUTTON_PADDLE3", Value: JoyButtonPaddle3},
	{Name: "Paddle4", EngineName: "JOY_BUTTON_PADDLE4", Value: JoyButtonPaddle4},
	{Name: "Touchpad", EngineName: "JOY_BUTTON_TOUCHPAD", Value: JoyButtonTouchpad},
	{Name: "SDLMax", EngineName: "JOY_BUTTON_SDL_MAX", Value: JoyButtonSDLMax, Sentinel: true},
	{Name: "Max", EngineName: "JOY_BUTTON_MAX", Value: JoyButtonMax, Sentinel: true},
})

// JoyAxis identifies a game controller axis. Sticks report -1..1, triggers 0..1.
type JoyAxis int64

const (
	JoyAxisInvalid      JoyAxis = -1
	JoyAxisLeftX        JoyAxis = 0
	JoyAxisLeftY        JoyAxis = 1
	JoyAxisRightX       JoyAxis = 2
	JoyAxisRightY       JoyAxis = 3
	JoyAxisTriggerLeft  JoyAxis = 4
	JoyAxisTriggerRight JoyAxis = 5

	JoyAxisSDLMax JoyAxis = 6
	JoyAxisMax    JoyAxis = 10
)

var JoyAxisEnum = MustEnum("JoyAxis", []Member[JoyAxis]{
	{Name: "Invalid", EngineName: "JOY_AXIS_INVALID", Value: JoyAxisInvalid},
	{Name: "LeftX", EngineName: "JOY_AXIS_LEFT_X", Value: JoyAxisLeftX},
	{Name: "LeftY", EngineName: "JOY_AXIS_LEFT_Y", Value: JoyAxisLeftY},
	{Name: "RightX", EngineName: "JOY_AXIS_RIGHT_X", Value: JoyAxisRightX},
	{Name: "RightY", EngineName: "JOY_AXIS_RIGHT_Y", Value: JoyAxisRightY},
	{Name: "TriggerLeft", EngineName: "JOY_AXIS_TRIGGER_LEFT", Value: JoyAxisTriggerLeft},
	{Name: "TriggerRight", EngineName: "JOY_AXIS_TRIGGER_RIGHT", Value: JoyAxisTriggerRight},
	{Name: "SDLMax", EngineName: "JOY_AXIS_SDL_MAX", Value: JoyAxisSDLMax, Sentinel: true},
	{Name: "Max", EngineName: "JOY_AXIS_MAX", Value: JoyAxisMax, Sentinel: true},
})

func (b JoyButton) String() string { return JoyButtonEnum.NameOf(b) }
func (a JoyAxis) String() string   { return JoyAxisEnum.NameOf(a) }

// IsValid reports whether the button index is inside the raw button range.
func (b JoyButton) IsValid() bool {
	return b > JoyButtonInvalid && b < JoyButtonMax
}

// IsValid reports whether the axis index is inside the raw axis range.
func (a JoyAxis) IsValid() bool {
	return a > JoyAxisInvalid && a < JoyAxisMax
}

// IsTrigger reports whether the axis is an analog trigger.
func (a JoyAxis) IsTrigger() bool {
	return a == JoyAxisTriggerLeft || a == JoyAxisTriggerRight
}
