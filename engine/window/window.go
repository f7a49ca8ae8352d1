package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/Carmen-Shannon/oxy-constants/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window provides platform windowing and input event handling.
// Input is delivered as typed events carrying the engine constants of package common.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyCallback sets the callback for key press, repeat and release events.
	//
	// Parameters:
	//   - callback: function receiving the key event
	SetKeyCallback(callback func(event input.KeyEvent))

	// SetMouseButtonCallback sets the callback for mouse button and wheel events.
	//
	// Parameters:
	//   - callback: function receiving the button event
	SetMouseButtonCallback(callback func(event input.MouseButtonEvent))

	// SetMouseMotionCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the motion event
	SetMouseMotionCallback(callback func(event input.MouseMotionEvent))

	// SetJoyButtonCallback sets the callback for gamepad button events.
	// Gamepads are only polled when the window was built WithGamepadPolling.
	//
	// Parameters:
	//   - callback: function receiving the gamepad button event
	SetJoyButtonCallback(callback func(event input.JoyButtonEvent))

	// SetJoyAxisCallback sets the callback for gamepad axis events.
	//
	// Parameters:
	//   - callback: function receiving the gamepad axis event
	SetJoyAxisCallback(callback func(event input.JoyAxisEvent))

	// ButtonMask returns the mouse buttons currently held.
	//
	// Returns:
	//   - common.MouseButtonMask: the held set
	ButtonMask() common.MouseButtonMask

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, input state and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// closeOnEscape closes the window when Escape is pressed.
	closeOnEscape bool

	// pollGamepads enables gamepad polling in the message loop.
	pollGamepads bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// buttons tracks the held mouse buttons.
	buttons input.ButtonTracker

	// modifiers is the modifier state of the latest key or button event.
	modifiers common.KeyModifierMask

	// cursorX, cursorY and hasCursor hold the last cursor position for relative motion.
	cursorX, cursorY int32
	hasCursor        bool

	// gamepads holds the last polled state per joystick slot.
	gamepads map[int]*glfw.GamepadState

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	onKey         func(event input.KeyEvent)
	onMouseButton func(event input.MouseButtonEvent)
	onMouseMotion func(event input.MouseMotionEvent)
	onJoyButton   func(event input.JoyButtonEvent)
	onJoyAxis     func(event input.JoyAxisEvent)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// newEngineWindow applies defaults and options without touching the platform.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:         "Default Window Title",
		maxWidth:      1600,
		maxHeight:     1200,
		minWidth:      600,
		minHeight:     200,
		width:         1280,
		height:        720,
		closeOnEscape: true,
		gamepads:      make(map[int]*glfw.GamepadState),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyCallback(callback func(event input.KeyEvent)) {
	w.onKey = callback
}

func (w *engineWindow) SetMouseButtonCallback(callback func(event input.MouseButtonEvent)) {
	w.onMouseButton = callback
}

func (w *engineWindow) SetMouseMotionCallback(callback func(event input.MouseMotionEvent)) {
	w.onMouseMotion = callback
}

func (w *engineWindow) SetJoyButtonCallback(callback func(event input.JoyButtonEvent)) {
	w.onJoyButton = callback
}

func (w *engineWindow) SetJoyAxisCallback(callback func(event input.JoyAxisEvent)) {
	w.onJoyAxis = callback
}

func (w *engineWindow) ButtonMask() common.MouseButtonMask {
	return w.buttons.Mask()
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.pollGamepads {
			platformPollGamepads(w)
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
