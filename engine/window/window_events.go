package window

import (
	"github.com/Carmen-Shannon/oxy-constants/common"
	"github.com/Carmen-Shannon/oxy-constants/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// handleKey translates a GLFW key callback and delivers it.
// Returns true when the event should close the window.
func (w *engineWindow) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) bool {
	if w.closeOnEscape && key == glfw.KeyEscape && action == glfw.Press {
		return true
	}

	w.modifiers = input.ModifiersFromGLFW(mods)
	if w.onKey == nil {
		return false
	}
	w.onKey(input.KeyEvent{
		Key:       input.KeyFromGLFW(key),
		Location:  input.KeyLocationFromGLFW(key),
		Modifiers: w.modifiers,
		Pressed:   action != glfw.Release,
		Echo:      action == glfw.Repeat,
	})
	return false
}

// handleMouseButton updates the held set and delivers the button event.
// Buttons without an engine code are dropped.
func (w *engineWindow) handleMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, x, y float64) {
	b := input.MouseButtonFromGLFW(button)
	if b == common.MouseButtonNone {
		return
	}

	w.modifiers = input.ModifiersFromGLFW(mods)
	pressed := action == glfw.Press
	mask := w.buttons.Release(b)
	if pressed {
		mask = w.buttons.Press(b)
	}

	if w.onMouseButton != nil {
		w.onMouseButton(input.MouseButtonEvent{
			Button:     b,
			ButtonMask: mask,
			Modifiers:  w.modifiers,
			X:          int32(x),
			Y:          int32(y),
			Pressed:    pressed,
		})
	}
}

// handleScroll delivers wheel motion as wheel button presses.
func (w *engineWindow) handleScroll(xoff, yoff, x, y float64) {
	if w.onMouseButton == nil {
		return
	}
	for _, e := range input.WheelEvents(xoff, yoff, int32(x), int32(y), w.buttons.Mask(), w.modifiers) {
		w.onMouseButton(e)
	}
}

// handleCursor delivers cursor motion relative to the previous position.
// The first motion after the window opens has no relative movement.
func (w *engineWindow) handleCursor(xpos, ypos float64) {
	x, y := int32(xpos), int32(ypos)
	var relX, relY int32
	if w.hasCursor {
		relX, relY = x-w.cursorX, y-w.cursorY
	}
	w.cursorX, w.cursorY, w.hasCursor = x, y, true

	if w.onMouseMotion != nil {
		w.onMouseMotion(input.MouseMotionEvent{
			X:          x,
			Y:          y,
			RelX:       relX,
			RelY:       relY,
			ButtonMask: w.buttons.Mask(),
		})
	}
}

// handleFocusLost releases every held button so no press outlives the focus.
func (w *engineWindow) handleFocusLost() {
	w.buttons.Reset()
	w.modifiers = 0
}

// handleGamepad diffs a polled state against the last one for the slot and delivers the changes.
// A nil state forgets the slot, so a reconnected pad starts from rest.
func (w *engineWindow) handleGamepad(device int, state *glfw.GamepadState) {
	if state == nil {
		delete(w.gamepads, device)
		return
	}

	buttons, axes := input.DiffGamepad(device, w.gamepads[device], state)
	snapshot := *state
	w.gamepads[device] = &snapshot

	if w.onJoyButton != nil {
		for _, e := range buttons {
			w.onJoyButton(e)
		}
	}
	if w.onJoyAxis != nil {
		for _, e := range axes {
			w.onJoyAxis(e)
		}
	}
}
