package core

import "github.com/go-drift/slate/pkg/input"

// The handlers below implement the default press/hover cycle of a leaf:
// entering focuses, a button press while focused marks the widget pressed,
// and the release clears it and restores hover if the pointer is still
// inside.

// OnMouseEnter focuses the widget if it can interact with the pointer.
func (w *WidgetBase) OnMouseEnter(event input.MouseEvent) bool {
	if !w.self.IsInteractableWithMouse() {
		return false
	}
	w.hovered = true
	w.setFocused(true)
	return true
}

// OnMouseLeave clears focus, hover and pressed state.
func (w *WidgetBase) OnMouseLeave(event input.MouseEvent) bool {
	wasFocused := w.focused
	w.hovered = false
	w.pressed = false
	w.setFocused(false)
	return wasFocused
}

// OnMouseMove consumes moves while the widget is focused.
func (w *WidgetBase) OnMouseMove(event input.MouseEvent) bool {
	if !w.focused {
		return false
	}
	w.hovered = w.self.IsInside(event.Position)
	return true
}

// OnMouseWheel ignores wheel events.
func (w *WidgetBase) OnMouseWheel(event input.MouseEvent) bool {
	return false
}

// OnMouseButtonDown marks a focused widget pressed.
func (w *WidgetBase) OnMouseButtonDown(event input.MouseEvent) bool {
	if !w.focused || !w.self.IsInteractableWithMouse() {
		return false
	}
	w.pressed = true
	return true
}

// OnMouseButtonUp releases a pressed widget.
func (w *WidgetBase) OnMouseButtonUp(event input.MouseEvent) bool {
	if !w.pressed {
		return false
	}
	w.pressed = false
	w.hovered = w.self.IsInside(event.Position)
	return true
}

// OnMouseDoubleClick ignores double clicks.
func (w *WidgetBase) OnMouseDoubleClick(event input.MouseEvent) bool {
	return false
}

// OnKeyDown ignores keys.
func (w *WidgetBase) OnKeyDown(event input.KeyEvent) bool {
	return false
}

// OnKeyUp ignores keys.
func (w *WidgetBase) OnKeyUp(event input.KeyEvent) bool {
	return false
}

// ResetInput clears focus, hover and pressed state on the widget and its
// components.
func (w *WidgetBase) ResetInput() {
	w.hovered = false
	w.pressed = false
	w.setFocused(false)
	for _, c := range w.components {
		c.ResetInput()
	}
}

func (w *WidgetBase) setFocused(focused bool) {
	if w.focused == focused {
		return
	}
	w.focused = focused
	if w.OnFocusChange != nil {
		w.OnFocusChange(focused)
	}
	if h, ok := w.self.(interface{ OnFocusChanged(bool) }); ok {
		h.OnFocusChanged(focused)
	}
}

// SetPressed lets widgets with custom press handling update the pressed
// flag.
func (w *WidgetBase) SetPressed(pressed bool) {
	w.pressed = pressed
}
