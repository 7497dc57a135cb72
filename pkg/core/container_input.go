package core

import (
	"slices"

	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/input"
)

// candidates returns the slots in hit-test order, topmost last. Custom
// z-order mode sorts them by effective z-order, keeping tree order for ties.
func (c *ContainerBase) candidates() []focus.Candidate {
	slots := c.slots
	if cv := c.Canvas(); cv != nil && cv.ZOrderMode() == ZOrderCustom {
		slots = slices.Clone(slots)
		slices.SortStableFunc(slots, func(a, b Slot) int { return a.ZOrder() - b.ZOrder() })
	}
	out := make([]focus.Candidate, len(slots))
	for i, s := range slots {
		out[i] = s
	}
	return out
}

// RouteMouse resolves which slots the pointer focuses and delivers leave,
// enter and move events accordingly.
func (c *ContainerBase) RouteMouse(event input.MouseEvent) bool {
	tr := c.tracker.Route(c.candidates(), event.Position)
	for _, s := range tr.Leave {
		s.(Slot).OnMouseLeave(event)
	}
	handled := false
	for _, s := range tr.Enter {
		if s.(Slot).OnMouseEnter(event) {
			handled = true
		}
	}
	for _, s := range tr.Move {
		if s.(Slot).OnMouseMove(event) {
			handled = true
		}
	}
	return handled
}

// FocusedSlot returns the slot holding ZOrder focus, or nil.
func (c *ContainerBase) FocusedSlot() Slot {
	if f := c.tracker.Focus(); f != nil {
		return f.(Slot)
	}
	return nil
}

// FocusedSlots returns the ZOrder focus followed by the Immediate focuses.
func (c *ContainerBase) FocusedSlots() []Slot {
	targets := c.tracker.Targets()
	out := make([]Slot, len(targets))
	for i, t := range targets {
		out[i] = t.(Slot)
	}
	return out
}

// ResetSlotInput clears the input state of every slot and forgets focus and
// capture, leaving the container's own state alone.
func (c *ContainerBase) ResetSlotInput() {
	c.tracker.Reset()
	c.captured = nil
	for _, s := range c.slots {
		s.ResetInput()
	}
}

// ResetInput clears the container's input state and that of its slots.
func (c *ContainerBase) ResetInput() {
	c.WidgetBase.ResetInput()
	c.ResetSlotInput()
}

// OnMouseEnter focuses the container and routes the pointer to its slots.
func (c *ContainerBase) OnMouseEnter(event input.MouseEvent) bool {
	if !c.WidgetBase.OnMouseEnter(event) {
		return false
	}
	c.RouteMouse(event)
	return true
}

// OnMouseLeave sends leave events to every focused slot.
func (c *ContainerBase) OnMouseLeave(event input.MouseEvent) bool {
	for _, s := range c.tracker.LeaveAll() {
		s.(Slot).OnMouseLeave(event)
	}
	c.captured = nil
	return c.WidgetBase.OnMouseLeave(event)
}

// OnMouseMove routes the pointer to the slots. While slots hold a pressed
// button they receive every move, wherever the pointer is.
func (c *ContainerBase) OnMouseMove(event input.MouseEvent) bool {
	if len(c.captured) > 0 {
		for _, s := range c.captured {
			s.OnMouseMove(event)
		}
		return true
	}
	if !c.focused || !c.IsEnabled() || c.container.IsCulled() || !c.container.IsInside(event.Position) {
		return false
	}
	c.hovered = true
	c.RouteMouse(event)
	return true
}

// OnMouseButtonDown forwards the press to the focused slots. Slots that
// handle it capture the pointer until the button is released.
func (c *ContainerBase) OnMouseButtonDown(event input.MouseEvent) bool {
	if !c.focused || !c.container.IsInteractableWithMouse() {
		return false
	}
	handled := false
	for _, s := range c.FocusedSlots() {
		if s.OnMouseButtonDown(event) {
			handled = true
			c.captured = append(c.captured, s)
		}
	}
	return handled
}

// OnMouseButtonUp releases captured slots and re-routes the pointer.
func (c *ContainerBase) OnMouseButtonUp(event input.MouseEvent) bool {
	targets := c.captured
	c.captured = nil
	if len(targets) == 0 {
		targets = c.FocusedSlots()
	}
	handled := false
	for _, s := range targets {
		if s.OnMouseButtonUp(event) {
			handled = true
		}
	}
	if c.focused && c.container.IsInside(event.Position) {
		c.RouteMouse(event)
	}
	return handled
}

// OnMouseWheel forwards the wheel to the focused slots.
func (c *ContainerBase) OnMouseWheel(event input.MouseEvent) bool {
	handled := false
	for _, s := range c.FocusedSlots() {
		if s.OnMouseWheel(event) {
			handled = true
		}
	}
	return handled
}

// OnMouseDoubleClick forwards the double click to the focused slots.
func (c *ContainerBase) OnMouseDoubleClick(event input.MouseEvent) bool {
	handled := false
	for _, s := range c.FocusedSlots() {
		if s.OnMouseDoubleClick(event) {
			handled = true
		}
	}
	return handled
}

// OnKeyDown forwards the key to the focused slots.
func (c *ContainerBase) OnKeyDown(event input.KeyEvent) bool {
	if !c.container.IsInteractableWithKey() {
		return false
	}
	handled := false
	for _, s := range c.FocusedSlots() {
		if s.OnKeyDown(event) {
			handled = true
		}
	}
	return handled
}

// OnKeyUp forwards the key to the focused slots.
func (c *ContainerBase) OnKeyUp(event input.KeyEvent) bool {
	if !c.container.IsInteractableWithKey() {
		return false
	}
	handled := false
	for _, s := range c.FocusedSlots() {
		if s.OnKeyUp(event) {
			handled = true
		}
	}
	return handled
}
