package canvas

import (
	"slices"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/input"
)

// The canvas routes platform input into its roots the way a container
// routes into its slots: the topmost ZOrder root under the pointer and
// every Immediate root under it are focused, and roots that handle a
// button press capture the pointer until release.

func (c *Canvas) candidates() []focus.Candidate {
	roots := c.roots
	if c.mode == core.ZOrderCustom {
		roots = slices.Clone(roots)
		slices.SortStableFunc(roots, func(a, b core.Widget) int { return a.ZOrder() - b.ZOrder() })
	}
	out := make([]focus.Candidate, len(roots))
	for i, r := range roots {
		out[i] = r
	}
	return out
}

func (c *Canvas) targets() []core.Widget {
	targets := c.tracker.Targets()
	out := make([]core.Widget, len(targets))
	for i, t := range targets {
		out[i] = t.(core.Widget)
	}
	return out
}

// FocusedRoots returns the roots focused by the pointer.
func (c *Canvas) FocusedRoots() []core.Widget {
	return c.targets()
}

func (c *Canvas) route(event input.MouseEvent) bool {
	tr := c.tracker.Route(c.candidates(), event.Position)
	for _, w := range tr.Leave {
		w.(core.Widget).OnMouseLeave(event)
	}
	handled := false
	for _, w := range tr.Enter {
		if w.(core.Widget).OnMouseEnter(event) {
			handled = true
		}
	}
	for _, w := range tr.Move {
		if w.(core.Widget).OnMouseMove(event) {
			handled = true
		}
	}
	return handled
}

// OnMouseMove routes a pointer move. Captured roots get every move.
func (c *Canvas) OnMouseMove(event input.MouseEvent) bool {
	if len(c.captured) > 0 {
		for _, w := range c.captured {
			w.OnMouseMove(event)
		}
		return true
	}
	return c.route(event)
}

// OnMouseLeave tells every focused root the pointer left the screen.
func (c *Canvas) OnMouseLeave(event input.MouseEvent) bool {
	handled := false
	for _, w := range c.tracker.LeaveAll() {
		if w.(core.Widget).OnMouseLeave(event) {
			handled = true
		}
	}
	c.captured = nil
	return handled
}

// OnMouseButtonDown forwards a press to the focused roots.
func (c *Canvas) OnMouseButtonDown(event input.MouseEvent) bool {
	handled := false
	for _, w := range c.targets() {
		if w.OnMouseButtonDown(event) {
			handled = true
			c.captured = append(c.captured, w)
		}
	}
	return handled
}

// OnMouseButtonUp releases the capture and re-routes the pointer.
func (c *Canvas) OnMouseButtonUp(event input.MouseEvent) bool {
	targets := c.captured
	c.captured = nil
	if len(targets) == 0 {
		targets = c.targets()
	}
	handled := false
	for _, w := range targets {
		if w.OnMouseButtonUp(event) {
			handled = true
		}
	}
	c.route(event)
	return handled
}

// OnMouseWheel forwards the wheel to the focused roots.
func (c *Canvas) OnMouseWheel(event input.MouseEvent) bool {
	handled := false
	for _, w := range c.targets() {
		if w.OnMouseWheel(event) {
			handled = true
		}
	}
	return handled
}

// OnMouseDoubleClick forwards a double click to the focused roots.
func (c *Canvas) OnMouseDoubleClick(event input.MouseEvent) bool {
	handled := false
	for _, w := range c.targets() {
		if w.OnMouseDoubleClick(event) {
			handled = true
		}
	}
	return handled
}

// OnKeyDown forwards a key press to the focused roots.
func (c *Canvas) OnKeyDown(event input.KeyEvent) bool {
	handled := false
	for _, w := range c.targets() {
		if w.OnKeyDown(event) {
			handled = true
		}
	}
	return handled
}

// OnKeyUp forwards a key release to the focused roots.
func (c *Canvas) OnKeyUp(event input.KeyEvent) bool {
	handled := false
	for _, w := range c.targets() {
		if w.OnKeyUp(event) {
			handled = true
		}
	}
	return handled
}

// ResetInput clears the input state of every root.
func (c *Canvas) ResetInput() {
	c.tracker.Reset()
	c.captured = nil
	for _, r := range c.roots {
		r.ResetInput()
	}
}
