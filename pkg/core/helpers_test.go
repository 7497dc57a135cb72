package core

import (
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

type testLeaf struct {
	WidgetBase
	attached int
	removed  int
	focusLog []bool
}

func newLeaf(name string, w, h float64) *testLeaf {
	l := &testLeaf{}
	l.Init(l, name)
	l.SetDimension(graphics.Dimension{Width: w, Height: h})
	return l
}

func (l *testLeaf) Clone() Widget {
	c := newLeaf(l.name, 0, 0)
	l.CloneInto(c)
	return c
}

func (l *testLeaf) OnAttach() {
	l.attached++
}

func (l *testLeaf) OnRemoveFromParent() {
	l.removed++
}

func (l *testLeaf) OnFocusChanged(focused bool) {
	l.focusLog = append(l.focusLog, focused)
}

// testOverlay uses the ContainerBase layout rule unchanged.
type testOverlay struct {
	ContainerBase
}

func newOverlay(name string, w, h float64) *testOverlay {
	o := &testOverlay{}
	o.Init(o, name)
	o.SetDimension(graphics.Dimension{Width: w, Height: h})
	return o
}

func (o *testOverlay) Clone() Widget {
	c := newOverlay(o.name, 0, 0)
	o.CloneInto(c)
	return c
}

type canvasEvent struct {
	kind   string
	object Object
}

// testCanvas records every notification it receives.
type testCanvas struct {
	roots    []Widget
	events   []canvasEvent
	screen   graphics.Bounds
	rotation float64
	mode     ZOrderMode
}

func newTestCanvas(w, h float64) *testCanvas {
	return &testCanvas{screen: graphics.BoundsLTWH(0, 0, w, h)}
}

func (c *testCanvas) record(kind string, o Object) {
	c.events = append(c.events, canvasEvent{kind: kind, object: o})
}

func (c *testCanvas) count(kind string) int {
	n := 0
	for _, e := range c.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (c *testCanvas) AddToCanvas(w Widget) {
	for _, r := range c.roots {
		if r == w {
			return
		}
	}
	c.roots = append(c.roots, w)
	c.record("add", w)
}

func (c *testCanvas) RemoveFromCanvas(w Widget) {
	for i, r := range c.roots {
		if r == w {
			c.roots = append(c.roots[:i], c.roots[i+1:]...)
			c.record("remove", w)
			return
		}
	}
}

func (c *testCanvas) WidgetUpdated(o Object) {
	c.record("updated", o)
}

func (c *testCanvas) VerticesSizeChanged(o Object, n int) {
	c.record("vertices", o)
}

func (c *testCanvas) NewSlotAdded(ct Container, s Slot) {
	c.record("slot_added", s)
}

func (c *testCanvas) SlotRemoved(ct Container, s Slot) {
	c.record("slot_removed", s)
}

func (c *testCanvas) SlotContentReplaced(s Slot, _, _ Widget) {
	c.record("replaced", s)
}

func (c *testCanvas) VisibilityChanged(o Object) {
	c.record("visibility", o)
}

func (c *testCanvas) ZOrderModeUpdated() {
	c.record("zorder_mode", nil)
}

func (c *testCanvas) ZOrderChanged(o Object) {
	c.record("zorder", o)
}

func (c *testCanvas) ZOrderMode() ZOrderMode {
	return c.mode
}

func (c *testCanvas) ScreenBounds() graphics.Bounds {
	return c.screen
}

func (c *testCanvas) ScreenDimension() graphics.Dimension {
	return c.screen.Dimension()
}

func (c *testCanvas) ScreenCenter() graphics.Vector {
	return c.screen.Center()
}

func (c *testCanvas) ScreenRotation() float64 {
	return c.rotation
}

func (c *testCanvas) AnchorPoint(b graphics.Bounds) graphics.Vector {
	return b.Min
}

func (c *testCanvas) OverlappingWidgets(b graphics.Bounds) []Widget {
	var out []Widget
	for _, r := range c.roots {
		if r.Intersect(b) {
			out = append(out, r)
		}
	}
	return out
}

// fill makes w stretch over its reference on both axes.
func fill(w Widget) {
	w.BaseWidget().SetAlignments(layout.AlignFill, layout.AlignFill)
}
