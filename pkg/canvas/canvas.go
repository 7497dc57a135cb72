// Package canvas provides the concrete root of a widget tree: the screen
// coordinate space, the z-order mode, the fan-out of tree notifications to
// observers, draw ordering and the synchronisation of widget geometry with
// a Renderer.
//
// A Canvas is not safe for concurrent use. Tree operations call back into
// the canvas synchronously, so every mutation of a tree attached to a
// canvas must happen on the goroutine that owns it.
package canvas

import (
	"slices"

	"github.com/go-drift/slate/pkg/config"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/graphics"
)

// Anchor selects the origin canvas-aligned roots with AlignNone are offset
// from.
type Anchor int

const (
	// AnchorTopLeft offsets from the top-left corner of the screen.
	AnchorTopLeft Anchor = iota
	// AnchorCenter offsets from the screen center.
	AnchorCenter
)

// Options configures a new canvas.
type Options struct {
	Width, Height float64
	ZOrderMode    core.ZOrderMode
	// Rotation in degrees applied to every root.
	Rotation float64
	Anchor   Anchor
	Renderer Renderer
	// LineMode requests outline geometry instead of filled triangles.
	LineMode bool
}

// OptionsFrom builds options from loaded settings.
func OptionsFrom(s *config.Settings) Options {
	if s == nil {
		s = config.Default()
	}
	return Options{
		Width:      s.Canvas.Width,
		Height:     s.Canvas.Height,
		ZOrderMode: s.ZOrderMode(),
	}
}

// Canvas implements core.Canvas.
type Canvas struct {
	screen   graphics.Bounds
	rotation float64
	mode     core.ZOrderMode
	anchor   Anchor
	lineMode bool

	roots     []core.Widget
	observers []*observer
	renderer  Renderer

	dirty    map[core.ID]core.Widget
	uploaded map[core.ID]bool

	tracker  focus.Tracker
	captured []core.Widget
}

type observer struct {
	fn Observer
}

var _ core.Canvas = (*Canvas)(nil)

// New creates an empty canvas.
func New(opts Options) *Canvas {
	return &Canvas{
		screen:   graphics.BoundsLTWH(0, 0, opts.Width, opts.Height),
		rotation: opts.Rotation,
		mode:     opts.ZOrderMode,
		anchor:   opts.Anchor,
		lineMode: opts.LineMode,
		renderer: opts.Renderer,
		dirty:    make(map[core.ID]core.Widget),
		uploaded: make(map[core.ID]bool),
	}
}

// SetRenderer replaces the renderer. Everything is uploaded again on the
// next Flush.
func (c *Canvas) SetRenderer(r Renderer) {
	c.renderer = r
	clear(c.uploaded)
	for _, root := range c.roots {
		c.markTree(root)
	}
}

// Observe registers fn for every subsequent event and returns a function
// that unregisters it.
func (c *Canvas) Observe(fn Observer) (cancel func()) {
	o := &observer{fn: fn}
	c.observers = append(c.observers, o)
	return func() {
		c.observers = slices.DeleteFunc(c.observers, func(other *observer) bool { return other == o })
	}
}

func (c *Canvas) emit(e Event) {
	for _, o := range c.observers {
		o.fn(e)
	}
}

// Add makes w a root of the canvas.
func (c *Canvas) Add(w core.Widget) {
	w.AddToCanvas(c)
}

// Remove detaches root w. It is destroyed unless it holds references.
// Returns false when w is not a root of the canvas.
func (c *Canvas) Remove(w core.Widget) bool {
	if !slices.Contains(c.roots, w) {
		return false
	}
	w.RemoveFromParent(false)
	return true
}

// Roots returns the root widgets in insertion order.
func (c *Canvas) Roots() []core.Widget {
	return slices.Clone(c.roots)
}

// AddToCanvas registers w as a root.
func (c *Canvas) AddToCanvas(w core.Widget) {
	if slices.Contains(c.roots, w) {
		return
	}
	c.roots = append(c.roots, w)
	c.markTree(w)
	c.emit(Event{Kind: EventRootAdded, Object: w})
}

// RemoveFromCanvas unregisters root w.
func (c *Canvas) RemoveFromCanvas(w core.Widget) {
	i := slices.Index(c.roots, w)
	if i < 0 {
		return
	}
	c.roots = slices.Delete(c.roots, i, i+1)
	c.tracker.Forget(w)
	c.captured = slices.DeleteFunc(c.captured, func(other core.Widget) bool { return other == w })
	c.emit(Event{Kind: EventRootRemoved, Object: w})
}

func (c *Canvas) WidgetUpdated(o core.Object) {
	c.markDirty(o)
	c.emit(Event{Kind: EventWidgetUpdated, Object: o})
}

func (c *Canvas) VerticesSizeChanged(o core.Object, count int) {
	c.markDirty(o)
	c.emit(Event{Kind: EventVerticesSizeChanged, Object: o, Count: count})
}

func (c *Canvas) NewSlotAdded(ct core.Container, s core.Slot) {
	if w := s.Content(); w != nil {
		c.markTree(w)
	}
	c.emit(Event{Kind: EventSlotAdded, Object: ct, Slot: s})
}

func (c *Canvas) SlotRemoved(ct core.Container, s core.Slot) {
	c.emit(Event{Kind: EventSlotRemoved, Object: ct, Slot: s})
}

func (c *Canvas) SlotContentReplaced(s core.Slot, prev, next core.Widget) {
	if next != nil {
		c.markTree(next)
	}
	c.emit(Event{Kind: EventSlotContentReplaced, Object: s.Container(), Slot: s, Old: prev, New: next})
}

func (c *Canvas) VisibilityChanged(o core.Object) {
	if w, ok := o.(core.Widget); ok {
		c.markTree(w)
	}
	c.emit(Event{Kind: EventVisibilityChanged, Object: o})
}

func (c *Canvas) ZOrderModeUpdated() {
	c.emit(Event{Kind: EventZOrderModeUpdated})
}

func (c *Canvas) ZOrderChanged(o core.Object) {
	c.emit(Event{Kind: EventZOrderChanged, Object: o})
}

func (c *Canvas) ZOrderMode() core.ZOrderMode {
	return c.mode
}

// SetZOrderMode switches between tree order and custom z-order for drawing
// and hit testing. Input state is reset since focus winners may change.
func (c *Canvas) SetZOrderMode(m core.ZOrderMode) bool {
	if c.mode == m {
		return false
	}
	c.mode = m
	c.ResetInput()
	c.ZOrderModeUpdated()
	return true
}

func (c *Canvas) ScreenBounds() graphics.Bounds {
	return c.screen
}

func (c *Canvas) ScreenDimension() graphics.Dimension {
	return c.screen.Dimension()
}

func (c *Canvas) ScreenCenter() graphics.Vector {
	return c.screen.Center()
}

func (c *Canvas) ScreenRotation() float64 {
	return c.rotation
}

// SetScreenRotation rotates every root by degrees around the screen center.
func (c *Canvas) SetScreenRotation(degrees float64) bool {
	if c.rotation == degrees {
		return false
	}
	c.rotation = degrees
	for _, r := range c.roots {
		r.RefreshRotation()
	}
	return true
}

func (c *Canvas) AnchorPoint(b graphics.Bounds) graphics.Vector {
	if c.anchor == AnchorCenter {
		return b.Center()
	}
	return b.Min
}

// Resize changes the screen size and realigns the roots.
func (c *Canvas) Resize(d graphics.Dimension) bool {
	if c.screen.Dimension() == d {
		return false
	}
	c.screen = graphics.BoundsFrom(c.screen.Min, d)
	for _, r := range c.roots {
		r.Align()
		c.markTree(r)
	}
	c.emit(Event{Kind: EventResized})
	return true
}

// OverlappingWidgets returns the drawn widgets intersecting b, in draw
// order.
func (c *Canvas) OverlappingWidgets(b graphics.Bounds) []core.Widget {
	var out []core.Widget
	for _, w := range c.DrawOrder() {
		if w.Intersect(b) {
			out = append(out, w)
		}
	}
	return out
}

// Destroy removes every root, destroying those without references, and
// drops renderer state.
func (c *Canvas) Destroy() {
	for len(c.roots) > 0 {
		c.roots[len(c.roots)-1].RemoveFromParent(false)
	}
	if c.renderer != nil {
		for id := range c.uploaded {
			c.renderer.Discard(id)
		}
	}
	clear(c.uploaded)
	clear(c.dirty)
}
