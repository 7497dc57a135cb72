package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/raster"
)

const (
	// DefaultTestWidth is the default width of the test screen.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test screen.
	DefaultTestHeight = 600
)

// ErrNothingMounted is returned by input helpers before Mount.
var ErrNothingMounted = errors.New("no widget mounted")

// WidgetTester provides isolated widget testing against a real canvas and
// a software renderer. Every notification the canvas emits is recorded.
type WidgetTester struct {
	canvas   *canvas.Canvas
	renderer *raster.Renderer
	root     core.Widget
	events   []canvas.Event
	cancel   func()
	pointer  graphics.Vector
}

// NewWidgetTester creates a tester with a DefaultTestWidth by
// DefaultTestHeight screen. Call Cleanup() when done, or use
// NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{renderer: raster.New(graphics.ColorBlack)}
	t.canvas = canvas.New(canvas.Options{
		Width:    DefaultTestWidth,
		Height:   DefaultTestHeight,
		Renderer: t.renderer,
	})
	t.cancel = t.canvas.Observe(func(e canvas.Event) {
		t.events = append(t.events, e)
	})
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup destroys the mounted tree and stops recording.
func (t *WidgetTester) Cleanup() {
	t.cancel()
	t.canvas.Destroy()
	t.root = nil
}

// Canvas returns the canvas widgets are mounted on.
func (t *WidgetTester) Canvas() *canvas.Canvas {
	return t.canvas
}

// Renderer returns the software renderer the canvas flushes into.
func (t *WidgetTester) Renderer() *raster.Renderer {
	return t.renderer
}

// SetSize resizes the screen, realigning the mounted root.
func (t *WidgetTester) SetSize(size graphics.Dimension) {
	t.canvas.Resize(size)
}

// Mount replaces the current root with w, stretched over the screen unless
// w already has explicit alignments, and runs one frame.
func (t *WidgetTester) Mount(w core.Widget) error {
	if t.root != nil {
		t.canvas.Remove(t.root)
	}
	t.root = w
	base := w.BaseWidget()
	if !base.IsAlignedToCanvas() {
		base.SetAlignedToCanvas(true)
	}
	tr := base.Transform()
	for _, axis := range []layout.Axis{layout.AxisHorizontal, layout.AxisVertical} {
		if !tr.IsAlignmentSet(axis) {
			base.SetAlignment(axis, layout.AlignFill)
		}
	}
	t.canvas.Add(w)
	return t.Pump()
}

// Root returns the mounted widget.
func (t *WidgetTester) Root() core.Widget {
	return t.root
}

// Pump flushes pending geometry to the renderer and presents a frame.
func (t *WidgetTester) Pump() error {
	return t.canvas.Flush()
}

// Events returns every canvas notification recorded so far.
func (t *WidgetTester) Events() []canvas.Event {
	return t.events
}

// EventCount returns how many recorded notifications have kind.
func (t *WidgetTester) EventCount(kind canvas.EventKind) int {
	n := 0
	for _, e := range t.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// ClearEvents forgets the recorded notifications.
func (t *WidgetTester) ClearEvents() {
	t.events = nil
}

// Find evaluates a finder against the widgets on the canvas.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	var widgets []core.Widget
	for _, r := range t.canvas.Roots() {
		widgets = append(widgets, finder.Evaluate(r)...)
	}
	return FinderResult{widgets: widgets, finder: finder}
}
