package canvas

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/errors"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/widgets"
)

type fakeRenderer struct {
	uploads   []core.ID
	discards  []core.ID
	presented [][]core.ID
	failFor   core.ID
}

func (r *fakeRenderer) Upload(id core.ID, g Geometry) error {
	if id == r.failFor {
		return stderrors.New("upload rejected")
	}
	r.uploads = append(r.uploads, id)
	return nil
}

func (r *fakeRenderer) Discard(id core.ID) {
	r.discards = append(r.discards, id)
}

func (r *fakeRenderer) Present(screen graphics.Dimension, order []core.ID) error {
	r.presented = append(r.presented, order)
	return nil
}

type recordingHandler struct {
	errs []*errors.SlateError
}

func (h *recordingHandler) HandleError(err *errors.SlateError) {
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func image(name string, x, y, w, h float64) *widgets.Image {
	img := widgets.NewImage(name, graphics.Dimension{Width: w, Height: h}, graphics.ColorWhite)
	img.SetOffset(graphics.Vector{X: x, Y: y})
	return img
}

func newCanvas(r Renderer) *Canvas {
	return New(Options{Width: 200, Height: 100, Renderer: r})
}

func TestCanvasEmitsTreeEvents(t *testing.T) {
	c := newCanvas(nil)
	var kinds []EventKind
	cancel := c.Observe(func(e Event) { kinds = append(kinds, e.Kind) })

	root := widgets.NewOverlay("root")
	root.SetDimension(graphics.Dimension{Width: 50, Height: 50})
	c.Add(root)
	root.Insert(image("a", 0, 0, 10, 10))
	root.RemoveSlotAt(0)

	want := map[EventKind]bool{EventRootAdded: false, EventSlotAdded: false, EventSlotRemoved: false}
	for _, k := range kinds {
		if _, ok := want[k]; ok {
			want[k] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected %s event, got %v", k, kinds)
		}
	}

	cancel()
	before := len(kinds)
	c.Remove(root)
	if len(kinds) != before {
		t.Errorf("cancelled observer still received %d events", len(kinds)-before)
	}
	if len(c.Roots()) != 0 {
		t.Errorf("expected no roots, got %d", len(c.Roots()))
	}
}

func TestDrawOrderFollowsTreeOrder(t *testing.T) {
	c := newCanvas(nil)
	a := image("a", 0, 0, 10, 10)
	b := image("b", 20, 0, 10, 10)
	c.Add(a)
	c.Add(b)

	order := c.DrawOrder()
	if len(order) != 2 || order[0] != core.Widget(a) || order[1] != core.Widget(b) {
		t.Fatalf("unexpected draw order %v", order)
	}

	a.SetZOrder(5)
	order = c.DrawOrder()
	if order[0] != core.Widget(a) {
		t.Errorf("tree order mode should ignore z-order")
	}

	c.SetZOrderMode(core.ZOrderCustom)
	order = c.DrawOrder()
	if order[0] != core.Widget(b) || order[1] != core.Widget(a) {
		t.Errorf("custom mode should draw a last, got %s first", order[0].Name())
	}
}

func TestDrawOrderSkipsHiddenAndCulled(t *testing.T) {
	c := newCanvas(nil)
	visible := image("visible", 0, 0, 10, 10)
	hidden := image("hidden", 0, 0, 10, 10)
	offscreen := image("offscreen", 500, 500, 10, 10)
	c.Add(visible)
	c.Add(hidden)
	c.Add(offscreen)
	hidden.SetVisibility(core.Hidden)

	order := c.DrawOrder()
	if len(order) != 1 || order[0] != core.Widget(visible) {
		names := make([]string, len(order))
		for i, w := range order {
			names[i] = w.Name()
		}
		t.Errorf("expected only visible, got %v", names)
	}
}

func TestFlushUploadsOnlyDirtyGeometry(t *testing.T) {
	r := &fakeRenderer{}
	c := newCanvas(r)
	a := image("a", 0, 0, 10, 10)
	b := image("b", 20, 0, 10, 10)
	c.Add(a)
	c.Add(b)

	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(r.uploads) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(r.uploads))
	}
	if len(r.presented) != 1 || len(r.presented[0]) != 2 {
		t.Fatalf("unexpected present %v", r.presented)
	}

	r.uploads = nil
	b.SetColor(graphics.RGB(255, 0, 0))
	if !c.IsDirty(b) || c.IsDirty(a) {
		t.Fatalf("only b should be dirty")
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(r.uploads) != 1 || r.uploads[0] != b.ID() {
		t.Errorf("expected only b uploaded, got %v", r.uploads)
	}
}

func TestFlushDiscardsRemovedWidgets(t *testing.T) {
	r := &fakeRenderer{}
	c := newCanvas(r)
	a := image("a", 0, 0, 10, 10)
	c.Add(a)
	_ = c.Flush()

	id := a.ID()
	c.Remove(a)
	_ = c.Flush()
	if len(r.discards) != 1 || r.discards[0] != id {
		t.Errorf("expected discard of %d, got %v", id, r.discards)
	}
	if !a.IsDestroyed() {
		t.Errorf("unreferenced root should be destroyed on removal")
	}
}

func TestFlushReportsUploadErrors(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	r := &fakeRenderer{}
	c := newCanvas(r)
	a := image("a", 0, 0, 10, 10)
	b := image("b", 20, 0, 10, 10)
	c.Add(a)
	c.Add(b)
	r.failFor = a.ID()

	err := c.Flush()
	if err == nil {
		t.Fatal("expected an upload error")
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindRender || h.errs[0].Object != "a" {
		t.Fatalf("unexpected reports %v", h.errs)
	}
	if len(r.uploads) != 1 || r.uploads[0] != b.ID() {
		t.Errorf("b should still be uploaded, got %v", r.uploads)
	}
	if !c.IsDirty(a) {
		t.Errorf("failed upload should stay dirty")
	}
}

func TestOverlappingWidgets(t *testing.T) {
	c := newCanvas(nil)
	a := image("a", 0, 0, 10, 10)
	b := image("b", 50, 50, 10, 10)
	c.Add(a)
	c.Add(b)

	got := c.OverlappingWidgets(graphics.BoundsLTWH(5, 5, 10, 10))
	if len(got) != 1 || got[0] != core.Widget(a) {
		t.Errorf("expected only a to overlap")
	}
}

func TestResizeRealignsCanvasAlignedRoots(t *testing.T) {
	c := newCanvas(nil)
	root := widgets.NewOverlay("root")
	root.SetAlignments(layout.AlignFill, layout.AlignFill)
	root.SetAlignedToCanvas(true)
	c.Add(root)

	if got := root.Dimension(); got.Width != 200 || got.Height != 100 {
		t.Fatalf("expected 200x100, got %vx%v", got.Width, got.Height)
	}
	if !c.Resize(graphics.Dimension{Width: 320, Height: 240}) {
		t.Fatal("Resize reported no change")
	}
	if got := root.Dimension(); got.Width != 320 || got.Height != 240 {
		t.Errorf("expected 320x240 after resize, got %vx%v", got.Width, got.Height)
	}
}

func TestAnchorCenterOffsetsFromScreenCenter(t *testing.T) {
	c := New(Options{Width: 200, Height: 100, Anchor: AnchorCenter})
	img := image("img", 10, 0, 20, 20)
	img.SetAlignments(layout.AlignNone, layout.AlignNone)
	img.SetAlignedToCanvas(true)
	c.Add(img)

	if got := img.Location(); got.X != 110 || got.Y != 50 {
		t.Errorf("expected location (110, 50), got (%v, %v)", got.X, got.Y)
	}
}

func TestInputRoutesToTopmostRoot(t *testing.T) {
	c := newCanvas(nil)
	below := image("below", 0, 0, 50, 50)
	above := image("above", 0, 0, 50, 50)
	c.Add(below)
	c.Add(above)

	c.OnMouseMove(input.At(10, 10))
	if !above.IsFocused() || below.IsFocused() {
		t.Fatalf("expected only the last root focused")
	}

	c.OnMouseButtonDown(input.At(10, 10))
	if !above.IsPressed() {
		t.Fatalf("expected press on focused root")
	}
	// Captured roots keep receiving moves outside their bounds.
	c.OnMouseMove(input.At(150, 80))
	if !above.IsFocused() {
		t.Errorf("captured root lost focus while pressed")
	}

	c.OnMouseButtonUp(input.At(150, 80))
	if above.IsPressed() || above.IsFocused() {
		t.Errorf("release outside should drop press and focus")
	}
}

func TestInputHonoursCustomZOrder(t *testing.T) {
	c := New(Options{Width: 200, Height: 100, ZOrderMode: core.ZOrderCustom})
	top := image("top", 0, 0, 50, 50)
	bottom := image("bottom", 0, 0, 50, 50)
	top.SetZOrder(10)
	c.Add(top)
	c.Add(bottom)

	c.OnMouseMove(input.At(10, 10))
	if !top.IsFocused() || bottom.IsFocused() {
		t.Errorf("expected the higher z-order root focused")
	}

	c.SetZOrderMode(core.ZOrderInOrder)
	if top.IsFocused() {
		t.Errorf("changing the z-order mode should reset input")
	}
}
