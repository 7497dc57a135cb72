package widgets

import (
	"testing"

	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
)

func TestOverlay_StacksSlotsOverWholeArea(t *testing.T) {
	bg, badge := rect("bg", 10, 10), rect("badge", 4, 4)
	o := sized(OverlayOf("card", bg, badge), 40, 30)

	for i, s := range o.Slots() {
		if s.Bounds() != o.Bounds() {
			t.Errorf("slot %d: expected the whole overlay, got %+v", i, s.Bounds())
		}
	}

	o.Wrap()
	if d := o.Dimension(); d.Width != 10 || d.Height != 10 {
		t.Errorf("expected wrap to the largest slot 10x10, got %vx%v", d.Width, d.Height)
	}
}

func TestOverlay_TopmostSlotTakesFocus(t *testing.T) {
	bg, top := rect("bg", 40, 30), rect("top", 40, 30)
	o := sized(OverlayOf("card", bg, top), 40, 30)
	c := onCanvas(o, 100, 100)

	c.OnMouseMove(input.At(10, 10))
	if !top.IsFocused() || bg.IsFocused() {
		t.Error("expected only the last slot focused")
	}
}

func TestBorder_InsetsContent(t *testing.T) {
	content := rect("content", 20, 10)
	b := sized(BorderOf("frame", graphics.MarginAll(5), graphics.ColorWhite, content), 100, 50)

	want := graphics.BoundsLTWH(5, 5, 90, 40)
	if got := b.SlotAt(0).Bounds(); got != want {
		t.Errorf("expected slot %+v, got %+v", want, got)
	}
	if !b.HasGeometry() || len(b.VertexData(false)) != 16 {
		t.Errorf("expected four frame quads")
	}

	b.Wrap()
	if d := b.Dimension(); d.Width != 30 || d.Height != 20 {
		t.Errorf("expected wrapped 30x20, got %vx%v", d.Width, d.Height)
	}

	b.SetThickness(graphics.MarginAll(1))
	if d := b.Dimension(); d.Width != 22 || d.Height != 12 {
		t.Errorf("expected rewrap after thickness change, got %vx%v", d.Width, d.Height)
	}
}

func TestBorder_SingleSlot(t *testing.T) {
	b := NewBorder("frame", graphics.MarginAll(2), graphics.ColorWhite)
	first := rect("first", 1, 1)
	b.SetContent(first)
	if b.Insert(rect("second", 1, 1)) != nil {
		t.Error("expected a second insert to be rejected")
	}

	b.SetContent(rect("third", 1, 1))
	if b.Content().Name() != "third" || !first.IsDestroyed() {
		t.Error("expected SetContent to replace and destroy the previous content")
	}
}

func TestBorder_EmptyWrap(t *testing.T) {
	b := sized(NewBorder("frame", graphics.MarginSymmetric(3, 0), graphics.ColorWhite), 50, 50)
	b.Wrap()
	if d := b.Dimension(); d.Width != 6 || d.Height != 1 {
		t.Errorf("expected 6x1, got %vx%v", d.Width, d.Height)
	}
}

func TestSizeBox_ClampsContent(t *testing.T) {
	tests := []struct {
		name       string
		min, max   graphics.Dimension
		content    graphics.Dimension
		wantWidth  float64
		wantHeight float64
	}{
		{name: "within", min: dim(10, 10), max: dim(100, 100), content: dim(40, 30), wantWidth: 40, wantHeight: 30},
		{name: "below min", min: dim(50, 50), max: dim(100, 100), content: dim(10, 10), wantWidth: 50, wantHeight: 50},
		{name: "above max", min: dim(0, 0), max: dim(100, 20), content: dim(200, 30), wantWidth: 100, wantHeight: 20},
		{name: "unbounded height", min: dim(0, 0), max: dim(100, 0), content: dim(10, 500), wantWidth: 10, wantHeight: 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewSizeBox("limits", tt.min, tt.max)
			b.Insert(NewImage("content", tt.content, graphics.ColorWhite))
			b.Wrap()
			if d := b.Dimension(); d.Width != tt.wantWidth || d.Height != tt.wantHeight {
				t.Errorf("expected %vx%v, got %vx%v", tt.wantWidth, tt.wantHeight, d.Width, d.Height)
			}
		})
	}
}

func TestSizeBox_SlotClampedAtStart(t *testing.T) {
	b := sized(NewSizeBox("limits", dim(0, 0), dim(60, 0)), 300, 200)
	b.Insert(rect("content", 10, 10))

	want := graphics.BoundsLTWH(0, 0, 60, 200)
	if got := b.SlotAt(0).Bounds(); got != want {
		t.Errorf("expected slot %+v, got %+v", want, got)
	}

	b.SetLimits(dim(0, 0), dim(30, 50))
	want = graphics.BoundsLTWH(0, 0, 30, 50)
	if got := b.SlotAt(0).Bounds(); got != want {
		t.Errorf("after SetLimits: expected slot %+v, got %+v", want, got)
	}
}
