package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

// Border holds a single slot inset by a frame and draws the frame as four
// quads. When wrapped it is the content's padded extent plus the frame on
// both sides.
type Border struct {
	core.ContainerBase
	thickness graphics.Margin
	color     graphics.Color
}

// NewBorder creates a border with the given frame thickness and color.
func NewBorder(name string, thickness graphics.Margin, color graphics.Color) *Border {
	b := &Border{thickness: thickness, color: color}
	b.Init(b, name)
	b.SetMaxSlots(1)
	return b
}

// BorderOf creates a border around content.
func BorderOf(name string, thickness graphics.Margin, color graphics.Color, content core.Widget) *Border {
	b := NewBorder(name, thickness, color)
	b.Insert(content)
	return b
}

// Thickness returns the frame thickness.
func (b *Border) Thickness() graphics.Margin {
	return b.thickness
}

// SetThickness changes the frame and relayouts the content.
func (b *Border) SetThickness(m graphics.Margin) bool {
	if b.thickness == m {
		return false
	}
	b.thickness = m
	b.MarkUpdated()
	b.Relayout()
	return true
}

// Color returns the frame color.
func (b *Border) Color() graphics.Color {
	return b.color
}

// SetColor changes the frame color.
func (b *Border) SetColor(c graphics.Color) {
	if b.color == c {
		return
	}
	b.color = c
	b.MarkUpdated()
}

// Content returns the bordered widget, or nil.
func (b *Border) Content() core.Widget {
	if s := b.SlotAt(0); s != nil {
		return s.Content()
	}
	return nil
}

// SetContent puts w inside the border. Previous content is removed, and
// destroyed unless it holds references.
func (b *Border) SetContent(w core.Widget) core.Slot {
	if s := b.SlotAt(0); s != nil {
		if s.Content() == w {
			return s
		}
		b.RemoveSlot(s)
	}
	return b.Insert(w)
}

// ContentBounds returns the area inside the frame.
func (b *Border) ContentBounds() graphics.Bounds {
	return b.Bounds().Inset(b.thickness)
}

// ArrangeSlots places the slot inside the frame.
func (b *Border) ArrangeSlots() bool {
	area := b.ContentBounds()
	changed := false
	for _, s := range b.Slots() {
		if s.SetBounds(area) {
			changed = true
		}
	}
	return changed
}

// WrapExtent returns the content extent plus the frame on axis.
func (b *Border) WrapExtent(axis layout.Axis) float64 {
	lead, trail := layout.Insets(b.thickness, axis)
	return b.ContainerBase.WrapExtent(axis) + lead + trail
}

// EmptyWrapExtent returns the frame alone, or the wrap minimum for a
// border without thickness on axis.
func (b *Border) EmptyWrapExtent(axis layout.Axis) float64 {
	lead, trail := layout.Insets(b.thickness, axis)
	if lead+trail > 0 {
		return lead + trail
	}
	return b.ContainerBase.EmptyWrapExtent(axis)
}

func (b *Border) HasGeometry() bool {
	return b.thickness != (graphics.Margin{})
}

func (b *Border) VertexData(lineMode bool) []graphics.Vertex {
	return graphics.FrameVertices(b.Bounds(), b.thickness, b.color, b.Rotation(), b.RotationOrigin())
}

func (b *Border) IndexData(lineMode bool) []uint32 {
	return graphics.QuadListIndices(4, lineMode)
}

func (b *Border) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(b.VertexData(lineMode), b.IndexData(lineMode), 0, lineMode)
}

func (b *Border) Clone() core.Widget {
	c := NewBorder(b.Name(), b.thickness, b.color)
	b.CloneInto(c)
	return c
}
