package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

// ScrollBarColor is the track color of new scroll bars.
var ScrollBarColor = graphics.RGB(0x42, 0x42, 0x42)

// ScrollBar is the track component of a ScrollBox. It fills its host on the
// scroll axis and sits at the trailing edge of the cross axis. The Handle is
// a component of the bar.
type ScrollBar struct {
	core.WidgetBase
	surface
	axis   layout.Axis
	handle *Handle
}

// NewScrollBar creates a bar for a box scrolling along axis.
func NewScrollBar(name string, axis layout.Axis, thickness float64) *ScrollBar {
	b := &ScrollBar{axis: axis}
	b.color = ScrollBarColor
	b.Init(b, name)
	alignAlong(&b.WidgetBase, axis, layout.AlignFill, layout.AlignEnd)
	b.SetThickness(thickness)

	b.handle = NewHandle(name+".handle", HandleColor, HandleHoverColor)
	alignAlong(&b.handle.WidgetBase, axis, layout.AlignNone, layout.AlignFill)
	b.AddComponent(b.handle)
	return b
}

// Handle returns the draggable handle.
func (b *ScrollBar) Handle() *Handle {
	return b.handle
}

// Thickness returns the cross-axis size of the bar.
func (b *ScrollBar) Thickness() float64 {
	return layout.Extent(b.NonAlignedDimension(), b.axis.Cross())
}

// SetThickness changes the cross-axis size of the bar.
func (b *ScrollBar) SetThickness(thickness float64) bool {
	d := graphics.Dimension{}
	if b.axis == layout.AxisHorizontal {
		d.Height = thickness
	} else {
		d.Width = thickness
	}
	return b.SetDimension(d)
}

// place sizes the handle and moves it offset pixels from the leading edge
// of the track.
func (b *ScrollBar) place(length, offset float64) bool {
	var d graphics.Dimension
	var o graphics.Vector
	if b.axis == layout.AxisHorizontal {
		d.Width, o.X = length, offset
	} else {
		d.Height, o.Y = length, offset
	}
	sized := b.handle.SetDimension(d)
	moved := b.handle.SetOffset(o)
	return sized || moved
}

// alignAlong sets the alignment of w on axis and its cross axis.
func alignAlong(w *core.WidgetBase, axis layout.Axis, main, cross layout.Alignment) {
	w.SetAlignment(axis, main)
	w.SetAlignment(axis.Cross(), cross)
}

func (b *ScrollBar) HasGeometry() bool {
	return true
}

func (b *ScrollBar) VertexData(lineMode bool) []graphics.Vertex {
	return b.vertices(b)
}

func (b *ScrollBar) IndexData(lineMode bool) []uint32 {
	return b.indices(lineMode)
}

func (b *ScrollBar) GeometryDrawData(lineMode bool) graphics.DrawData {
	return b.drawData(b, lineMode)
}

func (b *ScrollBar) Clone() core.Widget {
	c := NewScrollBar(b.Name(), b.axis, b.Thickness())
	c.color = b.color
	b.CloneInto(c)
	return c
}
