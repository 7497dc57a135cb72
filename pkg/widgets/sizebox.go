package widgets

import (
	"math"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

// SizeBox holds a single slot and clamps the space it gives the slot between
// a minimum and a maximum size. A zero maximum on an axis means unbounded.
//
// Unwrapped, the slot gets the box bounds clamped on each axis and placed at
// the leading edge. Wrapped, the box takes the content's padded extent
// clamped the same way:
//
//	// At least 100 wide, at most 40 high.
//	sb := widgets.NewSizeBox("cell", graphics.Dimension{Width: 100}, graphics.Dimension{Height: 40})
//	sb.Insert(label)
//	sb.Wrap()
type SizeBox struct {
	core.ContainerBase
	min graphics.Dimension
	max graphics.Dimension
}

// NewSizeBox creates a size box with the given limits.
func NewSizeBox(name string, minSize, maxSize graphics.Dimension) *SizeBox {
	b := &SizeBox{min: minSize, max: maxSize}
	b.Init(b, name)
	b.SetMaxSlots(1)
	return b
}

// Limits returns the minimum and maximum size.
func (b *SizeBox) Limits() (minSize, maxSize graphics.Dimension) {
	return b.min, b.max
}

// SetLimits changes the limits and relayouts the content.
func (b *SizeBox) SetLimits(minSize, maxSize graphics.Dimension) bool {
	if b.min == minSize && b.max == maxSize {
		return false
	}
	b.min, b.max = minSize, maxSize
	b.Relayout()
	return true
}

// clamp limits v to the box limits on axis.
func (b *SizeBox) clamp(v float64, axis layout.Axis) float64 {
	v = math.Max(v, layout.Extent(b.min, axis))
	if hi := layout.Extent(b.max, axis); hi > 0 {
		v = math.Min(v, math.Max(hi, layout.Extent(b.min, axis)))
	}
	return v
}

// ArrangeSlots gives the slot the box bounds clamped to the limits.
func (b *SizeBox) ArrangeSlots() bool {
	area := b.Bounds()
	for _, axis := range [2]layout.Axis{layout.AxisHorizontal, layout.AxisVertical} {
		start, extent := layout.Span(area, axis)
		area = layout.WithSpan(area, axis, start, b.clamp(extent, axis))
	}
	changed := false
	for _, s := range b.Slots() {
		if s.SetBounds(area) {
			changed = true
		}
	}
	return changed
}

// WrapExtent returns the content extent clamped to the limits.
func (b *SizeBox) WrapExtent(axis layout.Axis) float64 {
	return b.clamp(b.ContainerBase.WrapExtent(axis), axis)
}

// EmptyWrapExtent returns the minimum, or the wrap minimum when no minimum
// is set on axis.
func (b *SizeBox) EmptyWrapExtent(axis layout.Axis) float64 {
	if v := layout.Extent(b.min, axis); v > 0 {
		return v
	}
	return b.ContainerBase.EmptyWrapExtent(axis)
}

func (b *SizeBox) Clone() core.Widget {
	c := NewSizeBox(b.Name(), b.min, b.max)
	b.CloneInto(c)
	return c
}
