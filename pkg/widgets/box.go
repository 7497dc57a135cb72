package widgets

import (
	"fmt"
	"log"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

// SlotSizing selects how a box slot gets its main-axis extent.
type SlotSizing int

const (
	// BoundToContent sizes the slot to its content's intrinsic extent plus
	// padding.
	BoundToContent SlotSizing = iota
	// BoundToSlot shares the space left by BoundToContent siblings between
	// all BoundToSlot slots in proportion to their weights.
	BoundToSlot
)

// String returns a human-readable representation of the sizing.
func (s SlotSizing) String() string {
	switch s {
	case BoundToContent:
		return "content"
	case BoundToSlot:
		return "slot"
	default:
		return fmt.Sprintf("SlotSizing(%d)", int(s))
	}
}

// minimumSlotExtent is the floor of a weighted slot's extent.
const minimumSlotExtent = 1.0

// BoxSlot is the slot of stacking containers.
type BoxSlot struct {
	core.SlotBase
	sizing SlotSizing
	weight float64
}

func newBoxSlot() *BoxSlot {
	s := &BoxSlot{weight: 1}
	s.Init(s)
	return s
}

// Sizing returns how the slot is sized on the main axis.
func (s *BoxSlot) Sizing() SlotSizing {
	return s.sizing
}

// Weight returns the share of free space a BoundToSlot slot takes.
func (s *BoxSlot) Weight() float64 {
	return s.weight
}

// SetSizing changes how the slot is sized and relayouts the container.
func (s *BoxSlot) SetSizing(sizing SlotSizing) bool {
	if s.sizing == sizing {
		return false
	}
	s.sizing = sizing
	s.attributeUpdated()
	return true
}

// SetWeight changes the slot weight. Negative weights are treated as zero.
func (s *BoxSlot) SetWeight(weight float64) bool {
	weight = max(weight, 0)
	if s.weight == weight {
		return false
	}
	s.weight = weight
	s.attributeUpdated()
	return true
}

func (s *BoxSlot) attributeUpdated() {
	if c := s.Container(); c != nil && s.IsInserted() {
		c.SlotAttributeUpdated(s)
	}
}

// CopyAttributes copies sizing and weight from another box slot.
func (s *BoxSlot) CopyAttributes(from core.Slot) {
	if other, ok := from.(*BoxSlot); ok {
		s.sizing = other.sizing
		s.weight = other.weight
		s.attributeUpdated()
	}
}

func slotSizing(s core.Slot) (SlotSizing, float64) {
	if b, ok := s.(*BoxSlot); ok {
		return b.sizing, b.weight
	}
	return BoundToContent, 0
}

// stackSizing is slotSizing with weights ignored when the stack has no free
// space to share.
func stackSizing(s core.Slot, weighted bool) (SlotSizing, float64) {
	if !weighted {
		return BoundToContent, 0
	}
	return slotSizing(s)
}

func paddedExtent(s core.Slot, axis layout.Axis) float64 {
	return s.Content().BaseWidget().PaddedExtent(axis)
}

func isShown(s core.Slot) bool {
	w := s.Content()
	return w != nil && w.BaseWidget().Visibility() == core.Visible
}

// stackExtent returns the summed padded extent of the visible slots on axis.
func stackExtent(c *core.ContainerBase, axis layout.Axis) float64 {
	total := 0.0
	for _, s := range c.Slots() {
		if isShown(s) {
			total += paddedExtent(s, axis)
		}
	}
	return total
}

// arrangeStack places the visible slots of c one after the other along axis
// inside area, starting offset past the leading edge. Every slot spans the
// whole area on the cross axis. Hidden slots are skipped. Unless weighted,
// BoundToSlot slots take their content extent like BoundToContent ones.
func arrangeStack(c *core.ContainerBase, axis layout.Axis, area graphics.Bounds, offset float64, weighted bool) bool {
	mainStart, mainExtent := layout.Span(area, axis)

	fixed, weights := 0.0, 0.0
	for _, s := range c.Slots() {
		if !isShown(s) {
			continue
		}
		switch sizing, weight := stackSizing(s, weighted); sizing {
		case BoundToContent:
			fixed += paddedExtent(s, axis)
		case BoundToSlot:
			weights += weight
		}
	}
	free := mainExtent - fixed

	changed := false
	pos := mainStart + offset
	for _, s := range c.Slots() {
		if !isShown(s) {
			continue
		}
		var extent float64
		switch sizing, weight := stackSizing(s, weighted); sizing {
		case BoundToSlot:
			extent = minimumSlotExtent
			if weights > 0 {
				extent = max(free*weight/weights, minimumSlotExtent)
			}
		default:
			extent = paddedExtent(s, axis)
		}
		if s.SetBounds(layout.WithSpan(area, axis, pos, extent)) {
			changed = true
		}
		pos += extent
	}
	return changed
}

// stackBox implements the layout rule shared by HorizontalBox and
// VerticalBox.
type stackBox struct {
	core.ContainerBase
	axis          layout.Axis
	weightsWarned bool
}

// Axis returns the stacking axis.
func (b *stackBox) Axis() layout.Axis {
	return b.axis
}

// NewSlot creates a BoxSlot bound to its content.
func (b *stackBox) NewSlot() core.Slot {
	return newBoxSlot()
}

// ArrangeSlots stacks the visible slots along the box axis. A wrapped box
// sizes weighted slots to their content.
func (b *stackBox) ArrangeSlots() bool {
	return arrangeStack(&b.ContainerBase, b.axis, b.Bounds(), 0, !b.IsWrapped())
}

// WrapExtent sums the slots on the stacking axis and takes the largest on
// the cross axis.
func (b *stackBox) WrapExtent(axis layout.Axis) float64 {
	if axis != b.axis {
		return b.ContainerBase.WrapExtent(axis)
	}
	if !b.weightsWarned {
		for _, s := range b.Slots() {
			if sizing, _ := slotSizing(s); sizing == BoundToSlot && isShown(s) {
				log.Printf("WARNING: %s: weighted slots in a wrapped %s box take their content size; "+
					"weights have no free space to share.", b.Name(), b.axis)
				b.weightsWarned = true
				break
			}
		}
	}
	return stackExtent(&b.ContainerBase, axis)
}

// HorizontalBox stacks its slots left to right.
type HorizontalBox struct {
	stackBox
}

// NewHorizontalBox creates an empty horizontal box.
func NewHorizontalBox(name string) *HorizontalBox {
	b := &HorizontalBox{}
	b.axis = layout.AxisHorizontal
	b.Init(b, name)
	return b
}

// HorizontalBoxOf creates a horizontal box holding children in order.
func HorizontalBoxOf(name string, children ...core.Widget) *HorizontalBox {
	b := NewHorizontalBox(name)
	for _, c := range children {
		b.Insert(c)
	}
	return b
}

func (b *HorizontalBox) Clone() core.Widget {
	c := NewHorizontalBox(b.Name())
	b.CloneInto(c)
	return c
}

// VerticalBox stacks its slots top to bottom.
type VerticalBox struct {
	stackBox
}

// NewVerticalBox creates an empty vertical box.
func NewVerticalBox(name string) *VerticalBox {
	b := &VerticalBox{}
	b.axis = layout.AxisVertical
	b.Init(b, name)
	return b
}

// VerticalBoxOf creates a vertical box holding children in order.
func VerticalBoxOf(name string, children ...core.Widget) *VerticalBox {
	b := NewVerticalBox(name)
	for _, c := range children {
		b.Insert(c)
	}
	return b
}

func (b *VerticalBox) Clone() core.Widget {
	c := NewVerticalBox(b.Name())
	b.CloneInto(c)
	return c
}
