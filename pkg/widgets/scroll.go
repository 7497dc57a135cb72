package widgets

import (
	"log"
	"math"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
)

// ScrollBox stacks its slots along one axis like a box and scrolls them when
// their summed extent overflows the box.
//
// # Scroll model
//
// The total content extent is the sum of the visible slots' padded extents
// plus the scroll padding on both ends. When it exceeds the viewport extent
// E the box is scrollable, the ScrollBar component is shown at the trailing
// cross edge, and the scroll position is a percent p in [0, 1]:
//
//	amount       = total*p - (E+padding)*p
//	handleLength = max(1, E/(overflow+E)*E)
//	handleOffset = p*(E-handleLength)
//
// Slots are laid out starting padding-amount past the leading edge, so p=0
// shows the first slot and p=1 ends the last slot at the viewport end.
// Weighted slots take their content extent: scrolled content has no free
// space to share.
// Content outside the viewport is culled through the slots' culled bounds.
//
// # Input
//
// The wheel moves the percent by the box step, after the focused slots had
// the chance to consume it. Pressing the handle starts a drag that maps the
// pointer to a percent linearly, keeping the offset between the pointer and
// the handle center recorded at the press.
type ScrollBox struct {
	core.ContainerBase
	axis    layout.Axis
	bar     *ScrollBar
	percent float64
	amount  float64
	padding float64
	step    float64

	dragging bool
	grab     float64
}

// NewScrollBox creates an empty box scrolling along axis.
func NewScrollBox(name string, axis layout.Axis) *ScrollBox {
	b := &ScrollBox{axis: axis, step: ScrollStep}
	b.Init(b, name)
	b.bar = NewScrollBar(name+".bar", axis, ScrollBarThickness)
	b.bar.SetVisibility(core.Hidden)
	b.AddComponent(b.bar)
	return b
}

// ScrollBoxOf creates a scroll box holding children in order.
func ScrollBoxOf(name string, axis layout.Axis, children ...core.Widget) *ScrollBox {
	b := NewScrollBox(name, axis)
	for _, c := range children {
		b.Insert(c)
	}
	return b
}

// Axis returns the scroll axis.
func (b *ScrollBox) Axis() layout.Axis {
	return b.axis
}

// Bar returns the scroll bar component.
func (b *ScrollBox) Bar() *ScrollBar {
	return b.bar
}

// Percent returns the scroll position in [0, 1].
func (b *ScrollBox) Percent() float64 {
	return b.percent
}

// ScrollAmount returns how many pixels the content is shifted back.
func (b *ScrollBox) ScrollAmount() float64 {
	return b.amount
}

// Step returns the percent one wheel notch scrolls.
func (b *ScrollBox) Step() float64 {
	return b.step
}

// SetStep changes the wheel step.
func (b *ScrollBox) SetStep(step float64) {
	b.step = step
}

// ScrollPadding returns the space kept before the first and after the last
// slot.
func (b *ScrollBox) ScrollPadding() float64 {
	return b.padding
}

// SetScrollPadding changes the space around the content and relayouts.
func (b *ScrollBox) SetScrollPadding(padding float64) bool {
	padding = math.Max(padding, 0)
	if b.padding == padding {
		return false
	}
	b.padding = padding
	b.Relayout()
	return true
}

// SetBarThickness changes the scroll bar thickness and relayouts.
func (b *ScrollBox) SetBarThickness(thickness float64) bool {
	if !b.bar.SetThickness(thickness) {
		return false
	}
	b.Relayout()
	return true
}

// TotalExtent returns the content extent on the scroll axis, scroll padding
// included.
func (b *ScrollBox) TotalExtent() float64 {
	return stackExtent(&b.ContainerBase, b.axis) + 2*b.padding
}

// OverflowExtent returns how far the content exceeds the viewport. ok is
// false when nothing overflows and the box cannot scroll.
func (b *ScrollBox) OverflowExtent() (extent float64, ok bool) {
	_, viewport := layout.Span(b.Bounds(), b.axis)
	overflow := b.TotalExtent() - viewport
	if overflow <= 0 {
		return 0, false
	}
	return overflow, true
}

// IsScrollable reports whether the content overflows.
func (b *ScrollBox) IsScrollable() bool {
	_, ok := b.OverflowExtent()
	return ok
}

// HandleLength returns the handle extent on the scroll axis.
func (b *ScrollBox) HandleLength() float64 {
	_, viewport := layout.Span(b.Bounds(), b.axis)
	overflow, ok := b.OverflowExtent()
	if !ok {
		return viewport
	}
	return math.Max(1, viewport/(overflow+viewport)*viewport)
}

// HandleOffset returns the handle position relative to the start of the
// track, within [0, viewport-HandleLength].
func (b *ScrollBox) HandleOffset() float64 {
	_, viewport := layout.Span(b.Bounds(), b.axis)
	return b.percent * (viewport - b.HandleLength())
}

// Scroll moves to percent, clamped to [0, 1]. Returns whether the content
// moved.
func (b *ScrollBox) Scroll(percent float64) bool {
	if !b.IsScrollable() {
		if percent != 0 {
			log.Printf("WARNING: %s: scroll to %.2f ignored; content does not overflow the %s viewport",
				b.Name(), percent, b.axis)
		}
		return false
	}
	return b.scrollTo(percent)
}

func (b *ScrollBox) scrollTo(percent float64) bool {
	percent = math.Max(0, math.Min(1, percent))
	if percent == b.percent {
		return false
	}
	b.percent = percent
	b.AlignSlots()
	return true
}

// ScrollSlotIntoView scrolls by the smallest amount that brings the slot at
// index inside the viewport. A slot larger than the viewport is aligned to
// its leading edge. Returns whether the content moved.
func (b *ScrollBox) ScrollSlotIntoView(index int) bool {
	s := b.SlotAt(index)
	if s == nil || !isShown(s) || !b.IsScrollable() {
		return false
	}
	slotStart, slotExtent := layout.Span(s.Bounds(), b.axis)
	viewStart, viewExtent := layout.Span(b.Bounds(), b.axis)

	var delta float64
	switch {
	case slotStart < viewStart || slotExtent > viewExtent:
		delta = slotStart - viewStart
	case slotStart+slotExtent > viewStart+viewExtent:
		delta = slotStart + slotExtent - (viewStart + viewExtent)
	}
	if delta == 0 {
		return false
	}

	divisorExtent := viewExtent
	if b.axis == layout.AxisHorizontal && HorizontalIntoViewUsesHeight {
		divisorExtent = b.Bounds().Height()
	}
	divisor := b.TotalExtent() - divisorExtent - b.padding
	if divisor <= 0 {
		return false
	}
	return b.scrollTo((b.amount + delta) / divisor)
}

// NewSlot creates a BoxSlot bound to its content.
func (b *ScrollBox) NewSlot() core.Slot {
	return newBoxSlot()
}

// ArrangeSlots stacks the slots shifted back by the scroll amount and
// updates the scroll bar.
func (b *ScrollBox) ArrangeSlots() bool {
	_, viewport := layout.Span(b.Bounds(), b.axis)
	total := b.TotalExtent()
	if total > viewport {
		b.bar.SetVisibility(core.Visible)
	} else {
		b.bar.SetVisibility(core.Hidden)
		b.percent = 0
	}
	b.amount = total*b.percent - (viewport+b.padding)*b.percent
	if total > viewport {
		b.bar.place(b.HandleLength(), b.HandleOffset())
	}
	return arrangeStack(&b.ContainerBase, b.axis, b.contentArea(), b.padding-b.amount, false)
}

// WrapExtent returns the total extent on the scroll axis, and the largest
// slot plus the visible bar on the cross axis.
func (b *ScrollBox) WrapExtent(axis layout.Axis) float64 {
	if axis == b.axis {
		return b.TotalExtent()
	}
	extent := b.ContainerBase.WrapExtent(axis)
	if b.bar.Visibility() == core.Visible {
		extent += b.bar.Thickness()
	}
	return extent
}

// EmptyWrapExtent returns the bar thickness.
func (b *ScrollBox) EmptyWrapExtent(axis layout.Axis) float64 {
	if t := b.bar.Thickness(); t > 0 {
		return t
	}
	return b.ContainerBase.EmptyWrapExtent(axis)
}

// OnMouseEnter focuses the box and routes the pointer to the slots and the
// handle.
func (b *ScrollBox) OnMouseEnter(event input.MouseEvent) bool {
	if !b.ContainerBase.OnMouseEnter(event) {
		return false
	}
	b.bar.handle.track(event)
	return true
}

// OnMouseLeave drops the drag and handle hover.
func (b *ScrollBox) OnMouseLeave(event input.MouseEvent) bool {
	b.dragging = false
	b.bar.handle.OnMouseLeave(event)
	return b.ContainerBase.OnMouseLeave(event)
}

// OnMouseMove drags the handle while it is pressed, and otherwise routes the
// pointer.
func (b *ScrollBox) OnMouseMove(event input.MouseEvent) bool {
	if b.dragging {
		b.drag(event)
		return true
	}
	if !b.ContainerBase.OnMouseMove(event) {
		return false
	}
	b.bar.handle.track(event)
	return true
}

// OnMouseButtonDown starts a drag on the handle or forwards the press to the
// slots.
func (b *ScrollBox) OnMouseButtonDown(event input.MouseEvent) bool {
	h := b.bar.handle
	if b.IsFocused() && b.IsInteractableWithMouse() && h.IsInteractableWithMouse() && h.IsInside(event.Position) {
		b.dragging = true
		b.grab = h.grab(event, b.axis)
		return true
	}
	return b.ContainerBase.OnMouseButtonDown(event)
}

// OnMouseButtonUp ends a drag or forwards the release to the slots.
func (b *ScrollBox) OnMouseButtonUp(event input.MouseEvent) bool {
	if b.dragging {
		b.dragging = false
		b.bar.handle.OnMouseButtonUp(event)
		return true
	}
	return b.ContainerBase.OnMouseButtonUp(event)
}

// OnMouseWheel lets the focused slots consume the wheel first and otherwise
// scrolls by the step.
func (b *ScrollBox) OnMouseWheel(event input.MouseEvent) bool {
	if b.ContainerBase.OnMouseWheel(event) {
		return true
	}
	if !b.IsFocused() || !b.IsScrollable() || event.Wheel == 0 {
		return false
	}
	b.scrollTo(b.percent - event.Wheel*b.step)
	return true
}

// drag maps the pointer to a percent, keeping the grab offset.
func (b *ScrollBox) drag(event input.MouseEvent) {
	length := b.HandleLength()
	start, extent := layout.Span(b.bar.Bounds(), b.axis)
	travel := extent - length
	if travel <= 0 {
		return
	}
	center := layout.Component(event.Position, b.axis) - b.grab
	b.scrollTo((center - start - length/2) / travel)
}

// ResetInput drops any drag in progress.
func (b *ScrollBox) ResetInput() {
	b.dragging = false
	b.ContainerBase.ResetInput()
}

func (b *ScrollBox) Clone() core.Widget {
	c := NewScrollBox(b.Name(), b.axis)
	c.padding = b.padding
	c.step = b.step
	b.CloneInto(c)
	if c.IsScrollable() {
		c.scrollTo(b.percent)
	}
	return c
}

// contentArea returns the part of the box not covered by a visible bar.
func (b *ScrollBox) contentArea() graphics.Bounds {
	area := b.Bounds()
	if b.bar.Visibility() != core.Visible {
		return area
	}
	cross := b.axis.Cross()
	start, extent := layout.Span(area, cross)
	return layout.WithSpan(area, cross, start, math.Max(extent-b.bar.Thickness(), 0))
}
