package core

import (
	"log"
	"slices"

	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
)

// MinimumWrapExtent is the extent a wrapped container without visible slots
// and without chrome compresses to.
var MinimumWrapExtent = 1.0

// ContainerBase provides slot ownership, the notification protocol, wrap
// sizing and input routing for containers. Its Layouter methods implement
// the overlay rule: every slot covers the whole container.
//
// Concrete containers embed ContainerBase, call Init from the constructor
// and shadow the Layouter methods they change.
type ContainerBase struct {
	WidgetBase
	container Container
	slots     []Slot
	maxSlots  int
	wrapped   bool
	tracker   focus.Tracker
	captured  []Slot
}

// Init registers the outer container. It must be called before any other
// method.
func (c *ContainerBase) Init(self Container, name string) {
	c.WidgetBase.Init(self, name)
	c.container = self
}

// BaseContainer returns c.
func (c *ContainerBase) BaseContainer() *ContainerBase {
	return c
}

// SetMaxSlots limits the number of slots. Zero means unlimited.
func (c *ContainerBase) SetMaxSlots(n int) {
	c.maxSlots = n
}

// MaxSlots returns the slot limit, zero when unlimited.
func (c *ContainerBase) MaxSlots() int {
	return c.maxSlots
}

// HasChildren reports whether any slot exists.
func (c *ContainerBase) HasChildren() bool {
	return len(c.slots) > 0
}

// SlotCount returns the number of slots.
func (c *ContainerBase) SlotCount() int {
	return len(c.slots)
}

// Slots returns the slots in order. The slice must not be modified.
func (c *ContainerBase) Slots() []Slot {
	return c.slots
}

// SlotAt returns the slot at index, or nil when out of range.
func (c *ContainerBase) SlotAt(index int) Slot {
	if index < 0 || index >= len(c.slots) {
		return nil
	}
	return c.slots[index]
}

// IndexOf returns the position of s, or -1.
func (c *ContainerBase) IndexOf(s Slot) int {
	return slices.Index(c.slots, s)
}

// VisibleSlots returns the slots whose content is not hidden.
func (c *ContainerBase) VisibleSlots() []Slot {
	var out []Slot
	for _, s := range c.slots {
		if isShown(s) {
			out = append(out, s)
		}
	}
	return out
}

// isShown reports whether s takes part in layout. Only the content's own
// visibility counts, so hiding an ancestor does not collapse the layout.
func isShown(s Slot) bool {
	w := s.Content()
	return w != nil && w.BaseWidget().visibility == Visible
}

// Insert appends w in a new slot.
func (c *ContainerBase) Insert(w Widget) Slot {
	return c.InsertAt(w, len(c.slots))
}

// InsertAt puts w in a new slot at index and returns the slot. It returns
// nil for a nil or destroyed widget, a component, a full container or when
// w is the container or one of its ancestors. The widget is detached from
// any previous slot or canvas first.
func (c *ContainerBase) InsertAt(w Widget, index int) Slot {
	if w == nil || w.IsDestroyed() || w.Host() != nil || c.destroyed {
		return nil
	}
	if c.maxSlots > 0 && len(c.slots) >= c.maxSlots {
		return nil
	}
	if isAncestor(w, c.container) {
		return nil
	}
	s := c.container.NewSlot()
	sb := s.BaseSlot()
	sb.container = c.container
	sb.content = w
	index = max(0, min(index, len(c.slots)))
	c.slots = slices.Insert(c.slots, index, s)
	sb.inserted = true
	w.AttachToSlot(s)

	notify(c.container, func(cv Canvas) { cv.NewSlotAdded(c.container, s) })
	c.ResetSlotInput()
	c.container.SlotContentInsertedOrReplaced(s)
	w.RefreshRotation()
	w.RefreshStatus()
	return s
}

// RemoveSlot erases s. Its content is destroyed unless it holds outstanding
// references, in which case it is left detached. Returns false when s is
// not a slot of the container.
func (c *ContainerBase) RemoveSlot(s Slot) bool {
	if s == nil || s.Container() != c.container {
		return false
	}
	w := s.Content()
	if !c.eraseSlot(s) {
		return false
	}
	if w != nil {
		wb := w.BaseWidget()
		wb.slot = nil
		wb.afterDetach()
		if wb.refs == 0 {
			w.Destroy()
		}
	}
	return true
}

// RemoveSlotAt removes the slot at index. Returns false when out of range.
func (c *ContainerBase) RemoveSlotAt(index int) bool {
	s := c.SlotAt(index)
	if s == nil {
		return false
	}
	return c.RemoveSlot(s)
}

// Clear removes every slot.
func (c *ContainerBase) Clear() {
	for len(c.slots) > 0 {
		c.RemoveSlot(c.slots[len(c.slots)-1])
	}
}

// eraseSlot removes s from the slot list without touching the content's
// attachment state.
func (c *ContainerBase) eraseSlot(s Slot) bool {
	i := c.IndexOf(s)
	if i < 0 {
		return false
	}
	c.slots = slices.Delete(c.slots, i, i+1)
	c.tracker.Forget(s)
	c.captured = slices.DeleteFunc(c.captured, func(other Slot) bool { return other == s })
	sb := s.BaseSlot()
	sb.inserted = false
	sb.content = nil
	notify(c.container, func(cv Canvas) { cv.SlotRemoved(c.container, s) })
	c.container.OnRemoveSlot(s)
	return true
}

// ContentBounds returns the rectangle slots are laid out in. The overlay
// rule uses the whole container.
func (c *ContainerBase) ContentBounds() graphics.Bounds {
	return c.Bounds()
}

// NewSlot creates a plain slot.
func (c *ContainerBase) NewSlot() Slot {
	return NewSlot()
}

// ArrangeSlots gives every slot the container's content bounds.
func (c *ContainerBase) ArrangeSlots() bool {
	b := c.ContentBounds()
	changed := false
	for _, s := range c.slots {
		if s.SetBounds(b) {
			changed = true
		}
	}
	return changed
}

// WrapExtent returns the largest padded intrinsic extent on axis among the
// visible slots.
func (c *ContainerBase) WrapExtent(axis layout.Axis) float64 {
	extent := 0.0
	for _, s := range c.slots {
		if isShown(s) {
			extent = max(extent, s.Content().BaseWidget().PaddedExtent(axis))
		}
	}
	return extent
}

// EmptyWrapExtent returns MinimumWrapExtent.
func (c *ContainerBase) EmptyWrapExtent(axis layout.Axis) float64 {
	return MinimumWrapExtent
}

// AlignSlots arranges the slots and realigns their content. Returns whether
// any slot or content moved.
func (c *ContainerBase) AlignSlots() bool {
	changed := c.container.ArrangeSlots()
	for _, s := range c.slots {
		if w := s.Content(); w != nil && w.Align() {
			changed = true
		}
	}
	return changed
}

// Wrap compresses the container to the extent its visible slots need and
// keeps it compressed through later changes until UnWrap.
func (c *ContainerBase) Wrap() bool {
	c.wrapped = true
	return c.relayout()
}

// UnWrap restores the explicit or alignment-driven size.
func (c *ContainerBase) UnWrap() bool {
	if !c.wrapped {
		return false
	}
	c.wrapped = false
	h := c.transform.UnCompress(layout.AxisHorizontal)
	v := c.transform.UnCompress(layout.AxisVertical)
	aligned := c.container.Align()
	if h || v {
		c.notifyDimensionUpdated()
	}
	slotsChanged := c.container.AlignSlots()
	return h || v || aligned || slotsChanged
}

// IsWrapped reports whether the container sizes itself to its content.
func (c *ContainerBase) IsWrapped() bool {
	return c.wrapped
}

// WrapHorizontal compresses the width to the content.
func (c *ContainerBase) WrapHorizontal() bool {
	return c.transform.CompressWidth(c.wrapExtent(layout.AxisHorizontal))
}

// WrapVertical compresses the height to the content.
func (c *ContainerBase) WrapVertical() bool {
	return c.transform.CompressHeight(c.wrapExtent(layout.AxisVertical))
}

func (c *ContainerBase) wrapExtent(axis layout.Axis) float64 {
	for _, s := range c.slots {
		if isShown(s) {
			return c.container.WrapExtent(axis)
		}
	}
	return c.container.EmptyWrapExtent(axis)
}

// Relayout re-runs wrap when active and realigns the slots. Containers call
// it after changing their own chrome.
func (c *ContainerBase) Relayout() bool {
	return c.relayout()
}

func (c *ContainerBase) relayout() bool {
	changed := false
	if c.wrapped {
		h := c.WrapHorizontal()
		v := c.WrapVertical()
		if h || v {
			changed = true
			c.MarkUpdated()
			c.container.Align()
			c.notifyDimensionUpdated()
		}
	}
	if c.container.AlignSlots() {
		changed = true
	}
	return changed
}

// OnSlotDimensionUpdated re-wraps or realigns after a content size change.
func (c *ContainerBase) OnSlotDimensionUpdated(s Slot) {
	c.relayout()
	c.ResetSlotInput()
}

// OnSlotVisibilityChanged re-wraps or realigns after content was shown or
// hidden.
func (c *ContainerBase) OnSlotVisibilityChanged(s Slot) {
	c.relayout()
	c.ResetSlotInput()
}

// OnRemoveSlot re-wraps or realigns after a slot was erased.
func (c *ContainerBase) OnRemoveSlot(s Slot) {
	c.relayout()
	c.ResetSlotInput()
}

// SlotContentInsertedOrReplaced re-wraps or realigns after new content.
func (c *ContainerBase) SlotContentInsertedOrReplaced(s Slot) {
	c.relayout()
	c.ResetSlotInput()
}

// SlotAttributeUpdated re-wraps or realigns after a slot layout attribute
// changed.
func (c *ContainerBase) SlotAttributeUpdated(s Slot) {
	c.relayout()
}

// OnAligned realigns the slots when the container moved or resized.
func (c *ContainerBase) OnAligned() {
	c.container.AlignSlots()
}

// OnAttach recomputes the wrap once the container has an owner.
func (c *ContainerBase) OnAttach() {
	if c.wrapped {
		c.relayout()
	}
}

// OnDestroy destroys unreferenced content and detaches the rest.
func (c *ContainerBase) OnDestroy() {
	slots := c.slots
	c.slots = nil
	c.tracker.Reset()
	c.captured = nil
	for _, s := range slots {
		w := s.Content()
		sb := s.BaseSlot()
		sb.inserted = false
		sb.content = nil
		notify(c.container, func(cv Canvas) { cv.SlotRemoved(c.container, s) })
		if w == nil {
			continue
		}
		wb := w.BaseWidget()
		wb.slot = nil
		if wb.refs == 0 {
			w.Destroy()
		} else {
			wb.afterDetach()
		}
	}
}

// RefreshRotation recomputes the rotation and pushes it to the slots.
func (c *ContainerBase) RefreshRotation() bool {
	if !c.WidgetBase.RefreshRotation() {
		return false
	}
	for _, s := range c.slots {
		if w := s.Content(); w != nil {
			w.RefreshRotation()
		}
	}
	return true
}

// RefreshStatus drops input state of the container and its content when it
// can no longer receive focus.
func (c *ContainerBase) RefreshStatus() {
	c.WidgetBase.RefreshStatus()
	for _, s := range c.slots {
		if w := s.Content(); w != nil {
			w.RefreshStatus()
		}
	}
}

// CloneSlotsInto clones every slot's content into dst, copies the slot
// attributes and the wrap flag.
func (c *ContainerBase) CloneSlotsInto(dst Container) {
	for _, s := range c.slots {
		w := s.Content()
		if w == nil {
			continue
		}
		ns := dst.Insert(w.Clone())
		if ns == nil {
			log.Printf("WARNING: %s: clone dropped slot content %q", dst.Name(), w.Name())
			continue
		}
		ns.CopyAttributes(s)
	}
	if c.wrapped {
		dst.Wrap()
	}
}

// CloneInto copies the base widget state, the slots and the wrap flag.
func (c *ContainerBase) CloneInto(dst Container) {
	c.WidgetBase.CloneInto(dst)
	// Copying the transform copied the compression state as well; wrapping
	// is recomputed from the cloned slots.
	db := dst.BaseContainer()
	db.transform.UnCompress(layout.AxisHorizontal)
	db.transform.UnCompress(layout.AxisVertical)
	db.maxSlots = c.maxSlots
	c.CloneSlotsInto(dst)
}
