package core

import (
	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
)

// SlotBase is the default slot. It stores the rectangle its container
// assigns, delegates state queries and input to its content, and forwards
// content changes to the container. Containers with per-slot layout
// attributes embed it in their own slot type.
type SlotBase struct {
	id        ID
	self      Slot
	container Container
	content   Widget
	bounds    graphics.Bounds
	inserted  bool
}

// NewSlot creates a plain slot.
func NewSlot() *SlotBase {
	s := &SlotBase{}
	s.Init(s)
	return s
}

// Init registers the outer slot. It must be called by constructors of slot
// types that embed SlotBase.
func (s *SlotBase) Init(self Slot) {
	s.id = newID()
	s.self = self
}

// BaseSlot returns s.
func (s *SlotBase) BaseSlot() *SlotBase {
	return s
}

// ID returns the process-unique slot id.
func (s *SlotBase) ID() ID {
	return s.id
}

// Name returns the content name, or "slot" when empty.
func (s *SlotBase) Name() string {
	if s.content != nil {
		return s.content.Name()
	}
	return "slot"
}

// Container returns the owning container.
func (s *SlotBase) Container() Container {
	return s.container
}

// Content returns the held widget, or nil.
func (s *SlotBase) Content() Widget {
	return s.content
}

// HasContent reports whether the slot holds a widget.
func (s *SlotBase) HasContent() bool {
	return s.content != nil
}

// IsInserted reports whether the slot is part of its container.
func (s *SlotBase) IsInserted() bool {
	return s.inserted
}

// Bounds returns the rectangle assigned by the container.
func (s *SlotBase) Bounds() graphics.Bounds {
	return s.bounds
}

// Location returns the top-left corner of the slot.
func (s *SlotBase) Location() graphics.Vector {
	return s.bounds.Min
}

// Dimension returns the slot size.
func (s *SlotBase) Dimension() graphics.Dimension {
	return s.bounds.Dimension()
}

// SetBounds stores the rectangle assigned by the container. The content is
// realigned by the container's AlignSlots.
func (s *SlotBase) SetBounds(b graphics.Bounds) bool {
	if s.bounds == b {
		return false
	}
	s.bounds = b
	return true
}

// CulledBounds returns the region of the container left visible by its
// ancestors.
func (s *SlotBase) CulledBounds() graphics.Bounds {
	if s.container == nil {
		return s.bounds
	}
	return s.container.VisibleRegion()
}

// CopyAttributes does nothing: plain slots carry no layout attributes.
func (s *SlotBase) CopyAttributes(from Slot) {}

// Canvas returns the container's canvas.
func (s *SlotBase) Canvas() Canvas {
	if s.container == nil {
		return nil
	}
	return s.container.Canvas()
}

func (s *SlotBase) IsEnabled() bool {
	return s.content != nil && s.content.IsEnabled()
}

func (s *SlotBase) IsVisible() bool {
	return s.content != nil && s.content.IsVisible()
}

func (s *SlotBase) IsFocused() bool {
	return s.content != nil && s.content.IsFocused()
}

func (s *SlotBase) FocusMode() focus.Mode {
	if s.content == nil {
		return focus.ModeZOrder
	}
	return s.content.FocusMode()
}

func (s *SlotBase) CanReceiveFocus() bool {
	return s.content != nil && s.content.CanReceiveFocus()
}

func (s *SlotBase) ZOrder() int {
	if s.content != nil {
		return s.content.ZOrder()
	}
	if s.container != nil {
		return s.container.ZOrder()
	}
	return 0
}

func (s *SlotBase) IsCulled() bool {
	return s.content == nil || s.content.IsCulled()
}

// IsInside tests the content, so routing honors the content's rotation and
// alignment inside the slot.
func (s *SlotBase) IsInside(position graphics.Vector) bool {
	return s.content != nil && s.content.IsInside(position)
}

func (s *SlotBase) Intersect(b graphics.Bounds) bool {
	return s.bounds.Intersects(b)
}

// HasGeometry reports false: slots only draw container chrome, which
// container-specific slot types add by overriding the geometry methods.
func (s *SlotBase) HasGeometry() bool {
	return false
}

func (s *SlotBase) VertexData(lineMode bool) []graphics.Vertex {
	return nil
}

func (s *SlotBase) IndexData(lineMode bool) []uint32 {
	return nil
}

func (s *SlotBase) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawData{}
}

func (s *SlotBase) OnMouseEnter(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseEnter(event)
}

func (s *SlotBase) OnMouseLeave(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseLeave(event)
}

func (s *SlotBase) OnMouseMove(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseMove(event)
}

func (s *SlotBase) OnMouseWheel(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseWheel(event)
}

func (s *SlotBase) OnMouseButtonDown(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseButtonDown(event)
}

func (s *SlotBase) OnMouseButtonUp(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseButtonUp(event)
}

func (s *SlotBase) OnMouseDoubleClick(event input.MouseEvent) bool {
	return s.content != nil && s.content.OnMouseDoubleClick(event)
}

func (s *SlotBase) OnKeyDown(event input.KeyEvent) bool {
	return s.content != nil && s.content.OnKeyDown(event)
}

func (s *SlotBase) OnKeyUp(event input.KeyEvent) bool {
	return s.content != nil && s.content.OnKeyUp(event)
}

func (s *SlotBase) ResetInput() {
	if s.content != nil {
		s.content.ResetInput()
	}
}

// ReplaceContent puts w in the slot and returns the previous content,
// detached and still alive. It fails for nil or destroyed widgets, for the
// current content, for slots no longer in a container and when w is an
// ancestor of the container.
func (s *SlotBase) ReplaceContent(w Widget) (old Widget, ok bool) {
	if w == nil || w.IsDestroyed() || w == s.content || !s.inserted || s.container == nil {
		return nil, false
	}
	if w.Host() != nil || isAncestor(w, s.container) {
		return nil, false
	}
	old = s.content
	s.content = w
	if old != nil {
		ob := old.BaseWidget()
		ob.slot = nil
		ob.afterDetach()
	}
	w.AttachToSlot(s.self)
	notify(s.self, func(c Canvas) { c.SlotContentReplaced(s.self, old, w) })
	s.container.SlotContentInsertedOrReplaced(s.self)
	return old, true
}

// ReleaseContent removes the slot from its container and returns the
// content, detached and still alive.
func (s *SlotBase) ReleaseContent() Widget {
	w := s.content
	if w == nil || s.container == nil || !s.inserted {
		return nil
	}
	s.container.BaseContainer().eraseSlot(s.self)
	wb := w.BaseWidget()
	wb.slot = nil
	wb.afterDetach()
	return w
}

// isAncestor reports whether w is c or one of its ancestors.
func isAncestor(w Widget, c Widget) bool {
	for p := c; p != nil; p = p.BaseWidget().Parent() {
		if p == w {
			return true
		}
	}
	return false
}
