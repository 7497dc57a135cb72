package core

import (
	"fmt"
	"sync/atomic"

	"github.com/go-drift/slate/pkg/focus"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
)

// ID uniquely identifies a widget or slot for the lifetime of the process.
type ID uint64

var nextID atomic.Uint64

func newID() ID {
	return ID(nextID.Add(1))
}

// Visibility controls whether an object is drawn and can receive input.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// String returns a human-readable representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// ZOrderMode selects how the canvas orders drawing and hit testing.
type ZOrderMode int

const (
	// ZOrderInOrder uses tree order: later siblings are on top.
	ZOrderInOrder ZOrderMode = iota
	// ZOrderCustom sorts by each object's effective z-order value.
	ZOrderCustom
)

// String returns a human-readable representation of the mode.
func (m ZOrderMode) String() string {
	switch m {
	case ZOrderInOrder:
		return "in_order"
	case ZOrderCustom:
		return "custom"
	default:
		return fmt.Sprintf("ZOrderMode(%d)", int(m))
	}
}

// ParseZOrderMode converts the String form back to a ZOrderMode.
func ParseZOrderMode(s string) (ZOrderMode, error) {
	switch s {
	case "in_order", "":
		return ZOrderInOrder, nil
	case "custom":
		return ZOrderCustom, nil
	}
	return ZOrderInOrder, fmt.Errorf("unknown z-order mode %q", s)
}

// AttachState is the position of a widget in the attach/detach state machine.
type AttachState int

const (
	Detached AttachState = iota
	AttachedToSlot
	AttachedToCanvas
	// AttachedToHost marks a component. Components never change state.
	AttachedToHost
)

// String returns a human-readable representation of the state.
func (s AttachState) String() string {
	switch s {
	case Detached:
		return "detached"
	case AttachedToSlot:
		return "slot"
	case AttachedToCanvas:
		return "canvas"
	case AttachedToHost:
		return "component"
	default:
		return fmt.Sprintf("AttachState(%d)", int(s))
	}
}

// InputHandler receives pointer and keyboard events. Every handler reports
// whether the event was consumed.
type InputHandler interface {
	OnMouseEnter(event input.MouseEvent) bool
	OnMouseLeave(event input.MouseEvent) bool
	OnMouseMove(event input.MouseEvent) bool
	OnMouseWheel(event input.MouseEvent) bool
	OnMouseButtonDown(event input.MouseEvent) bool
	OnMouseButtonUp(event input.MouseEvent) bool
	OnMouseDoubleClick(event input.MouseEvent) bool
	OnKeyDown(event input.KeyEvent) bool
	OnKeyUp(event input.KeyEvent) bool
	// ResetInput clears focus, pressed and hover state recursively.
	ResetInput()
}

// GeometryProvider is the boundary between layout and rendering. The renderer
// only ever sees what these methods return.
type GeometryProvider interface {
	HasGeometry() bool
	VertexData(lineMode bool) []graphics.Vertex
	IndexData(lineMode bool) []uint32
	GeometryDrawData(lineMode bool) graphics.DrawData
}

// Object is the surface shared by widgets and slots.
type Object interface {
	InputHandler
	GeometryProvider

	ID() ID
	Name() string
	Bounds() graphics.Bounds
	Location() graphics.Vector
	Dimension() graphics.Dimension
	IsEnabled() bool
	IsVisible() bool
	IsFocused() bool
	FocusMode() focus.Mode
	CanReceiveFocus() bool
	// ZOrder returns the effective z-order, inherited additively from owners.
	ZOrder() int
	// IsCulled reports whether the object lies entirely outside the region
	// its ancestors leave visible.
	IsCulled() bool
	// IsInside is a rotation-aware point test.
	IsInside(position graphics.Vector) bool
	Intersect(bounds graphics.Bounds) bool
	// Canvas returns the canvas the object is reachable from, or nil.
	Canvas() Canvas
}

// Widget is a node of the tree. Concrete widgets embed WidgetBase.
type Widget interface {
	Object

	// BaseWidget returns the embedded base.
	BaseWidget() *WidgetBase
	Transform() layout.Transform
	// Owner returns the slot, host or nothing the widget is attached to.
	Owner() Object
	Slot() Slot
	Host() Widget
	Components() []Widget
	HasComponents() bool
	HasChildren() bool
	AttachState() AttachState

	AttachToSlot(slot Slot)
	AddToCanvas(canvas Canvas)
	RemoveFromParent(keepOnCanvas bool)

	Align() bool
	RefreshRotation() bool
	RefreshStatus()
	Rotation() float64
	RotationOrigin() graphics.Vector
	VisibleRegion() graphics.Bounds

	IsPressed() bool
	IsInteractableWithMouse() bool
	IsInteractableWithKey() bool

	Destroy()
	IsDestroyed() bool
	// Clone deep-copies the widget, its components and, for containers, its
	// slots. The clone is detached; the caller must attach it.
	Clone() Widget
}

// Slot mediates between a Container and one content Widget. It forwards
// input to the content and notifications to the container. Concrete slots
// embed SlotBase.
type Slot interface {
	Object
	focus.Candidate

	BaseSlot() *SlotBase
	Container() Container
	Content() Widget
	HasContent() bool
	// ReplaceContent swaps in w and hands the previous content back to the
	// caller, detached.
	ReplaceContent(w Widget) (old Widget, ok bool)
	// ReleaseContent removes the slot from its container and hands the
	// content back to the caller, detached.
	ReleaseContent() Widget
	IsInserted() bool
	// SetBounds stores the rectangle the container assigned to the slot.
	SetBounds(bounds graphics.Bounds) bool
	// CulledBounds returns the region the content is visible in.
	CulledBounds() graphics.Bounds
	// CopyAttributes copies layout attributes from another slot of the same
	// kind, used by Clone.
	CopyAttributes(from Slot)
}

// Container is a widget that owns slots. Concrete containers embed
// ContainerBase.
type Container interface {
	Widget
	Layouter

	BaseContainer() *ContainerBase
	SlotCount() int
	Slots() []Slot
	SlotAt(index int) Slot
	IndexOf(slot Slot) int
	Insert(w Widget) Slot
	InsertAt(w Widget, index int) Slot
	RemoveSlot(slot Slot) bool
	RemoveSlotAt(index int) bool

	Wrap() bool
	UnWrap() bool
	IsWrapped() bool
	AlignSlots() bool

	OnSlotDimensionUpdated(slot Slot)
	OnSlotVisibilityChanged(slot Slot)
	OnRemoveSlot(slot Slot)
	SlotContentInsertedOrReplaced(slot Slot)
	SlotAttributeUpdated(slot Slot)
}

// Layouter is the per-container layout rule. ContainerBase supplies the
// overlay rule; containers shadow the methods they change.
type Layouter interface {
	// NewSlot creates an empty slot of the container's slot type.
	NewSlot() Slot
	// ArrangeSlots assigns bounds to every slot and reports any change.
	ArrangeSlots() bool
	// WrapExtent returns the extent on axis needed by the visible slots,
	// container chrome included.
	WrapExtent(axis layout.Axis) float64
	// EmptyWrapExtent is the wrapped extent with no visible slots.
	EmptyWrapExtent(axis layout.Axis) float64
}
