package canvas

import (
	"fmt"

	"github.com/go-drift/slate/pkg/core"
)

// EventKind identifies a canvas notification.
type EventKind int

const (
	EventRootAdded EventKind = iota
	EventRootRemoved
	EventWidgetUpdated
	EventVerticesSizeChanged
	EventSlotAdded
	EventSlotRemoved
	EventSlotContentReplaced
	EventVisibilityChanged
	EventZOrderModeUpdated
	EventZOrderChanged
	EventResized
)

// String returns a human-readable representation of the kind.
func (k EventKind) String() string {
	switch k {
	case EventRootAdded:
		return "root_added"
	case EventRootRemoved:
		return "root_removed"
	case EventWidgetUpdated:
		return "widget_updated"
	case EventVerticesSizeChanged:
		return "vertices_size_changed"
	case EventSlotAdded:
		return "slot_added"
	case EventSlotRemoved:
		return "slot_removed"
	case EventSlotContentReplaced:
		return "slot_content_replaced"
	case EventVisibilityChanged:
		return "visibility_changed"
	case EventZOrderModeUpdated:
		return "z_order_mode_updated"
	case EventZOrderChanged:
		return "z_order_changed"
	case EventResized:
		return "resized"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one notification received from the widget tree. Fields that do
// not apply to the kind are nil or zero.
type Event struct {
	Kind EventKind
	// Object is the widget or slot the event is about. For slot events it
	// is the container.
	Object core.Object
	Slot   core.Slot
	// Old and New are the previous and new content of a replaced slot.
	Old core.Widget
	New core.Widget
	// Count is the new vertex count of a VerticesSizeChanged event.
	Count int
}

func (e Event) String() string {
	name := ""
	if e.Object != nil {
		name = e.Object.Name()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, name)
}

// Observer receives every event of a canvas, synchronously, in the order
// the tree produced them. Observers must not mutate the tree.
type Observer func(Event)
