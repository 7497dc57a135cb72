package core

import (
	"sync/atomic"

	"github.com/go-drift/slate/pkg/graphics"
)

// Canvas is the root coordinate space of a widget tree and the sink for every
// structural or visual change. The presentation layer implements it to keep
// its own state in sync with the tree.
//
// Canvas methods are called synchronously from tree operations and must not
// mutate the tree.
type Canvas interface {
	// AddToCanvas registers w as a root. It is called by Widget.AddToCanvas
	// after w has detached from any previous owner and must be idempotent.
	AddToCanvas(w Widget)
	// RemoveFromCanvas unregisters a root.
	RemoveFromCanvas(w Widget)

	// WidgetUpdated reports a geometry or style change that needs a redraw.
	WidgetUpdated(o Object)
	// VerticesSizeChanged reports that the vertex count of o changed and
	// any geometry buffer must be resized.
	VerticesSizeChanged(o Object, count int)
	NewSlotAdded(c Container, s Slot)
	SlotRemoved(c Container, s Slot)
	SlotContentReplaced(s Slot, old, new Widget)
	VisibilityChanged(o Object)
	ZOrderModeUpdated()
	ZOrderChanged(o Object)
	ZOrderMode() ZOrderMode

	// OverlappingWidgets returns widgets whose bounds intersect b, in draw
	// order.
	OverlappingWidgets(b graphics.Bounds) []Widget

	ScreenBounds() graphics.Bounds
	ScreenDimension() graphics.Dimension
	ScreenCenter() graphics.Vector
	// ScreenRotation is the rotation in degrees applied to every root.
	ScreenRotation() float64
	// AnchorPoint returns the origin a canvas-aligned root with AlignNone
	// is offset from, for the reference rectangle b.
	AnchorPoint(b graphics.Bounds) graphics.Vector
}

var suppressed atomic.Int32

// SuppressCanvasNotifications stops change notifications from reaching any
// canvas until the returned function is called. Calls nest. Registration
// through AddToCanvas and RemoveFromCanvas is never suppressed.
//
//	restore := core.SuppressCanvasNotifications()
//	defer restore()
func SuppressCanvasNotifications() (restore func()) {
	suppressed.Add(1)
	var done atomic.Bool
	return func() {
		if done.CompareAndSwap(false, true) {
			suppressed.Add(-1)
		}
	}
}

// CanvasNotificationsSuppressed reports whether notifications are currently
// suppressed.
func CanvasNotificationsSuppressed() bool {
	return suppressed.Load() > 0
}

// notify calls fn with the canvas o is reachable from, unless there is none
// or notifications are suppressed.
func notify(o Object, fn func(Canvas)) {
	if CanvasNotificationsSuppressed() || o == nil {
		return
	}
	if c := o.Canvas(); c != nil {
		fn(c)
	}
}

func notifyUpdated(o Object) {
	notify(o, func(c Canvas) { c.WidgetUpdated(o) })
}
