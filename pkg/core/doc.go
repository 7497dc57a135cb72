// Package core provides the retained widget tree: widgets, the slots that
// hold them and the containers that own those slots.
//
// # Tree Shape
//
// A Canvas holds root widgets. A Container owns Slots, and every Slot holds
// exactly one content Widget, which may itself be a Container. Components are
// widgets attached directly to a host widget for internal chrome (a scrollbar,
// a cursor, a highlight) and never go through a slot.
//
//	canvas
//	└── VerticalBox (container)
//	    ├── slot → Label
//	    └── slot → HorizontalBox
//	        ├── slot → Button (+ highlight component)
//	        └── slot → Slider (+ handle component)
//
// Ownership flows downward only: a container owns its slots and a slot owns its
// content while attached. The Owner, Slot, Container and Host accessors are
// relationship lookups, never ownership.
//
// # Layout
//
// Layout is two-phase. A container assigns each slot a rectangle according to
// its layout rule, then every content widget aligns itself inside its slot
// rectangle using its own Transform alignment and padding.
//
// A wrapped container compresses itself to the extent its visible slots need.
// Changes flow bottom-up (content → slot → container → canvas) and trigger
// top-down re-alignment. Every align and wrap step reports whether it changed
// anything and callers only cascade on a change, which keeps notification
// cycles finite.
//
// # Embedding
//
// Concrete widgets embed WidgetBase (leaves) or ContainerBase (containers) and
// register themselves with Init so that base methods can dispatch hooks to the
// outer type:
//
//	type Swatch struct {
//	    core.WidgetBase
//	    Color graphics.Color
//	}
//
//	func NewSwatch(name string) *Swatch {
//	    s := &Swatch{}
//	    s.Init(s, name)
//	    return s
//	}
//
// Optional hooks are discovered by interface assertion on the outer type:
// OnAttach, OnRemoveFromParent, OnAligned, OnDestroy and OnFocusChanged.
//
// # Threading
//
// The tree is single-threaded. Every operation runs to completion on the
// calling goroutine; there is no locking and no deferred work.
package core
