package widgets

import "github.com/go-drift/slate/pkg/core"

// Overlay places every slot over the whole container. Slots are drawn and
// hit-tested in insertion order, the last slot on top, unless the canvas
// sorts by z-order.
//
// A wrapped overlay takes the largest padded extent of its visible slots on
// each axis:
//
//	o := widgets.OverlayOf("card", background, badge)
//	o.Wrap()
type Overlay struct {
	core.ContainerBase
}

// NewOverlay creates an empty overlay.
func NewOverlay(name string) *Overlay {
	o := &Overlay{}
	o.Init(o, name)
	return o
}

// OverlayOf creates an overlay holding children, the first at the bottom.
func OverlayOf(name string, children ...core.Widget) *Overlay {
	o := NewOverlay(name)
	for _, c := range children {
		o.Insert(c)
	}
	return o
}

func (o *Overlay) Clone() core.Widget {
	c := NewOverlay(o.Name())
	o.CloneInto(c)
	return c
}
