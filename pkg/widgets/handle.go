package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
)

// Default handle colors.
var (
	HandleColor      = graphics.RGB(0x9e, 0x9e, 0x9e)
	HandleHoverColor = graphics.RGB(0xbd, 0xbd, 0xbd)
)

// Handle is the draggable knob of a ScrollBar or Slider. It is always a
// component; its host routes pointer events to it.
type Handle struct {
	core.WidgetBase
	surface
	hoverColor graphics.Color
}

// NewHandle creates a handle drawn in color, switching to hoverColor while
// hovered or pressed.
func NewHandle(name string, color, hoverColor graphics.Color) *Handle {
	h := &Handle{hoverColor: hoverColor}
	h.color = color
	h.Init(h, name)
	return h
}

func (h *Handle) currentColor() graphics.Color {
	if h.IsHovered() || h.IsPressed() {
		return h.hoverColor
	}
	return h.color
}

// Center returns the handle's center on axis.
func (h *Handle) Center(axis layout.Axis) float64 {
	return layout.Component(h.Bounds().Center(), axis)
}

func (h *Handle) OnMouseEnter(event input.MouseEvent) bool {
	if !h.WidgetBase.OnMouseEnter(event) {
		return false
	}
	h.MarkUpdated()
	return true
}

func (h *Handle) OnMouseLeave(event input.MouseEvent) bool {
	if !h.WidgetBase.OnMouseLeave(event) {
		return false
	}
	h.MarkUpdated()
	return true
}

func (h *Handle) OnMouseButtonUp(event input.MouseEvent) bool {
	if !h.WidgetBase.OnMouseButtonUp(event) {
		return false
	}
	if !h.IsHovered() {
		h.WidgetBase.OnMouseLeave(event)
	}
	h.MarkUpdated()
	return true
}

// grab marks the handle pressed and returns the pointer offset from the
// handle center on axis.
func (h *Handle) grab(event input.MouseEvent, axis layout.Axis) float64 {
	h.SetPressed(true)
	h.MarkUpdated()
	return layout.Component(event.Position, axis) - h.Center(axis)
}

// track sends enter or leave to h as the pointer crosses its bounds. A
// pressed handle keeps its focus until released.
func (h *Handle) track(event input.MouseEvent) {
	inside := h.IsInside(event.Position)
	switch {
	case inside && !h.IsFocused():
		h.OnMouseEnter(event)
	case !inside && h.IsFocused() && !h.IsPressed():
		h.OnMouseLeave(event)
	}
}

func (h *Handle) HasGeometry() bool {
	return true
}

func (h *Handle) VertexData(lineMode bool) []graphics.Vertex {
	return graphics.QuadVertices(h.Bounds(), h.currentColor(), h.Rotation(), h.RotationOrigin())
}

func (h *Handle) IndexData(lineMode bool) []uint32 {
	return h.indices(lineMode)
}

func (h *Handle) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(h.VertexData(lineMode), h.IndexData(lineMode), h.stateIndex, lineMode)
}

func (h *Handle) Clone() core.Widget {
	c := NewHandle(h.Name(), h.color, h.hoverColor)
	h.CloneInto(c)
	return c
}
