package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

// Image is a tinted quad. The state index tells the renderer which texture
// or pipeline state to bind; zero draws a solid color.
type Image struct {
	core.WidgetBase
	surface
}

// NewImage creates an image of the given intrinsic size.
func NewImage(name string, dimension graphics.Dimension, color graphics.Color) *Image {
	img := &Image{}
	img.color = color
	img.Init(img, name)
	img.SetDimension(dimension)
	return img
}

// Color returns the tint.
func (img *Image) Color() graphics.Color {
	return img.color
}

// SetColor changes the tint.
func (img *Image) SetColor(c graphics.Color) {
	if img.color == c {
		return
	}
	img.color = c
	img.MarkUpdated()
}

// StateIndex returns the renderer state slot.
func (img *Image) StateIndex() int {
	return img.stateIndex
}

// SetStateIndex selects the renderer state slot.
func (img *Image) SetStateIndex(i int) {
	if img.stateIndex == i {
		return
	}
	img.stateIndex = i
	img.MarkUpdated()
}

func (img *Image) HasGeometry() bool {
	return true
}

func (img *Image) VertexData(lineMode bool) []graphics.Vertex {
	return img.vertices(img)
}

func (img *Image) IndexData(lineMode bool) []uint32 {
	return img.indices(lineMode)
}

func (img *Image) GeometryDrawData(lineMode bool) graphics.DrawData {
	return img.drawData(img, lineMode)
}

func (img *Image) Clone() core.Widget {
	c := NewImage(img.Name(), img.NonAlignedDimension(), img.color)
	c.stateIndex = img.stateIndex
	img.CloneInto(c)
	return c
}
