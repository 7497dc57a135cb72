package widgets

import (
	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

func rect(name string, w, h float64) *Image {
	return NewImage(name, graphics.Dimension{Width: w, Height: h}, graphics.ColorWhite)
}

func dim(w, h float64) graphics.Dimension {
	return graphics.Dimension{Width: w, Height: h}
}

// sized gives a detached container an explicit size at the origin.
func sized[W core.Widget](w W, width, height float64) W {
	w.BaseWidget().SetDimension(graphics.Dimension{Width: width, Height: height})
	return w
}

// onCanvas adds w as a root of a canvas of the given size.
func onCanvas(w core.Widget, width, height float64) *canvas.Canvas {
	c := canvas.New(canvas.Options{Width: width, Height: height})
	c.Add(w)
	return c
}

func spanY(s core.Slot) (float64, float64) {
	b := s.Bounds()
	return b.Min.Y, b.Height()
}

func spanX(s core.Slot) (float64, float64) {
	b := s.Bounds()
	return b.Min.X, b.Width()
}
