package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/widgets"
)

func TestPresentDrawsImagesInOrder(t *testing.T) {
	r := New(graphics.ColorBlack)
	c := canvas.New(canvas.Options{Width: 64, Height: 48, Renderer: r})

	red := widgets.NewImage("red", graphics.Dimension{Width: 20, Height: 20}, graphics.RGB(255, 0, 0))
	red.SetOffset(graphics.Vector{X: 10, Y: 10})
	blue := widgets.NewImage("blue", graphics.Dimension{Width: 10, Height: 10}, graphics.RGB(0, 0, 255))
	blue.SetOffset(graphics.Vector{X: 20, Y: 20})
	c.Add(red)
	c.Add(blue)

	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if r.Frames() != 1 || r.Uploaded() != 2 {
		t.Fatalf("expected 1 frame and 2 uploads, got %d and %d", r.Frames(), r.Uploaded())
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{name: "background", x: 2, y: 2, want: color.RGBA{A: 255}},
		{name: "red only", x: 14, y: 14, want: color.RGBA{R: 255, A: 255}},
		{name: "blue over red", x: 25, y: 25, want: color.RGBA{B: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDiscardedGeometryIsNotDrawn(t *testing.T) {
	r := New(graphics.ColorBlack)
	c := canvas.New(canvas.Options{Width: 32, Height: 32, Renderer: r})
	img := widgets.NewImage("img", graphics.Dimension{Width: 32, Height: 32}, graphics.ColorWhite)
	c.Add(img)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := r.At(16, 16); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("expected white, got %v", got)
	}

	c.Remove(img)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if r.Uploaded() != 0 {
		t.Errorf("expected geometry discarded, %d left", r.Uploaded())
	}
	if got := r.At(16, 16); got != (color.RGBA{A: 255}) {
		t.Errorf("expected background after removal, got %v", got)
	}
}

func TestQuadDiagonalHasFullCoverage(t *testing.T) {
	r := New(graphics.ColorBlack)
	c := canvas.New(canvas.Options{Width: 32, Height: 32, Renderer: r})
	img := widgets.NewImage("img", graphics.Dimension{Width: 32, Height: 32}, graphics.ColorWhite)
	c.Add(img)
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := range 32 {
		if got := r.At(i, i); got != white {
			t.Fatalf("diagonal pixel (%d, %d) = %v, want %v", i, i, got, white)
		}
	}
	if got := r.At(5, 20); got != white {
		t.Errorf("off-diagonal pixel = %v, want %v", got, white)
	}
}

func TestUploadRejectsOutOfRangeIndices(t *testing.T) {
	r := New(graphics.ColorBlack)
	g := canvas.Geometry{
		Vertices: make([]graphics.Vertex, 3),
		Indices:  []uint32{0, 1, 3},
	}
	if err := r.Upload(1, g); err == nil {
		t.Error("expected an error for index 3 with 3 vertices")
	}
}

func TestWritePNG(t *testing.T) {
	r := New(graphics.ColorWhite)
	var buf bytes.Buffer
	if err := r.WritePNG(&buf); err == nil {
		t.Fatal("expected an error before the first frame")
	}
	if err := r.Present(graphics.Dimension{Width: 8, Height: 4}, nil); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if err := r.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("expected 8x4, got %dx%d", b.Dx(), b.Dy())
	}
}
