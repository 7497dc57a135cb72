// Package raster provides a software canvas.Renderer that rasterises widget
// geometry into an in-memory RGBA image. It backs the slate render command
// and golden image tests where no GPU is available.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

// lineWidth is the stroke width used for line-mode geometry.
const lineWidth = 1.0

// Renderer caches uploaded geometry by object id and draws it in the order
// given to Present. The zero value is not usable; call New.
type Renderer struct {
	Background graphics.Color

	geometry map[core.ID]canvas.Geometry
	frame    *image.RGBA
	raster   vector.Rasterizer
	frames   int
}

var _ canvas.Renderer = (*Renderer)(nil)

// New creates a renderer clearing every frame to background.
func New(background graphics.Color) *Renderer {
	return &Renderer{
		Background: background,
		geometry:   make(map[core.ID]canvas.Geometry),
	}
}

// Upload stores g for id, replacing earlier geometry.
func (r *Renderer) Upload(id core.ID, g canvas.Geometry) error {
	for _, i := range g.Indices {
		if int(i) >= len(g.Vertices) {
			return fmt.Errorf("index %d out of range for %d vertices", i, len(g.Vertices))
		}
	}
	r.geometry[id] = g
	return nil
}

// Discard drops the geometry of id.
func (r *Renderer) Discard(id core.ID) {
	delete(r.geometry, id)
}

// Uploaded returns how many objects have geometry cached.
func (r *Renderer) Uploaded() int {
	return len(r.geometry)
}

// Frames returns how many frames were presented.
func (r *Renderer) Frames() int {
	return r.frames
}

// Present draws every object in order over a cleared frame of the screen
// size.
func (r *Renderer) Present(screen graphics.Dimension, order []core.ID) error {
	w, h := int(math.Ceil(screen.Width)), int(math.Ceil(screen.Height))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid screen size %vx%v", screen.Width, screen.Height)
	}
	if r.frame == nil || r.frame.Bounds().Dx() != w || r.frame.Bounds().Dy() != h {
		r.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(r.frame, r.frame.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	for _, id := range order {
		g, ok := r.geometry[id]
		if !ok {
			continue
		}
		switch g.Draw.Kind {
		case graphics.PrimitiveLines:
			r.drawLines(g)
		default:
			r.drawTriangles(g)
		}
	}
	r.frames++
	return nil
}

// Image returns the last presented frame, or nil before the first Present.
func (r *Renderer) Image() *image.RGBA {
	return r.frame
}

// At returns the color of the last frame at (x, y).
func (r *Renderer) At(x, y int) color.RGBA {
	if r.frame == nil {
		return color.RGBA{}
	}
	return r.frame.RGBAAt(x, y)
}

// WritePNG encodes the last frame as PNG.
func (r *Renderer) WritePNG(w io.Writer) error {
	if r.frame == nil {
		return fmt.Errorf("no frame presented")
	}
	return png.Encode(w, r.frame)
}

// drawTriangles fills each run of same-colored triangles as one path so the
// edges they share are covered once.
func (r *Renderer) drawTriangles(g canvas.Geometry) {
	var p path
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := g.Vertices[g.Indices[i]], g.Vertices[g.Indices[i+1]], g.Vertices[g.Indices[i+2]]
		p.add(r, a.Color, a.Position, b.Position, c.Position)
	}
	p.draw(r)
}

func (r *Renderer) drawLines(g canvas.Geometry) {
	var p path
	for i := 0; i+1 < len(g.Indices); i += 2 {
		a, b := g.Vertices[g.Indices[i]], g.Vertices[g.Indices[i+1]]
		dx, dy := b.Position.X-a.Position.X, b.Position.Y-a.Position.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*lineWidth/2, dx/length*lineWidth/2
		p.add(r, a.Color,
			graphics.Vector{X: a.Position.X + nx, Y: a.Position.Y + ny},
			graphics.Vector{X: b.Position.X + nx, Y: b.Position.Y + ny},
			graphics.Vector{X: b.Position.X - nx, Y: b.Position.Y - ny},
			graphics.Vector{X: a.Position.X - nx, Y: a.Position.Y - ny},
		)
	}
	p.draw(r)
}

// path collects polygons of one color in the renderer's rasterizer and
// composites them over the frame in a single Draw.
type path struct {
	color graphics.Color
	open  bool
}

// add appends the polygon through points, first drawing the pending
// polygons when c differs from their color.
func (p *path) add(r *Renderer, c graphics.Color, points ...graphics.Vector) {
	if len(points) < 3 {
		return
	}
	if p.open && c != p.color {
		p.draw(r)
	}
	if !p.open {
		b := r.frame.Bounds()
		r.raster.Reset(b.Dx(), b.Dy())
		r.raster.DrawOp = draw.Over
		p.color, p.open = c, true
	}
	r.raster.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, v := range points[1:] {
		r.raster.LineTo(float32(v.X), float32(v.Y))
	}
	r.raster.ClosePath()
}

// draw composites the pending polygons, if any.
func (p *path) draw(r *Renderer) {
	if !p.open {
		return
	}
	p.open = false
	if p.color.Alpha() == 0 {
		return
	}
	b := r.frame.Bounds()
	r.raster.Draw(r.frame, b, image.NewUniform(p.color), image.Point{})
}
