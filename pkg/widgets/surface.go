package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

// surface is the geometry of a widget drawn as one tinted quad over its
// bounds. Leaves embed it next to their base and forward the geometry
// methods with the owning widget.
type surface struct {
	color      graphics.Color
	stateIndex int
}

func (s *surface) vertices(w core.Widget) []graphics.Vertex {
	return graphics.QuadVertices(w.Bounds(), s.color, w.Rotation(), w.RotationOrigin())
}

func (s *surface) indices(lineMode bool) []uint32 {
	return graphics.QuadIndices(0, lineMode)
}

func (s *surface) drawData(w core.Widget, lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(s.vertices(w), s.indices(lineMode), s.stateIndex, lineMode)
}

// quads builds the geometry of several quads sharing one color.
func quads(w core.Widget, rects []graphics.Bounds, color graphics.Color) []graphics.Vertex {
	out := make([]graphics.Vertex, 0, 4*len(rects))
	rotation, origin := w.Rotation(), w.RotationOrigin()
	for _, r := range rects {
		out = append(out, graphics.QuadVertices(r, color, rotation, origin)...)
	}
	return out
}
