package canvas

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

// Geometry is the snapshot of one object's vertex and index data handed to
// a Renderer.
type Geometry struct {
	Vertices []graphics.Vertex
	Indices  []uint32
	Draw     graphics.DrawData
}

// Renderer is the graphics backend a canvas synchronises with. The canvas
// uploads the geometry of changed objects, discards the geometry of
// objects that left the tree, and presents the full draw order once per
// flush.
type Renderer interface {
	Upload(id core.ID, g Geometry) error
	Discard(id core.ID)
	Present(screen graphics.Dimension, order []core.ID) error
}

// geometryOf captures the current geometry of o.
func geometryOf(o core.GeometryProvider, lineMode bool) Geometry {
	return Geometry{
		Vertices: o.VertexData(lineMode),
		Indices:  o.IndexData(lineMode),
		Draw:     o.GeometryDrawData(lineMode),
	}
}
