package graphics

// PrimitiveKind selects how the renderer assembles indices.
type PrimitiveKind int

const (
	// PrimitiveTriangles draws an indexed triangle list.
	PrimitiveTriangles PrimitiveKind = iota
	// PrimitiveLines draws an indexed line list (wireframe / line mode).
	PrimitiveLines
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveTriangles:
		return "triangles"
	case PrimitiveLines:
		return "lines"
	default:
		return "unknown"
	}
}

// Vertex is a positioned, colored, textured point handed to the renderer.
type Vertex struct {
	Position Vector
	Color    Color
	UV       Vector
}

// DrawData describes how to draw an object's vertex and index data.
type DrawData struct {
	Kind PrimitiveKind
	// StateIndex selects renderer state (pipeline/texture slot). Zero means
	// untextured solid color.
	StateIndex  int
	VertexCount int
	IndexCount  int
}

// quadUV holds texture coordinates for the corners returned by Bounds.Corners.
var quadUV = [4]Vector{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// QuadVertices returns the four corners of b rotated around origin.
func QuadVertices(b Bounds, color Color, degrees float64, origin Vector) []Vertex {
	corners := b.Corners()
	out := make([]Vertex, 4)
	for i, c := range corners {
		out[i] = Vertex{Position: c.Rotate(origin, degrees), Color: color, UV: quadUV[i]}
	}
	return out
}

// QuadIndices returns indices for one quad whose first vertex is base.
// In line mode the quad outline is returned instead of two triangles.
func QuadIndices(base uint32, lineMode bool) []uint32 {
	if lineMode {
		return []uint32{base, base + 1, base + 1, base + 2, base + 2, base + 3, base + 3, base}
	}
	return []uint32{base, base + 1, base + 2, base, base + 2, base + 3}
}

// FrameVertices returns the four edge quads of a frame of the given thickness
// drawn inside b.
func FrameVertices(b Bounds, thickness Margin, color Color, degrees float64, origin Vector) []Vertex {
	edges := [4]Bounds{
		{Min: b.Min, Max: Vector{X: b.Max.X, Y: b.Min.Y + thickness.Top}},
		{Min: Vector{X: b.Max.X - thickness.Right, Y: b.Min.Y}, Max: b.Max},
		{Min: Vector{X: b.Min.X, Y: b.Max.Y - thickness.Bottom}, Max: b.Max},
		{Min: b.Min, Max: Vector{X: b.Min.X + thickness.Left, Y: b.Max.Y}},
	}
	out := make([]Vertex, 0, 16)
	for _, e := range edges {
		out = append(out, QuadVertices(e, color, degrees, origin)...)
	}
	return out
}

// QuadListIndices returns indices for count consecutive quads.
func QuadListIndices(count int, lineMode bool) []uint32 {
	per := 6
	if lineMode {
		per = 8
	}
	out := make([]uint32, 0, count*per)
	for i := 0; i < count; i++ {
		out = append(out, QuadIndices(uint32(i*4), lineMode)...)
	}
	return out
}

// DrawDataFor builds a descriptor for the given vertex and index lists.
func DrawDataFor(vertices []Vertex, indices []uint32, stateIndex int, lineMode bool) DrawData {
	kind := PrimitiveTriangles
	if lineMode {
		kind = PrimitiveLines
	}
	return DrawData{
		Kind:        kind,
		StateIndex:  stateIndex,
		VertexCount: len(vertices),
		IndexCount:  len(indices),
	}
}
