package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Vector represents a 2D point or offset in screen pixels.
type Vector struct {
	X float64
	Y float64
}

// Add returns v translated by other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v minus other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Rotate rotates v around origin by degrees (clockwise in screen space).
func (v Vector) Rotate(origin Vector, degrees float64) Vector {
	if degrees == 0 {
		return v
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := v.X-origin.X, v.Y-origin.Y
	return Vector{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}

// Dimension is a width/height pair in pixels.
type Dimension struct {
	Width  float64
	Height float64
}

// IsZero reports whether both extents are zero.
func (d Dimension) IsZero() bool {
	return d.Width == 0 && d.Height == 0
}

// Margin is a four-sided inset.
type Margin struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// MarginAll creates a margin with the same value on every side.
func MarginAll(v float64) Margin {
	return Margin{Left: v, Top: v, Right: v, Bottom: v}
}

// MarginSymmetric creates a margin with horizontal and vertical values.
func MarginSymmetric(horizontal, vertical float64) Margin {
	return Margin{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the sum of the left and right insets.
func (m Margin) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the sum of the top and bottom insets.
func (m Margin) Vertical() float64 {
	return m.Top + m.Bottom
}

// Bounds is an axis-aligned rectangle given by its min and max corners.
type Bounds struct {
	Min Vector
	Max Vector
}

// BoundsFrom builds bounds from a location and a dimension.
func BoundsFrom(location Vector, dimension Dimension) Bounds {
	return Bounds{
		Min: location,
		Max: Vector{X: location.X + dimension.Width, Y: location.Y + dimension.Height},
	}
}

// BoundsLTWH builds bounds from left, top, width and height.
func BoundsLTWH(left, top, width, height float64) Bounds {
	return BoundsFrom(Vector{X: left, Y: top}, Dimension{Width: width, Height: height})
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Dimension returns the bounds size.
func (b Bounds) Dimension() Dimension {
	return Dimension{Width: b.Width(), Height: b.Height()}
}

// Center returns the center point.
func (b Bounds) Center() Vector {
	return Vector{X: (b.Min.X + b.Max.X) * 0.5, Y: (b.Min.Y + b.Max.Y) * 0.5}
}

// IsEmpty reports whether the bounds have zero or negative area.
func (b Bounds) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether b and other overlap with positive area.
func (b Bounds) Intersects(other Bounds) bool {
	return b.Min.X < other.Max.X && other.Min.X < b.Max.X &&
		b.Min.Y < other.Max.Y && other.Min.Y < b.Max.Y
}

// Intersection returns the overlapping region of b and other.
// Returns empty bounds if they don't overlap.
func (b Bounds) Intersection(other Bounds) Bounds {
	minX := math.Max(b.Min.X, other.Min.X)
	minY := math.Max(b.Min.Y, other.Min.Y)
	maxX := math.Min(b.Max.X, other.Max.X)
	maxY := math.Min(b.Max.Y, other.Max.Y)
	if minX >= maxX || minY >= maxY {
		return Bounds{}
	}
	return Bounds{Min: Vector{X: minX, Y: minY}, Max: Vector{X: maxX, Y: maxY}}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Min: Vector{X: math.Min(b.Min.X, other.Min.X), Y: math.Min(b.Min.Y, other.Min.Y)},
		Max: Vector{X: math.Max(b.Max.X, other.Max.X), Y: math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Translate returns b offset by delta.
func (b Bounds) Translate(delta Vector) Bounds {
	return Bounds{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// Inset shrinks b by m. Extents never go negative.
func (b Bounds) Inset(m Margin) Bounds {
	out := Bounds{
		Min: Vector{X: b.Min.X + m.Left, Y: b.Min.Y + m.Top},
		Max: Vector{X: b.Max.X - m.Right, Y: b.Max.Y - m.Bottom},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Corners returns the four corners in clockwise order starting top-left.
func (b Bounds) Corners() [4]Vector {
	return [4]Vector{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
}

// NearlyEqual reports whether two floats are within epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
