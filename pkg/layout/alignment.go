package layout

import (
	"fmt"

	"github.com/go-drift/slate/pkg/graphics"
)

// Axis identifies the horizontal or vertical dimension.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// Alignment controls how a widget is placed on one axis of its reference
// rectangle.
type Alignment int

const (
	// AlignNone positions the widget at its explicit offset from the
	// reference origin and keeps its intrinsic size.
	AlignNone Alignment = iota
	// AlignStart places the widget at the leading edge (left or top).
	AlignStart
	// AlignCenter centers the widget.
	AlignCenter
	// AlignEnd places the widget at the trailing edge (right or bottom).
	AlignEnd
	// AlignFill stretches the widget over the reference extent.
	AlignFill
)

// Axis-specific aliases.
const (
	AlignLeft   = AlignStart
	AlignTop    = AlignStart
	AlignRight  = AlignEnd
	AlignBottom = AlignEnd
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignNone:
		return "none"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignFill:
		return "fill"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// AnchorMode selects which edge of the reference a Start or End aligned
// widget anchors to.
type AnchorMode int

const (
	// AnchorInside keeps the widget inside the reference rectangle.
	AnchorInside AnchorMode = iota
	// AnchorOutside places the widget just outside the reference edge, as
	// used for popups and tooltips.
	AnchorOutside
)

// Reference is the rectangle a widget aligns against.
type Reference struct {
	Bounds graphics.Bounds
	// Origin is the anchor point used by AlignNone. ReferenceFrom sets it to
	// Bounds.Min.
	Origin graphics.Vector
	Anchor AnchorMode
}

// ReferenceFrom creates an inside-anchored reference for b.
func ReferenceFrom(b graphics.Bounds) Reference {
	return Reference{Bounds: b, Origin: b.Min}
}

// Span returns the start and extent of b on axis.
func Span(b graphics.Bounds, axis Axis) (start, extent float64) {
	if axis == AxisHorizontal {
		return b.Min.X, b.Width()
	}
	return b.Min.Y, b.Height()
}

// Component returns the axis component of v.
func Component(v graphics.Vector, axis Axis) float64 {
	if axis == AxisHorizontal {
		return v.X
	}
	return v.Y
}

// Extent returns the axis extent of d.
func Extent(d graphics.Dimension, axis Axis) float64 {
	if axis == AxisHorizontal {
		return d.Width
	}
	return d.Height
}

// Insets returns the leading and trailing insets of m on axis.
func Insets(m graphics.Margin, axis Axis) (leading, trailing float64) {
	if axis == AxisHorizontal {
		return m.Left, m.Right
	}
	return m.Top, m.Bottom
}

// WithSpan returns b with its axis span replaced by start and extent.
func WithSpan(b graphics.Bounds, axis Axis, start, extent float64) graphics.Bounds {
	if axis == AxisHorizontal {
		b.Min.X, b.Max.X = start, start+extent
	} else {
		b.Min.Y, b.Max.Y = start, start+extent
	}
	return b
}
