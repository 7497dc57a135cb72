package layout

import (
	"math"

	"github.com/go-drift/slate/pkg/graphics"
)

// Transform owns a widget's geometry: the explicit offset and intrinsic
// (non-aligned) size set by the user, the resolved location and size, the
// padding around it, its rotation and the per-axis alignment state.
//
// Each axis has exactly one size driver at a time: the explicit intrinsic
// size, the reference extent (AlignFill), or a compressed value set by a
// wrapping container.
type Transform struct {
	location  graphics.Vector
	size      graphics.Dimension
	offset    graphics.Vector
	intrinsic graphics.Dimension
	padding   graphics.Margin
	rotation  float64

	alignment    [2]Alignment
	alignmentSet [2]bool
	aligned      [2]bool
	compressed   [2]bool
	// uncompressed holds the explicit extent in effect before compression.
	uncompressed [2]float64
}

// NewTransform creates a transform with the given intrinsic size.
func NewTransform(dimension graphics.Dimension) Transform {
	return Transform{intrinsic: dimension, size: dimension}
}

// Location returns the resolved top-left corner.
func (t *Transform) Location() graphics.Vector {
	return t.location
}

// Dimension returns the resolved size.
func (t *Transform) Dimension() graphics.Dimension {
	return t.size
}

// Bounds returns the resolved rectangle.
func (t *Transform) Bounds() graphics.Bounds {
	return graphics.BoundsFrom(t.location, t.size)
}

// Offset returns the explicit position used by AlignNone.
func (t *Transform) Offset() graphics.Vector {
	return t.offset
}

// NonAlignedDimension returns the intrinsic size: the explicit size, or the
// compressed value on axes a wrapping container drives.
func (t *Transform) NonAlignedDimension() graphics.Dimension {
	return t.intrinsic
}

// NonAligned returns the intrinsic extent on axis.
func (t *Transform) NonAligned(axis Axis) float64 {
	return Extent(t.intrinsic, axis)
}

// PaddedExtent returns the intrinsic extent on axis plus padding on both
// sides. Containers use this to size slots bound to their content.
func (t *Transform) PaddedExtent(axis Axis) float64 {
	lead, trail := Insets(t.padding, axis)
	return t.NonAligned(axis) + lead + trail
}

// Padding returns the outer padding.
func (t *Transform) Padding() graphics.Margin {
	return t.padding
}

// Rotation returns the rotation in degrees.
func (t *Transform) Rotation() float64 {
	return t.rotation
}

// Alignment returns the configured alignment on axis.
func (t *Transform) Alignment(axis Axis) Alignment {
	return t.alignment[axis]
}

// IsAlignmentSet reports whether SetAlignment was called for axis.
func (t *Transform) IsAlignmentSet(axis Axis) bool {
	return t.alignmentSet[axis]
}

// IsAligned reports whether the size on axis is currently alignment-driven.
func (t *Transform) IsAligned(axis Axis) bool {
	return t.aligned[axis]
}

// IsCompressed reports whether the size on axis is driven by wrapping.
func (t *Transform) IsCompressed(axis Axis) bool {
	return t.compressed[axis]
}

// SetOffset sets the explicit position. Returns false if unchanged.
func (t *Transform) SetOffset(offset graphics.Vector) bool {
	if t.offset == offset {
		return false
	}
	t.offset = offset
	return true
}

// SetDimension sets the explicit size. On a compressed axis the value is
// remembered for UnCompress and the intrinsic extent stays as wrapped.
// Returns false if the intrinsic size did not change.
func (t *Transform) SetDimension(d graphics.Dimension) bool {
	changed := false
	for _, axis := range [2]Axis{AxisHorizontal, AxisVertical} {
		v := Extent(d, axis)
		if t.compressed[axis] {
			t.uncompressed[axis] = v
			continue
		}
		if t.NonAligned(axis) != v {
			t.setIntrinsic(axis, v)
			changed = true
		}
	}
	return changed
}

// SetPadding sets the outer padding. Returns false if unchanged.
func (t *Transform) SetPadding(m graphics.Margin) bool {
	if t.padding == m {
		return false
	}
	t.padding = m
	return true
}

// SetRotation sets the rotation in degrees. Returns false if unchanged.
func (t *Transform) SetRotation(degrees float64) bool {
	if t.rotation == degrees {
		return false
	}
	t.rotation = degrees
	return true
}

// SetAlignment sets the alignment on axis. Returns false if unchanged.
func (t *Transform) SetAlignment(axis Axis, a Alignment) bool {
	wasSet := t.alignmentSet[axis]
	t.alignmentSet[axis] = true
	if wasSet && t.alignment[axis] == a {
		return false
	}
	t.alignment[axis] = a
	return true
}

// DefaultAlignment sets a on every axis without an explicit alignment.
func (t *Transform) DefaultAlignment(a Alignment) {
	for axis := range t.alignment {
		if !t.alignmentSet[axis] {
			t.alignment[axis] = a
			t.alignmentSet[axis] = true
		}
	}
}

// EffectiveAlignment returns the alignment used against a reference with
// the given extent. A widget whose intrinsic extent exceeds the space
// available is forced to fill. A compressed axis never fills: the wrapped
// extent wins and the widget is placed at the start.
func (t *Transform) EffectiveAlignment(axis Axis, referenceExtent float64) Alignment {
	a := t.alignment[axis]
	if a == AlignNone {
		return a
	}
	lead, trail := Insets(t.padding, axis)
	available := referenceExtent - lead - trail
	if t.NonAligned(axis) > available {
		return AlignFill
	}
	if a == AlignFill && t.compressed[axis] {
		return AlignStart
	}
	return a
}

// Align resolves axis against ref using the configured alignment.
// Returns whether location or size changed.
func (t *Transform) Align(axis Axis, ref Reference) bool {
	return t.AlignWith(axis, t.alignment[axis], ref)
}

// AlignBoth resolves both axes against ref.
func (t *Transform) AlignBoth(ref Reference) bool {
	h := t.Align(AxisHorizontal, ref)
	v := t.Align(AxisVertical, ref)
	return h || v
}

// AlignWith resolves axis against ref using alignment instead of the
// configured value (the override rule still applies).
func (t *Transform) AlignWith(axis Axis, alignment Alignment, ref Reference) bool {
	saved := t.alignment[axis]
	t.alignment[axis] = alignment
	refStart, refExtent := Span(ref.Bounds, axis)
	effective := t.EffectiveAlignment(axis, refExtent)
	t.alignment[axis] = saved

	lead, trail := Insets(t.padding, axis)
	available := math.Max(refExtent-lead-trail, 0)
	extent := t.NonAligned(axis)
	var start float64

	switch effective {
	case AlignFill:
		start = refStart + lead
		extent = available
	case AlignStart:
		if ref.Anchor == AnchorOutside {
			start = refStart - trail - extent
		} else {
			start = refStart + lead
		}
	case AlignEnd:
		if ref.Anchor == AnchorOutside {
			start = refStart + refExtent + lead
		} else {
			start = refStart + refExtent - trail - extent
		}
	case AlignCenter:
		start = refStart + lead + (available-extent)/2
	default:
		start = Component(ref.Origin, axis) + Component(t.offset, axis)
	}
	t.aligned[axis] = effective == AlignFill
	return t.set(axis, start, extent)
}

// ResolveUnaligned places the transform at its offset with its intrinsic
// size, as for a widget with nothing to align against.
func (t *Transform) ResolveUnaligned() bool {
	t.aligned = [2]bool{}
	h := t.set(AxisHorizontal, t.offset.X, t.intrinsic.Width)
	v := t.set(AxisVertical, t.offset.Y, t.intrinsic.Height)
	return h || v
}

// CompressWidth clamps the width to value and marks the axis compressed.
func (t *Transform) CompressWidth(value float64) bool {
	return t.Compress(AxisHorizontal, value)
}

// CompressHeight clamps the height to value and marks the axis compressed.
func (t *Transform) CompressHeight(value float64) bool {
	return t.Compress(AxisVertical, value)
}

// Compress sets the intrinsic and resolved extent on axis to value and marks
// the axis compressed. Returns whether the extent changed.
func (t *Transform) Compress(axis Axis, value float64) bool {
	if !t.compressed[axis] {
		t.uncompressed[axis] = t.NonAligned(axis)
		t.compressed[axis] = true
	}
	changed := t.NonAligned(axis) != value
	t.setIntrinsic(axis, value)
	start := Component(t.location, axis)
	if t.set(axis, start, value) {
		changed = true
	}
	return changed
}

// UnCompress restores the explicit extent on axis. Returns whether the
// intrinsic extent changed.
func (t *Transform) UnCompress(axis Axis) bool {
	if !t.compressed[axis] {
		return false
	}
	t.compressed[axis] = false
	if t.NonAligned(axis) == t.uncompressed[axis] {
		return false
	}
	t.setIntrinsic(axis, t.uncompressed[axis])
	return true
}

func (t *Transform) setIntrinsic(axis Axis, v float64) {
	if axis == AxisHorizontal {
		t.intrinsic.Width = v
	} else {
		t.intrinsic.Height = v
	}
}

// set stores the resolved span on axis and reports whether it changed.
func (t *Transform) set(axis Axis, start, extent float64) bool {
	if axis == AxisHorizontal {
		if t.location.X == start && t.size.Width == extent {
			return false
		}
		t.location.X, t.size.Width = start, extent
		return true
	}
	if t.location.Y == start && t.size.Height == extent {
		return false
	}
	t.location.Y, t.size.Height = start, extent
	return true
}
