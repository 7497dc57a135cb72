package layout

import (
	"testing"

	"github.com/go-drift/slate/pkg/graphics"
)

func TestTransform_AlignIsIdempotent(t *testing.T) {
	tr := NewTransform(graphics.Dimension{Width: 40, Height: 20})
	tr.SetAlignment(AxisHorizontal, AlignCenter)
	tr.SetAlignment(AxisVertical, AlignEnd)
	ref := ReferenceFrom(graphics.BoundsLTWH(0, 0, 100, 100))

	if !tr.AlignBoth(ref) {
		t.Fatal("first align should report a change")
	}
	before := tr.Bounds()
	if tr.AlignBoth(ref) {
		t.Error("second align with unchanged inputs should report no change")
	}
	if tr.Bounds() != before {
		t.Errorf("bounds moved on idempotent align: %+v -> %+v", before, tr.Bounds())
	}
	want := graphics.BoundsLTWH(30, 80, 40, 20)
	if before != want {
		t.Errorf("bounds = %+v, want %+v", before, want)
	}
}

func TestTransform_AlignModes(t *testing.T) {
	ref := graphics.BoundsLTWH(10, 0, 100, 50)
	tests := []struct {
		name      string
		alignment Alignment
		anchor    AnchorMode
		padding   graphics.Margin
		wantStart float64
		wantSize  float64
	}{
		{name: "start", alignment: AlignStart, wantStart: 10, wantSize: 20},
		{name: "start padded", alignment: AlignStart, padding: graphics.Margin{Left: 5}, wantStart: 15, wantSize: 20},
		{name: "center", alignment: AlignCenter, wantStart: 50, wantSize: 20},
		{name: "end", alignment: AlignEnd, wantStart: 90, wantSize: 20},
		{name: "end padded", alignment: AlignEnd, padding: graphics.Margin{Right: 4}, wantStart: 86, wantSize: 20},
		{name: "fill", alignment: AlignFill, wantStart: 10, wantSize: 100},
		{name: "fill padded", alignment: AlignFill, padding: graphics.MarginAll(5), wantStart: 15, wantSize: 90},
		{name: "start outside", alignment: AlignStart, anchor: AnchorOutside, wantStart: -10, wantSize: 20},
		{name: "end outside", alignment: AlignEnd, anchor: AnchorOutside, wantStart: 110, wantSize: 20},
		{name: "none", alignment: AlignNone, wantStart: 13, wantSize: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform(graphics.Dimension{Width: 20, Height: 10})
			tr.SetOffset(graphics.Vector{X: 3})
			tr.SetPadding(tt.padding)
			r := ReferenceFrom(ref)
			r.Anchor = tt.anchor
			tr.AlignWith(AxisHorizontal, tt.alignment, r)
			if got := tr.Location().X; got != tt.wantStart {
				t.Errorf("start = %v, want %v", got, tt.wantStart)
			}
			if got := tr.Dimension().Width; got != tt.wantSize {
				t.Errorf("size = %v, want %v", got, tt.wantSize)
			}
		})
	}
}

func TestTransform_OversizedForcesFill(t *testing.T) {
	tr := NewTransform(graphics.Dimension{Width: 300, Height: 10})
	tr.SetAlignment(AxisHorizontal, AlignCenter)
	if got := tr.EffectiveAlignment(AxisHorizontal, 100); got != AlignFill {
		t.Fatalf("effective alignment = %v, want fill", got)
	}
	tr.Align(AxisHorizontal, ReferenceFrom(graphics.BoundsLTWH(0, 0, 100, 100)))
	if tr.Dimension().Width != 100 {
		t.Errorf("width = %v, want 100", tr.Dimension().Width)
	}
	if !tr.IsAligned(AxisHorizontal) {
		t.Error("forced fill should mark the axis alignment-driven")
	}
	if tr.NonAligned(AxisHorizontal) != 300 {
		t.Error("forced fill must not touch the intrinsic width")
	}
}

func TestTransform_CompressRoundTrip(t *testing.T) {
	tr := NewTransform(graphics.Dimension{Width: 80, Height: 200})
	tr.SetAlignment(AxisVertical, AlignStart)
	ref := ReferenceFrom(graphics.BoundsLTWH(0, 0, 100, 300))
	tr.AlignBoth(ref)
	before := tr.Dimension()

	if !tr.CompressHeight(60) {
		t.Fatal("compress should report a change")
	}
	if tr.CompressHeight(60) {
		t.Error("compressing to the same value should report no change")
	}
	if !tr.IsCompressed(AxisVertical) || tr.Dimension().Height != 60 {
		t.Fatalf("expected compressed height 60, got %v", tr.Dimension().Height)
	}

	// Explicit size changes while compressed are deferred.
	if tr.SetDimension(graphics.Dimension{Width: 80, Height: 200}) {
		t.Error("SetDimension on a compressed axis should not change the intrinsic size")
	}

	if !tr.UnCompress(AxisVertical) {
		t.Fatal("uncompress should restore the explicit height")
	}
	tr.AlignBoth(ref)
	if tr.Dimension() != before {
		t.Errorf("dimension after round trip = %+v, want %+v", tr.Dimension(), before)
	}
}

func TestTransform_CompressedFillPlacesAtStart(t *testing.T) {
	tr := NewTransform(graphics.Dimension{Width: 10, Height: 10})
	tr.SetAlignment(AxisHorizontal, AlignFill)
	tr.CompressWidth(30)
	tr.Align(AxisHorizontal, ReferenceFrom(graphics.BoundsLTWH(5, 0, 100, 10)))
	if tr.Location().X != 5 || tr.Dimension().Width != 30 {
		t.Errorf("got start %v width %v, want 5 and 30", tr.Location().X, tr.Dimension().Width)
	}
}

func TestTransform_DefaultAlignmentOnlyFillsUnset(t *testing.T) {
	tr := NewTransform(graphics.Dimension{})
	tr.SetAlignment(AxisHorizontal, AlignFill)
	tr.DefaultAlignment(AlignCenter)
	if tr.Alignment(AxisHorizontal) != AlignFill {
		t.Error("explicit alignment should be kept")
	}
	if tr.Alignment(AxisVertical) != AlignCenter {
		t.Error("unset axis should default to center")
	}
	if tr.SetAlignment(AxisVertical, AlignCenter) {
		t.Error("setting the same alignment should report no change")
	}
}
