package widgets

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/go-drift/slate/pkg/core"
)

func TestVerticalBox_StacksSlots(t *testing.T) {
	col := sized(VerticalBoxOf("col", rect("a", 10, 20), rect("b", 10, 30), rect("c", 10, 10)), 100, 200)

	wantStarts := []float64{0, 20, 50}
	wantExtents := []float64{20, 30, 10}
	for i, s := range col.Slots() {
		start, extent := spanY(s)
		if start != wantStarts[i] || extent != wantExtents[i] {
			t.Errorf("slot %d: got (%v, %v), want (%v, %v)", i, start, extent, wantStarts[i], wantExtents[i])
		}
		if w := s.Bounds().Width(); w != 100 {
			t.Errorf("slot %d: expected full cross extent 100, got %v", i, w)
		}
	}
	if x := col.SlotAt(0).Content().Location().X; x != 45 {
		t.Errorf("expected centered content at x=45, got %v", x)
	}
}

func TestVerticalBox_WrapAndUnwrap(t *testing.T) {
	col := sized(VerticalBoxOf("col", rect("a", 10, 20), rect("b", 10, 30), rect("c", 10, 10)), 100, 200)

	col.Wrap()
	if d := col.Dimension(); d.Width != 10 || d.Height != 60 {
		t.Fatalf("wrapped: expected 10x60, got %vx%v", d.Width, d.Height)
	}

	col.SlotAt(1).Content().BaseWidget().SetDimension(dim(10, 50))
	if h := col.Dimension().Height; h != 80 {
		t.Errorf("expected wrap to follow content growth to 80, got %v", h)
	}

	col.UnWrap()
	if d := col.Dimension(); d.Width != 100 || d.Height != 200 {
		t.Errorf("unwrapped: expected 100x200, got %vx%v", d.Width, d.Height)
	}
}

func TestVerticalBox_EmptyWrapUsesMinimum(t *testing.T) {
	col := sized(NewVerticalBox("col"), 100, 200)
	col.Wrap()
	if h := col.Dimension().Height; h != core.MinimumWrapExtent {
		t.Errorf("expected %v, got %v", core.MinimumWrapExtent, h)
	}
}

func TestHorizontalBox_WeightedSlots(t *testing.T) {
	row := sized(NewHorizontalBox("row"), 100, 10)
	row.Insert(rect("fixed", 20, 10))
	row.Insert(rect("one", 1, 10)).(*BoxSlot).SetSizing(BoundToSlot)
	three := row.Insert(rect("three", 1, 10)).(*BoxSlot)
	three.SetSizing(BoundToSlot)
	three.SetWeight(3)

	tests := []struct {
		index         int
		start, extent float64
	}{
		{0, 0, 20},
		{1, 20, 20},
		{2, 40, 60},
	}
	for _, tt := range tests {
		start, extent := spanX(row.SlotAt(tt.index))
		if start != tt.start || extent != tt.extent {
			t.Errorf("slot %d: got (%v, %v), want (%v, %v)", tt.index, start, extent, tt.start, tt.extent)
		}
	}
}

func TestHorizontalBox_WeightedSlotsKeepMinimumExtent(t *testing.T) {
	row := sized(NewHorizontalBox("row"), 10, 10)
	row.Insert(rect("fixed", 20, 10))
	row.Insert(rect("weighted", 1, 10)).(*BoxSlot).SetSizing(BoundToSlot)

	if _, extent := spanX(row.SlotAt(1)); extent != minimumSlotExtent {
		t.Errorf("expected weighted slot floored at %v, got %v", minimumSlotExtent, extent)
	}
}

func TestHorizontalBox_HiddenSlotsAreSkipped(t *testing.T) {
	a, b, c := rect("a", 10, 10), rect("b", 15, 10), rect("c", 20, 10)
	row := sized(HorizontalBoxOf("row", a, b, c), 100, 10)

	b.SetVisibility(core.Hidden)
	if start, _ := spanX(row.SlotAt(2)); start != 10 {
		t.Errorf("expected c to follow a directly, got start %v", start)
	}

	row.Wrap()
	if w := row.Dimension().Width; w != 30 {
		t.Errorf("expected wrapped width 30, got %v", w)
	}
}

func TestHorizontalBox_WrappedWeightsWarnOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	row := sized(NewHorizontalBox("row"), 100, 10)
	row.Insert(rect("weighted", 5, 10)).(*BoxSlot).SetSizing(BoundToSlot)
	row.Wrap()
	row.Insert(rect("more", 5, 10))

	if n := strings.Count(buf.String(), "WARNING"); n != 1 {
		t.Errorf("expected one warning, got %d:\n%s", n, buf.String())
	}
}

func TestHorizontalBox_WrappedWeightsTakeContentSize(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	row := sized(NewHorizontalBox("row"), 100, 10)
	row.Insert(rect("narrow", 10, 10)).(*BoxSlot).SetSizing(BoundToSlot)
	row.Insert(rect("wide", 30, 10)).(*BoxSlot).SetSizing(BoundToSlot)

	row.Wrap()
	if w := row.Dimension().Width; w != 40 {
		t.Fatalf("expected wrapped width 40, got %v", w)
	}
	wrapped := []struct{ start, extent float64 }{{0, 10}, {10, 30}}
	for i, want := range wrapped {
		start, extent := spanX(row.SlotAt(i))
		if start != want.start || extent != want.extent {
			t.Errorf("wrapped slot %d: got (%v, %v), want (%v, %v)", i, start, extent, want.start, want.extent)
		}
	}

	row.UnWrap()
	for i := range 2 {
		if _, extent := spanX(row.SlotAt(i)); extent != 50 {
			t.Errorf("unwrapped slot %d: expected the weights to share 100, got %v", i, extent)
		}
	}
}

func TestBoxSlot_SetWeightClampsNegative(t *testing.T) {
	s := newBoxSlot()
	s.SetWeight(-2)
	if s.Weight() != 0 {
		t.Errorf("expected weight 0, got %v", s.Weight())
	}
	if s.SetWeight(0) {
		t.Error("expected no change for the same weight")
	}
}

func TestVerticalBox_CloneCopiesSlotAttributes(t *testing.T) {
	col := NewVerticalBox("col")
	s := col.Insert(rect("a", 10, 10)).(*BoxSlot)
	s.SetSizing(BoundToSlot)
	s.SetWeight(2)

	clone := col.Clone().(*VerticalBox)
	if clone.SlotCount() != 1 {
		t.Fatalf("expected one slot, got %d", clone.SlotCount())
	}
	cs := clone.SlotAt(0).(*BoxSlot)
	if cs.Sizing() != BoundToSlot || cs.Weight() != 2 {
		t.Errorf("expected copied attributes, got %s/%v", cs.Sizing(), cs.Weight())
	}
	if clone.SlotAt(0).Content() == col.SlotAt(0).Content() {
		t.Error("expected cloned content")
	}
}
