package text

import "testing"

func TestFontMeasurer_FixedWidthFace(t *testing.T) {
	m := DefaultMeasurer()
	d := m.Measure("hello")
	if d.Width != 35 {
		t.Errorf("width = %v, want 35 (5 glyphs of 7px)", d.Width)
	}
	if d.Height != m.LineHeight() || d.Height <= 0 {
		t.Errorf("height = %v, line height = %v", d.Height, m.LineHeight())
	}
	adv := m.Advances("ab")
	if len(adv) != 2 || adv[0] != 7 || adv[1] != 7 {
		t.Errorf("advances = %v", adv)
	}
}

func TestCellMeasurer_WideRunes(t *testing.T) {
	m := NewCellMeasurer()
	if got := m.Measure("ab").Width; got != 2 {
		t.Errorf("ascii width = %v, want 2", got)
	}
	if got := m.Measure("日本").Width; got != 4 {
		t.Errorf("wide width = %v, want 4", got)
	}
	if got := m.Truncate("abcdef", 4, "..."); got != "a..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestCaretHelpers(t *testing.T) {
	m := NewCellMeasurer()
	if got := CaretOffset(m, "abcd", 2); got != 2 {
		t.Errorf("caret offset = %v, want 2", got)
	}
	tests := []struct {
		x    float64
		want int
	}{
		{x: -3, want: 0},
		{x: 0.4, want: 0},
		{x: 0.6, want: 1},
		{x: 2.2, want: 2},
		{x: 99, want: 4},
	}
	for _, tt := range tests {
		if got := IndexAt(m, "abcd", tt.x); got != tt.want {
			t.Errorf("IndexAt(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
