// Package text measures strings for text widgets. Glyph shaping and
// rasterization belong to the renderer; widgets only need extents and
// per-rune advances to size themselves and place carets.
package text

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/slate/pkg/graphics"
)

// Measurer reports the extents of single-line strings.
type Measurer interface {
	// Measure returns the width and line height of s.
	Measure(s string) graphics.Dimension
	// Advances returns the horizontal advance of each rune of s.
	Advances(s string) []float64
	// LineHeight returns the height of one line.
	LineHeight() float64
}

// FontMeasurer measures with a font face.
type FontMeasurer struct {
	face font.Face
}

// NewFontMeasurer creates a measurer for face.
func NewFontMeasurer(face font.Face) *FontMeasurer {
	return &FontMeasurer{face: face}
}

// DefaultMeasurer measures with the fixed 7x13 face bundled with
// golang.org/x/image.
func DefaultMeasurer() *FontMeasurer {
	return NewFontMeasurer(basicfont.Face7x13)
}

// Face returns the underlying font face.
func (m *FontMeasurer) Face() font.Face {
	return m.face
}

func (m *FontMeasurer) Measure(s string) graphics.Dimension {
	return graphics.Dimension{
		Width:  fromFixed(font.MeasureString(m.face, s)),
		Height: m.LineHeight(),
	}
}

func (m *FontMeasurer) Advances(s string) []float64 {
	out := make([]float64, 0, len(s))
	prev := rune(-1)
	for _, r := range s {
		adv, ok := m.face.GlyphAdvance(r)
		if !ok {
			adv, _ = m.face.GlyphAdvance('?')
		}
		if prev >= 0 {
			adv += m.face.Kern(prev, r)
		}
		out = append(out, fromFixed(adv))
		prev = r
	}
	return out
}

func (m *FontMeasurer) LineHeight() float64 {
	return fromFixed(m.face.Metrics().Height)
}

// CellMeasurer measures in terminal cells: every rune advances by its
// display width in cells, each CellWidth pixels wide.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// NewCellMeasurer creates a measurer with one unit per cell.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{CellWidth: 1, CellHeight: 1}
}

func (m *CellMeasurer) Measure(s string) graphics.Dimension {
	return graphics.Dimension{
		Width:  float64(runewidth.StringWidth(s)) * m.CellWidth,
		Height: m.CellHeight,
	}
}

func (m *CellMeasurer) Advances(s string) []float64 {
	out := make([]float64, 0, len(s))
	for _, r := range s {
		out = append(out, float64(runewidth.RuneWidth(r))*m.CellWidth)
	}
	return out
}

func (m *CellMeasurer) LineHeight() float64 {
	return m.CellHeight
}

// Truncate shortens s to fit width cells, appending tail when cut.
func (m *CellMeasurer) Truncate(s string, width float64, tail string) string {
	cells := int(width / m.CellWidth)
	return runewidth.Truncate(s, cells, tail)
}

// CaretOffset returns the x offset of the caret placed before rune index.
func CaretOffset(m Measurer, s string, index int) float64 {
	x := 0.0
	for i, adv := range m.Advances(s) {
		if i >= index {
			break
		}
		x += adv
	}
	return x
}

// IndexAt returns the rune index whose caret position is closest to x.
func IndexAt(m Measurer, s string, x float64) int {
	pos := 0.0
	advances := m.Advances(s)
	for i, adv := range advances {
		if x < pos+adv/2 {
			return i
		}
		pos += adv
	}
	return len(advances)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
