package widgets

import (
	"unicode"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/text"
)

// TextColor is the glyph color of new labels and text boxes.
var TextColor = graphics.ColorWhite

// glyphScale is the share of a glyph cell covered by its quad.
const glyphScale = 0.8

// Label draws a single line of text. Its intrinsic size follows the text as
// measured by its Measurer, so changing the text resizes wrapped owners.
//
// Glyphs are emitted as one quad per non-space rune; a textured renderer
// maps them to an atlas through the state index.
type Label struct {
	core.WidgetBase
	text     string
	measurer text.Measurer
	color    graphics.Color
}

// NewLabel creates a label. A nil measurer uses text.DefaultMeasurer.
func NewLabel(name, s string, measurer text.Measurer) *Label {
	if measurer == nil {
		measurer = text.DefaultMeasurer()
	}
	l := &Label{measurer: measurer, color: TextColor}
	l.Init(l, name)
	l.SetText(s)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText changes the text and resizes the label to fit it.
func (l *Label) SetText(s string) bool {
	if l.text == s && !l.NonAlignedDimension().IsZero() {
		return false
	}
	before := glyphCount(l.text)
	l.text = s
	l.SetDimension(l.measurer.Measure(s))
	l.MarkUpdated()
	if n := glyphCount(s); n != before {
		l.MarkVerticesChanged(4 * n)
	}
	return true
}

// Measurer returns the measurer sizing the text.
func (l *Label) Measurer() text.Measurer {
	return l.measurer
}

// Color returns the glyph color.
func (l *Label) Color() graphics.Color {
	return l.color
}

// SetColor changes the glyph color.
func (l *Label) SetColor(c graphics.Color) {
	if l.color == c {
		return
	}
	l.color = c
	l.MarkUpdated()
}

func (l *Label) HasGeometry() bool {
	return glyphCount(l.text) > 0
}

func (l *Label) VertexData(lineMode bool) []graphics.Vertex {
	b := l.Bounds()
	return quads(l, glyphBoxes(l.measurer, l.text, b.Min), l.color)
}

func (l *Label) IndexData(lineMode bool) []uint32 {
	return graphics.QuadListIndices(glyphCount(l.text), lineMode)
}

func (l *Label) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(l.VertexData(lineMode), l.IndexData(lineMode), 0, lineMode)
}

func (l *Label) Clone() core.Widget {
	c := NewLabel(l.Name(), l.text, l.measurer)
	c.color = l.color
	l.CloneInto(c)
	return c
}

func glyphCount(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// glyphBoxes returns one box per non-space rune of s laid out from origin.
func glyphBoxes(m text.Measurer, s string, origin graphics.Vector) []graphics.Bounds {
	lineHeight := m.LineHeight()
	advances := m.Advances(s)
	boxes := make([]graphics.Bounds, 0, len(advances))
	x := origin.X
	i := 0
	for _, r := range s {
		adv := advances[i]
		i++
		if !unicode.IsSpace(r) {
			w, h := adv*glyphScale, lineHeight*glyphScale
			boxes = append(boxes, graphics.BoundsLTWH(x+(adv-w)/2, origin.Y+(lineHeight-h)/2, w, h))
		}
		x += adv
	}
	return boxes
}
