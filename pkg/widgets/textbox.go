package widgets

import (
	"slices"
	"unicode/utf8"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/text"
)

// Default text box look.
var (
	TextBoxColor = graphics.RGB(0x21, 0x21, 0x21)
	CursorColor  = graphics.ColorWhite
)

// textBoxInset is the horizontal gap between the box edge and the text.
const textBoxInset = 4.0

// TextBox is a fixed-size single-line editor. Clicking it starts editing
// and places the caret at the click; editing ends when the box loses focus.
// While editing the Cursor component marks the caret and the box accepts
// printable runes, Backspace, Delete, Left, Right, Home and End. Enter calls
// OnSubmit.
type TextBox struct {
	core.WidgetBase
	surface
	text     []rune
	caret    int
	editing  bool
	measurer text.Measurer
	cursor   *Cursor

	// OnChanged is called with the new text after every edit.
	OnChanged func(text string)
	// OnSubmit is called with the text when Enter is pressed.
	OnSubmit func(text string)
}

// NewTextBox creates a text box of the given size. A nil measurer uses
// text.DefaultMeasurer.
func NewTextBox(name string, dimension graphics.Dimension, measurer text.Measurer) *TextBox {
	if measurer == nil {
		measurer = text.DefaultMeasurer()
	}
	t := &TextBox{measurer: measurer}
	t.color = TextBoxColor
	t.Init(t, name)
	t.cursor = newCursor(name+".cursor", measurer.LineHeight())
	t.AddComponent(t.cursor)
	t.SetDimension(dimension)
	return t
}

// Text returns the current text.
func (t *TextBox) Text() string {
	return string(t.text)
}

// SetText replaces the text and moves the caret to its end.
func (t *TextBox) SetText(s string) {
	before := glyphCount(string(t.text))
	t.text = []rune(s)
	t.caret = len(t.text)
	t.edited(before)
}

// Caret returns the caret position as a rune index.
func (t *TextBox) Caret() int {
	return t.caret
}

// IsEditing reports whether the box takes key input.
func (t *TextBox) IsEditing() bool {
	return t.editing
}

// Cursor returns the caret component.
func (t *TextBox) Cursor() *Cursor {
	return t.cursor
}

func (t *TextBox) textOrigin() graphics.Vector {
	b := t.Bounds()
	return graphics.Vector{
		X: b.Min.X + textBoxInset,
		Y: b.Min.Y + (b.Height()-t.measurer.LineHeight())/2,
	}
}

// placeCursor moves the cursor to the caret and shows it while editing.
func (t *TextBox) placeCursor() {
	x := textBoxInset + text.CaretOffset(t.measurer, string(t.text), t.caret)
	t.cursor.SetOffset(graphics.Vector{X: x})
	v := core.Hidden
	if t.editing {
		v = core.Visible
	}
	t.cursor.SetVisibility(v)
}

func (t *TextBox) setEditing(editing bool) {
	if t.editing == editing {
		return
	}
	t.editing = editing
	t.placeCursor()
}

func (t *TextBox) edited(glyphsBefore int) {
	t.placeCursor()
	t.MarkUpdated()
	if glyphCount(string(t.text)) != glyphsBefore {
		t.MarkVerticesChanged(len(t.VertexData(false)))
	}
	if t.OnChanged != nil {
		t.OnChanged(string(t.text))
	}
}

// OnAligned keeps the cursor at the caret after a move or resize.
func (t *TextBox) OnAligned() {
	t.placeCursor()
}

// OnFocusChanged ends editing when the box loses focus.
func (t *TextBox) OnFocusChanged(focused bool) {
	if !focused {
		t.setEditing(false)
	}
}

// OnMouseButtonUp starts editing at the clicked position.
func (t *TextBox) OnMouseButtonUp(event input.MouseEvent) bool {
	wasPressed := t.IsPressed()
	if !t.WidgetBase.OnMouseButtonUp(event) {
		return false
	}
	if wasPressed && t.IsInside(event.Position) {
		t.caret = text.IndexAt(t.measurer, string(t.text), event.Position.X-t.textOrigin().X)
		t.editing = true
		t.placeCursor()
	}
	return true
}

// OnKeyDown edits the text.
func (t *TextBox) OnKeyDown(event input.KeyEvent) bool {
	if !t.editing || !t.IsInteractableWithKey() {
		return false
	}
	glyphs := glyphCount(string(t.text))
	switch event.Key {
	case input.KeyRune:
		if !utf8.ValidRune(event.Rune) || event.Rune < ' ' {
			return false
		}
		t.text = slices.Insert(t.text, t.caret, event.Rune)
		t.caret++
	case input.KeySpace:
		t.text = slices.Insert(t.text, t.caret, ' ')
		t.caret++
	case input.KeyBackspace:
		if t.caret == 0 {
			return true
		}
		t.text = slices.Delete(t.text, t.caret-1, t.caret)
		t.caret--
	case input.KeyDelete:
		if t.caret == len(t.text) {
			return true
		}
		t.text = slices.Delete(t.text, t.caret, t.caret+1)
	case input.KeyLeft:
		t.caret = max(t.caret-1, 0)
		t.placeCursor()
		return true
	case input.KeyRight:
		t.caret = min(t.caret+1, len(t.text))
		t.placeCursor()
		return true
	case input.KeyHome:
		t.caret = 0
		t.placeCursor()
		return true
	case input.KeyEnd:
		t.caret = len(t.text)
		t.placeCursor()
		return true
	case input.KeyEnter:
		if t.OnSubmit != nil {
			t.OnSubmit(string(t.text))
		}
		return true
	case input.KeyEscape:
		t.setEditing(false)
		return true
	default:
		return false
	}
	t.edited(glyphs)
	return true
}

func (t *TextBox) HasGeometry() bool {
	return true
}

func (t *TextBox) VertexData(lineMode bool) []graphics.Vertex {
	out := t.vertices(t)
	glyphs := glyphBoxes(t.measurer, string(t.text), t.textOrigin())
	return append(out, quads(t, glyphs, TextColor)...)
}

func (t *TextBox) IndexData(lineMode bool) []uint32 {
	return graphics.QuadListIndices(1+glyphCount(string(t.text)), lineMode)
}

func (t *TextBox) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(t.VertexData(lineMode), t.IndexData(lineMode), t.stateIndex, lineMode)
}

func (t *TextBox) Clone() core.Widget {
	c := NewTextBox(t.Name(), t.NonAlignedDimension(), t.measurer)
	c.text = append([]rune(nil), t.text...)
	c.caret = t.caret
	c.OnChanged, c.OnSubmit = t.OnChanged, t.OnSubmit
	t.CloneInto(c)
	c.placeCursor()
	return c
}

// Cursor is the one pixel wide caret component of a TextBox. It is placed
// at an explicit horizontal offset and centered vertically.
type Cursor struct {
	core.WidgetBase
	surface
}

func newCursor(name string, lineHeight float64) *Cursor {
	c := &Cursor{}
	c.color = CursorColor
	c.Init(c, name)
	c.SetDimension(graphics.Dimension{Width: 1, Height: lineHeight})
	c.SetAlignments(layout.AlignNone, layout.AlignCenter)
	c.SetVisibility(core.Hidden)
	return c
}

func (c *Cursor) HasGeometry() bool {
	return true
}

func (c *Cursor) VertexData(lineMode bool) []graphics.Vertex {
	return c.vertices(c)
}

func (c *Cursor) IndexData(lineMode bool) []uint32 {
	return c.indices(lineMode)
}

func (c *Cursor) GeometryDrawData(lineMode bool) graphics.DrawData {
	return c.drawData(c, lineMode)
}

func (c *Cursor) Clone() core.Widget {
	cl := newCursor(c.Name(), c.NonAlignedDimension().Height)
	c.CloneInto(cl)
	return cl
}
