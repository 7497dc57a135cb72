package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
)

// Default button colors.
var (
	ButtonColor         = graphics.RGB(0x19, 0x76, 0xd2)
	HighlightColor      = graphics.ColorWhite.WithAlpha(0.15)
	HighlightPressColor = graphics.ColorWhite.WithAlpha(0.3)
)

// buttonPadding is the space around a button caption.
var buttonPadding = graphics.MarginSymmetric(12, 6)

// Button is a clickable quad with an optional caption.
//
// OnClick fires when a press on the button is released with the pointer
// still inside, or when Enter or Space is pressed while it has key focus:
//
//	ok := widgets.NewButton("ok", "OK", widgets.ButtonColor)
//	ok.OnClick = func() { submit() }
//
// The Highlight component covers the button while it is hovered.
type Button struct {
	core.WidgetBase
	surface
	caption   *Label
	highlight *Highlight

	// OnClick is called on a completed click.
	OnClick func()
}

// NewButton creates a button sized to caption. An empty caption creates a
// plain quad; give it a size with SetDimension.
func NewButton(name, caption string, color graphics.Color) *Button {
	b := &Button{}
	b.color = color
	b.Init(b, name)
	if caption != "" {
		b.caption = NewLabel(name+".caption", caption, nil)
		d := b.caption.NonAlignedDimension()
		b.SetDimension(graphics.Dimension{
			Width:  d.Width + buttonPadding.Horizontal(),
			Height: d.Height + buttonPadding.Vertical(),
		})
		b.AddComponent(b.caption)
	}
	b.highlight = newHighlight(name + ".highlight")
	b.AddComponent(b.highlight)
	return b
}

// Caption returns the caption label, or nil.
func (b *Button) Caption() *Label {
	return b.caption
}

// Highlight returns the hover highlight component.
func (b *Button) Highlight() *Highlight {
	return b.highlight
}

// Click runs OnClick as if the button had been clicked.
func (b *Button) Click() bool {
	if !b.CanReceiveFocus() || b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

func (b *Button) syncHighlight() {
	v := core.Hidden
	if b.IsHovered() || b.IsPressed() {
		v = core.Visible
	}
	b.highlight.SetVisibility(v)
	b.highlight.MarkUpdated()
}

func (b *Button) OnMouseEnter(event input.MouseEvent) bool {
	handled := b.WidgetBase.OnMouseEnter(event)
	b.syncHighlight()
	return handled
}

func (b *Button) OnMouseLeave(event input.MouseEvent) bool {
	handled := b.WidgetBase.OnMouseLeave(event)
	b.syncHighlight()
	return handled
}

func (b *Button) OnMouseMove(event input.MouseEvent) bool {
	handled := b.WidgetBase.OnMouseMove(event)
	b.syncHighlight()
	return handled
}

func (b *Button) OnMouseButtonDown(event input.MouseEvent) bool {
	handled := b.WidgetBase.OnMouseButtonDown(event)
	b.syncHighlight()
	return handled
}

// OnMouseButtonUp completes a click when the press is released inside.
func (b *Button) OnMouseButtonUp(event input.MouseEvent) bool {
	wasPressed := b.IsPressed()
	handled := b.WidgetBase.OnMouseButtonUp(event)
	b.syncHighlight()
	if wasPressed && b.IsInside(event.Position) {
		b.Click()
	}
	return handled
}

// OnKeyDown clicks on Enter or Space.
func (b *Button) OnKeyDown(event input.KeyEvent) bool {
	if !b.IsInteractableWithKey() {
		return false
	}
	switch event.Key {
	case input.KeyEnter, input.KeySpace:
		return b.Click()
	}
	return false
}

func (b *Button) ResetInput() {
	b.WidgetBase.ResetInput()
	if b.highlight != nil {
		b.syncHighlight()
	}
}

func (b *Button) HasGeometry() bool {
	return true
}

func (b *Button) VertexData(lineMode bool) []graphics.Vertex {
	return b.vertices(b)
}

func (b *Button) IndexData(lineMode bool) []uint32 {
	return b.indices(lineMode)
}

func (b *Button) GeometryDrawData(lineMode bool) graphics.DrawData {
	return b.drawData(b, lineMode)
}

func (b *Button) Clone() core.Widget {
	caption := ""
	if b.caption != nil {
		caption = b.caption.Text()
	}
	c := NewButton(b.Name(), caption, b.color)
	c.OnClick = b.OnClick
	b.CloneInto(c)
	return c
}

// Highlight is the translucent overlay a Button shows while hovered. It
// fills its host and draws the press color while the host is pressed.
type Highlight struct {
	core.WidgetBase
	surface
	pressColor graphics.Color
}

func newHighlight(name string) *Highlight {
	h := &Highlight{pressColor: HighlightPressColor}
	h.color = HighlightColor
	h.Init(h, name)
	h.SetAlignments(layout.AlignFill, layout.AlignFill)
	h.SetVisibility(core.Hidden)
	return h
}

func (h *Highlight) currentColor() graphics.Color {
	if host := h.Host(); host != nil && host.IsPressed() {
		return h.pressColor
	}
	return h.color
}

func (h *Highlight) HasGeometry() bool {
	return true
}

func (h *Highlight) VertexData(lineMode bool) []graphics.Vertex {
	return graphics.QuadVertices(h.Bounds(), h.currentColor(), h.Rotation(), h.RotationOrigin())
}

func (h *Highlight) IndexData(lineMode bool) []uint32 {
	return h.indices(lineMode)
}

func (h *Highlight) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(h.VertexData(lineMode), h.IndexData(lineMode), 0, lineMode)
}

func (h *Highlight) Clone() core.Widget {
	c := newHighlight(h.Name())
	h.CloneInto(c)
	return c
}
