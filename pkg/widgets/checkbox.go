package widgets

import (
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
)

// Default check box look.
var (
	CheckBoxSize  = 16.0
	CheckBoxColor = graphics.RGB(0x61, 0x61, 0x61)
	CheckColor    = graphics.RGB(0x4c, 0xaf, 0x50)
)

// checkInset is the gap between the box and the check mark.
const checkInset = 3.0

// CheckBox toggles between checked and unchecked on click or Space.
type CheckBox struct {
	core.WidgetBase
	surface
	checked    bool
	checkColor graphics.Color

	// OnChanged is called with the new state after every toggle.
	OnChanged func(checked bool)
}

// NewCheckBox creates a check box of CheckBoxSize.
func NewCheckBox(name string, checked bool) *CheckBox {
	c := &CheckBox{checked: checked, checkColor: CheckColor}
	c.color = CheckBoxColor
	c.Init(c, name)
	c.SetDimension(graphics.Dimension{Width: CheckBoxSize, Height: CheckBoxSize})
	return c
}

// IsChecked reports the current state.
func (c *CheckBox) IsChecked() bool {
	return c.checked
}

// SetChecked changes the state without calling OnChanged.
func (c *CheckBox) SetChecked(checked bool) bool {
	if c.checked == checked {
		return false
	}
	c.checked = checked
	c.MarkUpdated()
	c.MarkVerticesChanged(len(c.VertexData(false)))
	return true
}

// Toggle flips the state and calls OnChanged.
func (c *CheckBox) Toggle() {
	c.SetChecked(!c.checked)
	if c.OnChanged != nil {
		c.OnChanged(c.checked)
	}
}

// OnMouseButtonUp toggles when a press is released inside.
func (c *CheckBox) OnMouseButtonUp(event input.MouseEvent) bool {
	wasPressed := c.IsPressed()
	if !c.WidgetBase.OnMouseButtonUp(event) {
		return false
	}
	if wasPressed && c.IsInside(event.Position) {
		c.Toggle()
	}
	return true
}

// OnKeyDown toggles on Space.
func (c *CheckBox) OnKeyDown(event input.KeyEvent) bool {
	if !c.IsInteractableWithKey() || event.Key != input.KeySpace {
		return false
	}
	c.Toggle()
	return true
}

func (c *CheckBox) HasGeometry() bool {
	return true
}

func (c *CheckBox) VertexData(lineMode bool) []graphics.Vertex {
	out := c.vertices(c)
	if c.checked {
		mark := c.Bounds().Inset(graphics.MarginAll(checkInset))
		out = append(out, quads(c, []graphics.Bounds{mark}, c.checkColor)...)
	}
	return out
}

func (c *CheckBox) IndexData(lineMode bool) []uint32 {
	n := 1
	if c.checked {
		n = 2
	}
	return graphics.QuadListIndices(n, lineMode)
}

func (c *CheckBox) GeometryDrawData(lineMode bool) graphics.DrawData {
	return graphics.DrawDataFor(c.VertexData(lineMode), c.IndexData(lineMode), c.stateIndex, lineMode)
}

func (c *CheckBox) Clone() core.Widget {
	cl := NewCheckBox(c.Name(), c.checked)
	cl.color, cl.checkColor = c.color, c.checkColor
	cl.OnChanged = c.OnChanged
	c.CloneInto(cl)
	return cl
}
