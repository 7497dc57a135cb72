package cmd

import (
	"fmt"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/layout"
	"github.com/go-drift/slate/pkg/text"
	"github.com/go-drift/slate/pkg/widgets"
)

// demoItems is the number of rows in the demo scroll list.
const demoItems = 30

var (
	backgroundColor = graphics.RGB(0x12, 0x12, 0x12)
	headerColor     = graphics.RGB(0x1e, 0x88, 0xe5)
	panelColor      = graphics.RGB(0x21, 0x21, 0x21)
	cancelColor     = graphics.RGB(0x61, 0x61, 0x61)
)

// demo is the widget tree every command works on: a settings form with a
// header, a check box, a slider, a text box, a scrolling list and a row of
// buttons over a background panel.
type demo struct {
	canvas *canvas.Canvas
	root   *widgets.Overlay

	title  *widgets.Label
	sound  *widgets.CheckBox
	volume *widgets.Slider
	name   *widgets.TextBox
	list   *widgets.ScrollBox
	ok     *widgets.Button
	cancel *widgets.Button

	// status describes the last user action.
	status string
}

// newDemo builds the demo tree on a canvas created with opts. A nil measurer
// uses text.DefaultMeasurer.
func newDemo(opts canvas.Options, measurer text.Measurer) *demo {
	d := &demo{canvas: canvas.New(opts), status: "ready"}

	d.title = widgets.NewLabel("title", "Slate settings", measurer)
	header := widgets.BorderOf("header", graphics.MarginAll(4), headerColor, d.title)
	header.Wrap()

	d.sound = widgets.NewCheckBox("sound", true)
	soundRow := widgets.HorizontalBoxOf("sound.row",
		d.sound,
		widgets.NewLabel("sound.label", "Sound", measurer),
	)
	soundRow.Wrap()

	d.volume = widgets.NewSlider("volume", 0.5)
	d.name = widgets.NewTextBox("name", graphics.Dimension{Width: 240, Height: 2 * lineHeight(measurer)}, measurer)
	d.name.SetText("player")

	d.list = widgets.NewScrollBox("list", layout.AxisVertical)
	for i := range demoItems {
		item := widgets.NewLabel(fmt.Sprintf("item.%d", i), fmt.Sprintf("Item %d", i+1), measurer)
		item.SetPadding(graphics.MarginSymmetric(0, 2))
		d.list.Insert(item)
	}

	d.ok = widgets.NewButton("ok", "OK", widgets.ButtonColor)
	d.cancel = widgets.NewButton("cancel", "Cancel", cancelColor)
	buttons := widgets.HorizontalBoxOf("buttons", d.ok, d.cancel)
	buttons.Wrap()
	bar := widgets.NewSizeBox("buttons.size", graphics.Dimension{}, graphics.Dimension{Width: 400, Height: 60})
	bar.Insert(buttons)
	bar.Wrap()

	form := widgets.VerticalBoxOf("form", header, soundRow, d.volume, d.name)
	listSlot := form.Insert(d.list)
	listSlot.(*widgets.BoxSlot).SetSizing(widgets.BoundToSlot)
	form.Insert(bar)

	panel := widgets.NewImage("panel", graphics.Dimension{}, panelColor)
	panel.SetAlignments(layout.AlignFill, layout.AlignFill)
	form.SetAlignments(layout.AlignFill, layout.AlignFill)
	d.root = widgets.OverlayOf("demo", panel, form)
	d.root.SetAlignedToCanvas(true)
	d.root.SetAlignments(layout.AlignFill, layout.AlignFill)

	d.sound.OnChanged = func(checked bool) {
		d.status = fmt.Sprintf("sound: %t", checked)
	}
	d.volume.OnChanged = func(v float64) {
		d.status = fmt.Sprintf("volume: %.0f%%", v*100)
	}
	d.name.OnSubmit = func(s string) {
		d.title.SetText("Hello, " + s)
		d.status = fmt.Sprintf("name: %q", s)
	}
	d.ok.OnClick = func() {
		d.status = fmt.Sprintf("saved: sound=%t volume=%.2f name=%q", d.sound.IsChecked(), d.volume.Value(), d.name.Text())
	}
	d.cancel.OnClick = func() {
		d.sound.SetChecked(true)
		d.volume.SetValue(0.5)
		d.name.SetText("player")
		d.list.Scroll(0)
		d.status = "reset"
	}

	d.canvas.Add(d.root)
	return d
}

func lineHeight(m text.Measurer) float64 {
	if m == nil {
		return text.DefaultMeasurer().LineHeight()
	}
	return m.LineHeight()
}

// close destroys the tree and detaches it from the canvas.
func (d *demo) close() {
	d.canvas.Destroy()
}

// kind returns the widget type name without its package.
func kind(w core.Widget) string {
	name := fmt.Sprintf("%T", w)
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
