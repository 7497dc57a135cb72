// Package widgets provides the concrete containers and leaves built on
// package core.
//
// Containers:
//
//   - HorizontalBox and VerticalBox stack their slots along one axis. Each
//     BoxSlot is either bound to its content's size or shares the remaining
//     space by weight.
//   - Overlay places every slot over the whole container; insertion order is
//     paint and hit order.
//   - ScrollBox stacks its slots like a box and scrolls them when they
//     overflow, with a ScrollBar component and its Handle.
//   - Border insets its single slot by a frame thickness and draws the frame.
//   - SizeBox clamps its single slot between a minimum and a maximum size.
//
// Leaves: Image, Label, Button, CheckBox, Slider and TextBox.
//
// # Construction
//
// Widgets are created with NewX constructors and composed by inserting them
// into containers:
//
//	col := widgets.VerticalBoxOf("form",
//	    widgets.NewLabel("title", "Settings", nil),
//	    widgets.NewCheckBox("sound", true),
//	    widgets.NewSlider("volume", 0.5),
//	)
//	col.Wrap()
//	canvas.Add(col)
//
// Layout attributes of a slot are set on the slot returned by Insert:
//
//	slot := row.Insert(widgets.NewImage("fill", graphics.Dimension{}, color))
//	slot.(*widgets.BoxSlot).SetSizing(widgets.BoundToSlot)
//
// # Settings
//
// ApplySettings copies scroll, wrap and focus settings loaded by package
// config into the package defaults. It affects widgets created afterwards.
package widgets
