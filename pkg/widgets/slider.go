package widgets

import (
	"math"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/layout"
)

// Default slider look.
var (
	SliderSize        = graphics.Dimension{Width: 120, Height: 16}
	SliderTrackColor  = graphics.RGB(0x42, 0x42, 0x42)
	SliderHandleWidth = 12.0
)

// SliderKeyStep is the value change of one arrow key press.
const SliderKeyStep = 0.05

// Slider selects a value in [0, 1] by dragging a Handle along a horizontal
// track. Pressing the track away from the handle jumps there and starts the
// drag. Left/Right, Home and End change the value while it has key focus.
type Slider struct {
	core.WidgetBase
	surface
	value    float64
	handle   *Handle
	dragging bool
	grab     float64

	// OnChanged is called with the new value after every change made by
	// input or SetValue.
	OnChanged func(value float64)
}

// NewSlider creates a slider of SliderSize at value.
func NewSlider(name string, value float64) *Slider {
	s := &Slider{}
	s.color = SliderTrackColor
	s.Init(s, name)
	s.handle = NewHandle(name+".handle", HandleColor, HandleHoverColor)
	s.handle.SetDimension(graphics.Dimension{Width: SliderHandleWidth})
	alignAlong(&s.handle.WidgetBase, layout.AxisHorizontal, layout.AlignNone, layout.AlignFill)
	s.AddComponent(s.handle)
	s.SetDimension(SliderSize)
	s.value = clampUnit(value)
	s.placeHandle()
	return s
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Value returns the current value.
func (s *Slider) Value() float64 {
	return s.value
}

// Handle returns the draggable handle.
func (s *Slider) Handle() *Handle {
	return s.handle
}

// SetValue clamps v to [0, 1], moves the handle and calls OnChanged.
func (s *Slider) SetValue(v float64) bool {
	v = clampUnit(v)
	if v == s.value {
		return false
	}
	s.value = v
	s.placeHandle()
	if s.OnChanged != nil {
		s.OnChanged(v)
	}
	return true
}

// travel is the distance the handle center can move.
func (s *Slider) travel() float64 {
	return s.Dimension().Width - s.handle.NonAlignedDimension().Width
}

func (s *Slider) placeHandle() {
	s.handle.SetOffset(graphics.Vector{X: s.value * math.Max(s.travel(), 0)})
}

// valueAt maps a handle center x to a value.
func (s *Slider) valueAt(center float64) float64 {
	travel := s.travel()
	if travel <= 0 {
		return s.value
	}
	left := s.Bounds().Min.X + s.handle.NonAlignedDimension().Width/2
	return (center - left) / travel
}

// OnAligned keeps the handle at the value after a resize.
func (s *Slider) OnAligned() {
	s.placeHandle()
}

func (s *Slider) OnMouseEnter(event input.MouseEvent) bool {
	if !s.WidgetBase.OnMouseEnter(event) {
		return false
	}
	s.handle.track(event)
	return true
}

func (s *Slider) OnMouseLeave(event input.MouseEvent) bool {
	s.dragging = false
	s.handle.OnMouseLeave(event)
	return s.WidgetBase.OnMouseLeave(event)
}

// OnMouseMove drags the value while pressed.
func (s *Slider) OnMouseMove(event input.MouseEvent) bool {
	if s.dragging {
		s.SetValue(s.valueAt(event.Position.X - s.grab))
		return true
	}
	if !s.WidgetBase.OnMouseMove(event) {
		return false
	}
	s.handle.track(event)
	return true
}

// OnMouseButtonDown grabs the handle, or jumps to the pointer when the track
// was pressed.
func (s *Slider) OnMouseButtonDown(event input.MouseEvent) bool {
	if !s.WidgetBase.OnMouseButtonDown(event) {
		return false
	}
	s.dragging = true
	if s.handle.IsInside(event.Position) {
		s.grab = s.handle.grab(event, layout.AxisHorizontal)
		return true
	}
	s.grab = 0
	s.SetValue(s.valueAt(event.Position.X))
	s.handle.grab(event, layout.AxisHorizontal)
	return true
}

// OnMouseButtonUp ends the drag.
func (s *Slider) OnMouseButtonUp(event input.MouseEvent) bool {
	if !s.dragging {
		return s.WidgetBase.OnMouseButtonUp(event)
	}
	s.dragging = false
	s.handle.OnMouseButtonUp(event)
	s.WidgetBase.OnMouseButtonUp(event)
	return true
}

// OnKeyDown steps the value with the arrow keys.
func (s *Slider) OnKeyDown(event input.KeyEvent) bool {
	if !s.IsInteractableWithKey() {
		return false
	}
	switch event.Key {
	case input.KeyLeft, input.KeyDown:
		s.SetValue(s.value - SliderKeyStep)
	case input.KeyRight, input.KeyUp:
		s.SetValue(s.value + SliderKeyStep)
	case input.KeyHome:
		s.SetValue(0)
	case input.KeyEnd:
		s.SetValue(1)
	default:
		return false
	}
	return true
}

func (s *Slider) ResetInput() {
	s.dragging = false
	s.WidgetBase.ResetInput()
}

func (s *Slider) HasGeometry() bool {
	return true
}

func (s *Slider) VertexData(lineMode bool) []graphics.Vertex {
	return s.vertices(s)
}

func (s *Slider) IndexData(lineMode bool) []uint32 {
	return s.indices(lineMode)
}

func (s *Slider) GeometryDrawData(lineMode bool) graphics.DrawData {
	return s.drawData(s, lineMode)
}

func (s *Slider) Clone() core.Widget {
	c := NewSlider(s.Name(), s.value)
	c.color = s.color
	c.OnChanged = s.OnChanged
	s.CloneInto(c)
	return c
}
