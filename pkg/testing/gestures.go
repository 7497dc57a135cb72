package testing

import (
	"fmt"

	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
)

// dragSteps is the number of intermediate moves Drag emits.
const dragSteps = 10

// Tap moves the pointer to the center of the first widget matched by
// finder and clicks the left button there.
func (t *WidgetTester) Tap(finder Finder) error {
	center, err := t.centerOf("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(center)
}

// TapAt moves the pointer to pos and clicks the left button.
func (t *WidgetTester) TapAt(pos graphics.Vector) error {
	if err := t.MoveTo(pos); err != nil {
		return err
	}
	if err := t.Press(); err != nil {
		return err
	}
	return t.Release()
}

// Drag presses at the center of the first widget matched by finder, moves
// by delta and releases.
func (t *WidgetTester) Drag(finder Finder, delta graphics.Vector) error {
	start, err := t.centerOf("Drag", finder)
	if err != nil {
		return err
	}
	return t.DragFrom(start, delta)
}

// DragFrom presses at start, moves by delta in dragSteps moves and
// releases.
func (t *WidgetTester) DragFrom(start, delta graphics.Vector) error {
	if err := t.MoveTo(start); err != nil {
		return err
	}
	if err := t.Press(); err != nil {
		return err
	}
	for i := 1; i <= dragSteps; i++ {
		frac := float64(i) / dragSteps
		pos := graphics.Vector{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac}
		if err := t.MoveTo(pos); err != nil {
			return err
		}
	}
	return t.Release()
}

// MoveTo moves the pointer to pos.
func (t *WidgetTester) MoveTo(pos graphics.Vector) error {
	if t.root == nil {
		return ErrNothingMounted
	}
	event := t.event(pos)
	t.pointer = pos
	t.canvas.OnMouseMove(event)
	return t.Pump()
}

// Press presses the left button at the current pointer position.
func (t *WidgetTester) Press() error {
	if t.root == nil {
		return ErrNothingMounted
	}
	event := t.event(t.pointer)
	event.Button = input.ButtonLeft
	t.canvas.OnMouseButtonDown(event)
	return t.Pump()
}

// Release releases the left button at the current pointer position.
func (t *WidgetTester) Release() error {
	if t.root == nil {
		return ErrNothingMounted
	}
	event := t.event(t.pointer)
	event.Button = input.ButtonLeft
	t.canvas.OnMouseButtonUp(event)
	return t.Pump()
}

// Wheel turns the wheel by notches at the current pointer position.
// Positive notches scroll toward the start of the content.
func (t *WidgetTester) Wheel(notches float64) error {
	if t.root == nil {
		return ErrNothingMounted
	}
	event := t.event(t.pointer)
	event.Wheel = notches
	t.canvas.OnMouseWheel(event)
	return t.Pump()
}

// Leave moves the pointer off the screen.
func (t *WidgetTester) Leave() error {
	if t.root == nil {
		return ErrNothingMounted
	}
	t.canvas.OnMouseLeave(t.event(t.pointer))
	return t.Pump()
}

// SendKey presses and releases key.
func (t *WidgetTester) SendKey(key input.KeyEvent) error {
	if t.root == nil {
		return ErrNothingMounted
	}
	t.canvas.OnKeyDown(key)
	t.canvas.OnKeyUp(key)
	return t.Pump()
}

// Type sends one rune key per character of s.
func (t *WidgetTester) Type(s string) error {
	for _, r := range s {
		if err := t.SendKey(input.RuneKey(r)); err != nil {
			return err
		}
	}
	return nil
}

// Pointer returns the last pointer position.
func (t *WidgetTester) Pointer() graphics.Vector {
	return t.pointer
}

func (t *WidgetTester) event(pos graphics.Vector) input.MouseEvent {
	return input.MouseEvent{
		Position: pos,
		Delta:    graphics.Vector{X: pos.X - t.pointer.X, Y: pos.Y - t.pointer.Y},
	}
}

func (t *WidgetTester) centerOf(op string, finder Finder) (graphics.Vector, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return graphics.Vector{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return result.First().Bounds().Center(), nil
}
