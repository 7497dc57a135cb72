// Package input defines the pointer and keyboard events a host platform
// delivers to the widget tree.
package input

import (
	"fmt"

	"github.com/go-drift/slate/pkg/graphics"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// MouseEvent carries the pointer state for one mouse callback.
type MouseEvent struct {
	// Position is the pointer location in canvas coordinates.
	Position graphics.Vector
	// Delta is the movement since the previous event.
	Delta  graphics.Vector
	Button MouseButton
	// Wheel is the wheel movement in notches. Positive scrolls toward the
	// start of the content.
	Wheel float64
}

// At creates a mouse event at (x, y).
func At(x, y float64) MouseEvent {
	return MouseEvent{Position: graphics.Vector{X: x, Y: y}}
}

// Key is a platform-neutral key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	// KeyRune marks a printable character carried in KeyEvent.Rune.
	KeyRune
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether m contains every bit in other.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// KeyEvent carries one key transition.
type KeyEvent struct {
	Key       Key
	Rune      rune
	Modifiers Modifiers
}

// RuneKey creates a key event for a printable character.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}
