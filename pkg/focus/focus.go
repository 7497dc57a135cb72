// Package focus provides pointer focus resolution for sibling widgets.
package focus

import (
	"fmt"
	"slices"

	"github.com/go-drift/slate/pkg/graphics"
)

// Mode controls how a widget competes for pointer focus with its siblings.
type Mode int

const (
	// ModeZOrder lets only the topmost overlapping candidate take focus.
	ModeZOrder Mode = iota

	// ModeImmediate focuses the candidate whenever the pointer is inside it,
	// independent of its siblings.
	ModeImmediate
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeZOrder:
		return "z_order"
	case ModeImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts the String form back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "z_order", "zorder", "":
		return ModeZOrder, nil
	case "immediate":
		return ModeImmediate, nil
	}
	return ModeZOrder, fmt.Errorf("unknown focus mode %q", s)
}

// Candidate is implemented by anything a router can focus.
type Candidate interface {
	FocusMode() Mode
	// CanReceiveFocus reports whether the candidate is present, visible and
	// enabled.
	CanReceiveFocus() bool
	IsInside(position graphics.Vector) bool
	IsFocused() bool
}

// Transition lists what a routed pointer position changed.
type Transition struct {
	// Leave holds candidates that lost focus and must get OnMouseLeave.
	Leave []Candidate
	// Enter holds newly focused candidates.
	Enter []Candidate
	// Move holds candidates that were already focused.
	Move []Candidate
}

// Tracker remembers the ZOrder winner and the Immediate set between pointer
// events.
type Tracker struct {
	focus     Candidate
	immediate []Candidate
}

// Focus returns the current ZOrder winner, or nil.
func (t *Tracker) Focus() Candidate {
	return t.focus
}

// Immediate returns the candidates focused in Immediate mode.
func (t *Tracker) Immediate() []Candidate {
	return t.immediate
}

// Targets returns the focus winner followed by the Immediate set.
func (t *Tracker) Targets() []Candidate {
	out := make([]Candidate, 0, len(t.immediate)+1)
	if t.focus != nil {
		out = append(out, t.focus)
	}
	return append(out, t.immediate...)
}

// Reset forgets all focus state without notifying anyone.
func (t *Tracker) Reset() {
	t.focus = nil
	t.immediate = nil
}

// Forget drops c from the tracked state.
func (t *Tracker) Forget(c Candidate) {
	if t.focus == c {
		t.focus = nil
	}
	t.immediate = slices.DeleteFunc(t.immediate, func(other Candidate) bool { return other == c })
}

// Route resolves focus for a pointer at position over candidates given in
// paint order (last is topmost).
//
// The ZOrder pass picks the last focusable ZOrder candidate containing the
// pointer. The Immediate pass collects every focusable Immediate candidate
// containing the pointer. Previously focused candidates that are no longer
// targeted are reported in Leave.
func (t *Tracker) Route(candidates []Candidate, position graphics.Vector) Transition {
	var winner Candidate
	var immediate []Candidate
	for _, c := range candidates {
		if c == nil || !c.CanReceiveFocus() || !c.IsInside(position) {
			continue
		}
		switch c.FocusMode() {
		case ModeZOrder:
			winner = c
		case ModeImmediate:
			immediate = append(immediate, c)
		}
	}

	var tr Transition
	if t.focus != nil && t.focus != winner {
		tr.Leave = append(tr.Leave, t.focus)
	}
	for _, prev := range t.immediate {
		if !slices.Contains(immediate, prev) {
			tr.Leave = append(tr.Leave, prev)
		}
	}

	t.focus = winner
	t.immediate = immediate

	for _, c := range t.Targets() {
		if c.IsFocused() {
			tr.Move = append(tr.Move, c)
		} else {
			tr.Enter = append(tr.Enter, c)
		}
	}
	return tr
}

// LeaveAll clears the state and returns every candidate that was focused.
func (t *Tracker) LeaveAll() []Candidate {
	out := t.Targets()
	t.Reset()
	return out
}
