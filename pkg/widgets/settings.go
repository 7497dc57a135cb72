package widgets

import (
	"github.com/go-drift/slate/pkg/config"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/errors"
)

var (
	// ScrollStep is the scroll percent one wheel notch moves.
	ScrollStep = 0.1

	// ScrollBarThickness is the cross-axis size of new scroll bars.
	ScrollBarThickness = 10.0

	// HorizontalIntoViewUsesHeight makes ScrollSlotIntoView on horizontal
	// scroll boxes divide the slot offset by the overflow computed against
	// the viewport height instead of its width. Older releases behaved this
	// way; enable it only to reproduce their scroll positions.
	HorizontalIntoViewUsesHeight = false
)

// ApplySettings copies s into the package defaults of widgets, core and the
// error handler.
func ApplySettings(s *config.Settings) {
	if s == nil {
		return
	}
	ScrollStep = s.Scroll.Step
	ScrollBarThickness = s.Scroll.BarThickness
	HorizontalIntoViewUsesHeight = s.Scroll.HorizontalIntoViewUsesHeight
	core.MinimumWrapExtent = s.Wrap.MinimumExtent
	core.DefaultFocusMode = s.FocusMode()
	errors.SetHandler(&errors.LogHandler{Verbose: s.Debug.VerboseErrors})
}
