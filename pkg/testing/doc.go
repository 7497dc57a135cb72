// Package testing provides a widget testing harness for slate.
//
// # Quick Start
//
// Create a tester, mount a widget, drive input and make assertions:
//
//	func TestSubmit(t *testing.T) {
//	    tester := slatetest.NewWidgetTesterWithT(t)
//	    form := widgets.VerticalBoxOf("form",
//	        widgets.NewButton("submit", "Submit", widgets.ButtonColor),
//	    )
//	    tester.Mount(form)
//
//	    // Find widgets
//	    button := tester.Find(slatetest.ByText("Submit")).Widget()
//
//	    // Simulate input
//	    tester.Tap(slatetest.ByName("submit"))
//
//	    // Assert notifications
//	    if tester.EventCount(canvas.EventWidgetUpdated) == 0 {
//	        t.Error("expected the button to redraw")
//	    }
//	}
//
// The tester owns a canvas.Canvas backed by a raster.Renderer, so every
// Pump flushes geometry exactly like a real frame and the rendered pixels
// can be inspected through Renderer().
//
// # Snapshot Testing
//
// Capture and compare widget tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/form.snapshot.json")
//
// Update snapshots with:
//
//	SLATE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import slatetest "github.com/go-drift/slate/pkg/testing"
package testing
