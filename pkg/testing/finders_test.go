package testing

import (
	"testing"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/widgets"
)

func mountForm(t *testing.T) *WidgetTester {
	t.Helper()
	tester := NewWidgetTesterWithT(t)
	form := widgets.VerticalBoxOf("form",
		widgets.NewLabel("title", "Settings", nil),
		widgets.NewCheckBox("sound", true),
		widgets.NewButton("ok", "OK", widgets.ButtonColor),
		widgets.NewButton("cancel", "Cancel", widgets.ButtonColor),
	)
	if err := tester.Mount(form); err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	return tester
}

func TestByType(t *testing.T) {
	tester := mountForm(t)
	if got := tester.Find(ByType[*widgets.Button]()).Count(); got != 2 {
		t.Errorf("expected 2 buttons, got %d", got)
	}
	if got := tester.Find(ByType[*widgets.CheckBox]()).Count(); got != 1 {
		t.Errorf("expected 1 check box, got %d", got)
	}
}

func TestByName(t *testing.T) {
	tester := mountForm(t)
	w := tester.Find(ByName("sound")).Widget()
	if _, ok := w.(*widgets.CheckBox); !ok {
		t.Errorf("expected *widgets.CheckBox, got %T", w)
	}
	if tester.Find(ByName("missing")).Exists() {
		t.Error("expected no match for an unknown name")
	}
}

func TestByText_FindsCaptions(t *testing.T) {
	tester := mountForm(t)
	if !tester.Find(ByText("Settings")).Exists() {
		t.Error("expected the title label")
	}
	if got := tester.Find(ByTextContaining("c")).Count(); got != 1 {
		t.Errorf("expected only the Cancel caption to contain c, got %d", got)
	}
}

func TestAncestor_FindsButtonByCaption(t *testing.T) {
	tester := mountForm(t)
	result := tester.Find(Ancestor(ByText("Cancel"), ByType[*widgets.Button]()))
	if result.Count() != 1 || result.First().Name() != "cancel" {
		t.Fatalf("expected the cancel button, got %d matches", result.Count())
	}
}

func TestAncestor_WalksSlotsAndComponents(t *testing.T) {
	tester := mountForm(t)
	result := tester.Find(Ancestor(ByText("OK"), ByType[*widgets.VerticalBox]()))
	if result.Count() != 1 || result.First().Name() != "form" {
		t.Fatalf("expected the form above the OK caption, got %d matches", result.Count())
	}
	if tester.Find(Ancestor(ByName("form"), ByName("ok"))).Exists() {
		t.Error("a child is not an ancestor of its container")
	}
}

func TestDescendant(t *testing.T) {
	tester := mountForm(t)
	result := tester.Find(Descendant(ByName("ok"), ByType[*widgets.Label]()))
	if result.Count() != 1 || result.First().(*widgets.Label).Text() != "OK" {
		t.Errorf("expected the OK caption below the ok button")
	}
	if tester.Find(Descendant(ByName("title"), ByType[*widgets.Label]())).Exists() {
		t.Error("descendant search must skip the ancestor itself")
	}
}

func TestByPredicate(t *testing.T) {
	tester := mountForm(t)
	wide := tester.Find(ByPredicate(func(w core.Widget) bool {
		return w.Bounds().Width() >= DefaultTestWidth
	}))
	if !wide.Exists() || wide.First().Name() != "form" {
		t.Error("expected the form to be the first full-width widget")
	}
}

func TestFinderResult_PanicsOnMissing(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.Mount(widgets.NewImage("img", graphics.Dimension{Width: 1, Height: 1}, graphics.ColorWhite))

	defer func() {
		if recover() == nil {
			t.Error("expected First to panic without matches")
		}
	}()
	tester.Find(ByName("nothing")).First()
}
