package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/widgets"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first
	// pre-order, components before slot contents).
	Evaluate(root core.Widget) []core.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []core.Widget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.description()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

// Widget returns the first match. Panics if no matches.
func (r FinderResult) Widget() core.Widget {
	return r.First()
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

// typeFinder matches widgets of the specified type.
type typeFinder struct {
	widgetType reflect.Type
	typeName   string
}

func (f *typeFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches widgets of type T, typically a
// pointer type such as *widgets.Button.
func ByType[T core.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &typeFinder{widgetType: t, typeName: t.String()}
}

// nameFinder matches widgets by exact name.
type nameFinder struct {
	name string
}

func (f *nameFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		return w.Name() == f.name
	})
}

func (f *nameFinder) Description() string {
	return fmt.Sprintf("ByName(%q)", f.name)
}

// ByName returns a finder that matches widgets named name.
func ByName(name string) Finder {
	return &nameFinder{name: name}
}

// textOf returns the text shown by labels and text boxes.
func textOf(w core.Widget) (string, bool) {
	switch w := w.(type) {
	case *widgets.Label:
		return w.Text(), true
	case *widgets.TextBox:
		return w.Text(), true
	}
	return "", false
}

// textFinder matches labels and text boxes by exact content.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		s, ok := textOf(w)
		return ok && s == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches [widgets.Label] or [widgets.TextBox]
// with exact content. Button captions are labels, so a button is found
// through Ancestor.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches labels and text boxes containing substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		s, ok := textOf(w)
		return ok && strings.Contains(s, f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches [widgets.Label] or
// [widgets.TextBox] containing the given substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(core.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(core.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds widgets matching 'matching' below widgets
// matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Widget) []core.Widget {
	var results []core.Widget
	seen := make(map[core.Widget]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		// Search within each ancestor's subtree, skipping the ancestor itself.
		visitChildren(ancestor, func(child core.Widget) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds widgets matching 'matching' above widgets matching
// 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root core.Widget) []core.Widget {
	candidates := f.matching.Evaluate(root)
	var results []core.Widget
	seen := make(map[core.Widget]bool)
	for _, desc := range f.of.Evaluate(root) {
		for p := desc.BaseWidget().Parent(); p != nil; p = p.BaseWidget().Parent() {
			for _, c := range candidates {
				if c == p && !seen[c] {
					seen[c] = true
					results = append(results, c)
				}
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches widgets satisfying 'matching'
// that are ancestors of widgets matching 'of'. Hosts count as ancestors of
// their components.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// collectMatches performs depth-first pre-order traversal, collecting
// widgets that satisfy the predicate.
func collectMatches(root core.Widget, predicate func(core.Widget) bool) []core.Widget {
	var results []core.Widget
	walkTree(root, func(w core.Widget) {
		if predicate(w) {
			results = append(results, w)
		}
	})
	return results
}

// visitChildren calls visitor with each component of w and then the
// content of each of its slots.
func visitChildren(w core.Widget, visitor func(core.Widget)) {
	for _, c := range w.Components() {
		visitor(c)
	}
	if ct, ok := w.(core.Container); ok {
		for _, s := range ct.Slots() {
			if content := s.Content(); content != nil {
				visitor(content)
			}
		}
	}
}

// walkTree performs a depth-first pre-order traversal of the widget tree.
func walkTree(root core.Widget, visitor func(core.Widget)) {
	visitor(root)
	visitChildren(root, func(child core.Widget) {
		walkTree(child, visitor)
	})
}
