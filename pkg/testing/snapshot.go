package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

// updateEnv names the environment variable that rewrites golden files.
const updateEnv = "SLATE_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the widget tree structure and the draw order.
type Snapshot struct {
	Tree      []*WidgetNode `json:"tree"`
	DrawOrder []string      `json:"drawOrder,omitempty"`
}

// WidgetNode represents a widget in the serialized tree.
type WidgetNode struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Name       string         `json:"name,omitempty"`
	Bounds     [4]float64     `json:"bounds"`
	Hidden     bool           `json:"hidden,omitempty"`
	Properties map[string]any `json:"props,omitempty"`
	Components []*WidgetNode  `json:"components,omitempty"`
	Slots      []*WidgetNode  `json:"slots,omitempty"`
}

// propertyWhitelist defines which fields to serialize per widget type.
// Types not listed here are serialized with bounds only.
var propertyWhitelist = map[string][]string{
	"Label":     {"text", "color"},
	"Image":     {"color", "stateIndex"},
	"Button":    {"color"},
	"CheckBox":  {"checked"},
	"Slider":    {"value"},
	"TextBox":   {"caret", "editing"},
	"ScrollBox": {"percent", "amount", "padding"},
	"Border":    {"thickness", "color"},
	"SizeBox":   {"min", "max"},
}

// CaptureSnapshot captures the current widget tree of every root and the
// widgets the canvas would draw, back to front.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	counter := &typeCounter{}
	ids := make(map[core.Widget]string)
	for _, r := range t.canvas.Roots() {
		snap.Tree = append(snap.Tree, captureWidgetNode(r, counter, ids))
	}
	for _, w := range t.canvas.DrawOrder() {
		snap.DrawOrder = append(snap.DrawOrder, ids[w])
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// SLATE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns an
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// Find returns the first node named name, searching depth first.
func (s *Snapshot) Find(name string) *WidgetNode {
	var find func(nodes []*WidgetNode) *WidgetNode
	find = func(nodes []*WidgetNode) *WidgetNode {
		for _, n := range nodes {
			if n.Name == name {
				return n
			}
			if m := find(n.Components); m != nil {
				return m
			}
			if m := find(n.Slots); m != nil {
				return m
			}
		}
		return nil
	}
	return find(s.Tree)
}

// --- Internal ---

// typeCounter assigns stable IDs like "Label#0", "Label#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureWidgetNode(w core.Widget, counter *typeCounter, ids map[core.Widget]string) *WidgetNode {
	typeName := widgetTypeName(w)
	b := w.Bounds()

	node := &WidgetNode{
		ID:     counter.next(typeName),
		Type:   typeName,
		Name:   w.Name(),
		Bounds: [4]float64{round2(b.Min.X), round2(b.Min.Y), round2(b.Width()), round2(b.Height())},
		Hidden: w.BaseWidget().Visibility() != core.Visible,
	}
	ids[w] = node.ID

	if props := captureProperties(w, typeName); len(props) > 0 {
		node.Properties = props
	}

	for _, c := range w.Components() {
		node.Components = append(node.Components, captureWidgetNode(c, counter, ids))
	}
	if ct, ok := w.(core.Container); ok {
		for _, s := range ct.Slots() {
			if content := s.Content(); content != nil {
				node.Slots = append(node.Slots, captureWidgetNode(content, counter, ids))
			}
		}
	}
	return node
}

func widgetTypeName(w core.Widget) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	// Capitalize first letter so unexported types like testLeaf
	// still read as type names.
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

func captureProperties(w core.Widget, typeName string) map[string]any {
	whitelist, ok := propertyWhitelist[typeName]
	if !ok {
		return nil
	}

	props := make(map[string]any)
	v := reflect.ValueOf(w)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, fieldName := range whitelist {
		field := v.FieldByName(fieldName)
		if !field.IsValid() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[fieldName] = val
		}
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Type() == reflect.TypeOf(graphics.Color(0)) {
			return graphics.Color(v.Uint()).String()
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Struct:
		return serializeStruct(v)
	default:
		return nil
	}
}

// serializeStruct iterates the exported sub-fields of a struct and collects
// their values into a map. It works on unexported fields too, where the
// struct itself cannot be interfaced.
func serializeStruct(v reflect.Value) any {
	t := v.Type()
	m := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if val := serializeFieldValue(v.Field(i)); val != nil {
			m[f.Name] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
