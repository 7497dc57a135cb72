package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/config"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/text"
)

func TestExecuteUnknownCommand(t *testing.T) {
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestExecuteConfigRequiresPath(t *testing.T) {
	if err := Execute([]string{"--config"}); err == nil {
		t.Fatal("expected error for --config without a path")
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr bool
	}{
		{"defaults", nil, renderOptions{output: "slate.png"}, false},
		{"output", []string{"-o", "out.png"}, renderOptions{output: "out.png"}, false},
		{"scroll and lines", []string{"--scroll", "0.5", "--lines"}, renderOptions{output: "slate.png", scroll: 0.5, lines: true}, false},
		{"missing output", []string{"-o"}, renderOptions{}, true},
		{"bad scroll", []string{"--scroll", "half"}, renderOptions{}, true},
		{"unknown flag", []string{"--fast"}, renderOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRenderArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseRenderArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestRenderWritesPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(cfg, []byte("canvas:\n  width: 320\n  height: 240\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "demo.png")

	if err := Execute([]string{"--config", cfg, "render", "-o", out, "--scroll", "1"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestDumpTree(t *testing.T) {
	d := newDemo(canvas.OptionsFrom(config.Default()), nil)
	defer d.close()

	var sb strings.Builder
	if err := dumpTree(&sb, d.canvas.Roots(), true); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	for _, want := range []string{
		"demo Overlay (0,0 800x600)",
		"  -form VerticalBox",
		"+list.bar ScrollBar",
		"-sound CheckBox",
		"-ok Button",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "[wrapped") {
		t.Errorf("dump should flag wrapped boxes:\n%s", out)
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []input.KeyEvent
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []input.KeyEvent{{Key: input.KeyEnter}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []input.KeyEvent{{Key: input.KeySpace, Rune: ' '}}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []input.KeyEvent{{Key: input.KeyTab, Modifiers: input.ModShift}}},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, []input.KeyEvent{input.RuneKey('h'), input.RuneKey('i')}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, []input.KeyEvent{{Key: input.KeyRune, Rune: 'x', Modifiers: input.ModAlt}}},
		{"unmapped", tea.KeyMsg{Type: tea.KeyCtrlA}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keyEvents(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("keyEvents = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("keyEvents[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlayClickTogglesCheckBox(t *testing.T) {
	cells := &text.CellMeasurer{CellWidth: cellWidth, CellHeight: cellHeight}
	d := newDemo(canvas.OptionsFrom(config.Default()), cells)
	defer d.close()
	// Taller than a cell so some cell center lies strictly inside.
	d.sound.SetDimension(graphics.Dimension{Width: 24, Height: 24})
	m := newPlayModel(d, cells)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 31})

	b := d.sound.Bounds()
	x := interiorCell(t, b.Min.X, b.Max.X, cellWidth)
	y := interiorCell(t, b.Min.Y, b.Max.Y, cellHeight)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if d.sound.IsChecked() {
		t.Error("click should uncheck the sound check box")
	}
	if d.status != "sound: false" {
		t.Errorf("status = %q, want %q", d.status, "sound: false")
	}
	if view := m.View(); !strings.Contains(view, "Sound") {
		t.Errorf("view should show the check box label:\n%s", view)
	}
}

// interiorCell returns the first cell whose center lies strictly between lo
// and hi.
func interiorCell(t *testing.T, lo, hi, size float64) int {
	t.Helper()
	for i := int(lo / size); float64(i)*size < hi; i++ {
		if c := (float64(i) + 0.5) * size; c > lo && c < hi {
			return i
		}
	}
	t.Fatalf("no cell center inside [%g, %g]", lo, hi)
	return 0
}
