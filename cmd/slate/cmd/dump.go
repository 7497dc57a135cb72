package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the demo tree layout",
		Long: `Build the demo widget tree on a canvas sized by the settings and print
it as an indented outline.

Each line shows the widget name, its type, its bounds and its state flags.
Components are marked with "+", slot contents with "-".

Flags:
  --plain    Disable colors`,
		Usage: "slate dump [--plain]",
		Run:   runDump,
	})
}

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1E88E5"))
	boundsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300"))
)

func runDump(args []string) error {
	plain := false
	for _, arg := range args {
		switch arg {
		case "--plain":
			plain = true
		default:
			return fmt.Errorf("unknown flag: %s", arg)
		}
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}
	d := newDemo(canvas.OptionsFrom(s), nil)
	defer d.close()

	return dumpTree(os.Stdout, d.canvas.Roots(), plain)
}

// dumpTree writes the outline of every root to w.
func dumpTree(w io.Writer, roots []core.Widget, plain bool) error {
	render := func(style lipgloss.Style, s string) string {
		if plain {
			return s
		}
		return style.Render(s)
	}

	var sb strings.Builder
	var visit func(widget core.Widget, marker string, depth int)
	visit = func(widget core.Widget, marker string, depth int) {
		fmt.Fprintf(&sb, "%s%s%s %s %s",
			strings.Repeat("  ", depth),
			marker,
			render(nameStyle, widget.Name()),
			render(kindStyle, kind(widget)),
			render(boundsStyle, formatBounds(widget.Bounds())),
		)
		if flags := widgetFlags(widget); len(flags) > 0 {
			sb.WriteString(" " + render(flagStyle, "["+strings.Join(flags, ",")+"]"))
		}
		sb.WriteByte('\n')

		for _, c := range widget.Components() {
			visit(c, "+", depth+1)
		}
		if container, ok := widget.(core.Container); ok {
			for _, slot := range container.Slots() {
				if content := slot.Content(); content != nil {
					visit(content, "-", depth+1)
				}
			}
		}
	}
	for _, root := range roots {
		visit(root, "", 0)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatBounds(b graphics.Bounds) string {
	return fmt.Sprintf("(%g,%g %gx%g)", b.Min.X, b.Min.Y, b.Width(), b.Height())
}

// widgetFlags lists the state of a widget that differs from a plain
// visible, enabled and idle widget.
func widgetFlags(w core.Widget) []string {
	var flags []string
	base := w.BaseWidget()
	if base.Visibility() != core.Visible {
		flags = append(flags, strings.ToLower(base.Visibility().String()))
	}
	if !w.IsEnabled() {
		flags = append(flags, "disabled")
	}
	if w.IsCulled() {
		flags = append(flags, "culled")
	}
	if w.IsFocused() {
		flags = append(flags, "focused")
	}
	if w.IsPressed() {
		flags = append(flags, "pressed")
	}
	if c, ok := w.(core.Container); ok && c.IsWrapped() {
		flags = append(flags, "wrapped")
	}
	if w.HasGeometry() {
		flags = append(flags, fmt.Sprintf("v%d", len(w.VertexData(false))))
	}
	return flags
}
