package cmd

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/core"
	"github.com/go-drift/slate/pkg/graphics"
	"github.com/go-drift/slate/pkg/input"
	"github.com/go-drift/slate/pkg/text"
	"github.com/go-drift/slate/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Drive the demo tree from the terminal",
		Long: `Run the demo widget tree in the terminal.

Every terminal cell stands for an 8x16 canvas pixel block. Mouse motion,
clicks and the wheel are routed into the canvas, keys go to the focused
widgets. Press Ctrl+C to quit.`,
		Usage: "slate play",
		Run:   runPlay,
	})
}

// Canvas pixels covered by one terminal cell.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#1E88E5")).
	Padding(0, 1)

func runPlay(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown flag: %s", args[0])
	}
	s, err := loadSettings()
	if err != nil {
		return err
	}

	cells := &text.CellMeasurer{CellWidth: cellWidth, CellHeight: cellHeight}
	d := newDemo(canvas.OptionsFrom(s), cells)
	defer d.close()

	p := tea.NewProgram(newPlayModel(d, cells), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

// playModel adapts a demo to a bubbletea program. The last terminal row is
// the status line; the rest shows the canvas.
type playModel struct {
	demo    *demo
	cells   *text.CellMeasurer
	cols    int
	rows    int
	pointer graphics.Vector
}

func newPlayModel(d *demo, cells *text.CellMeasurer) *playModel {
	return &playModel{demo: d, cells: cells}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		for _, ev := range keyEvents(msg) {
			m.demo.canvas.OnKeyDown(ev)
			m.demo.canvas.OnKeyUp(ev)
		}
	case tea.MouseMsg:
		m.mouse(msg)
	}
	m.demo.canvas.Flush()
	return m, nil
}

func (m *playModel) resize(cols, rows int) {
	m.cols, m.rows = cols, max(rows-1, 0)
	c := m.demo.canvas
	c.ResetInput()
	c.Resize(graphics.Dimension{
		Width:  float64(m.cols) * cellWidth,
		Height: float64(m.rows) * cellHeight,
	})
}

// mouse translates a terminal mouse event to the cell center in canvas
// pixels and routes it.
func (m *playModel) mouse(msg tea.MouseMsg) {
	c := m.demo.canvas
	pos := graphics.Vector{
		X: (float64(msg.X) + 0.5) * cellWidth,
		Y: (float64(msg.Y) + 0.5) * cellHeight,
	}
	ev := input.MouseEvent{Position: pos, Delta: pos.Sub(m.pointer)}
	m.pointer = pos

	if msg.Y >= m.rows {
		c.OnMouseLeave(ev)
		return
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		c.OnMouseMove(ev)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			ev.Wheel = 1
			c.OnMouseWheel(ev)
		case tea.MouseButtonWheelDown:
			ev.Wheel = -1
			c.OnMouseWheel(ev)
		default:
			c.OnMouseMove(ev)
			ev.Button = mouseButton(msg.Button)
			c.OnMouseButtonDown(ev)
		}
	case tea.MouseActionRelease:
		ev.Button = mouseButton(msg.Button)
		c.OnMouseButtonUp(ev)
	}
}

func mouseButton(b tea.MouseButton) input.MouseButton {
	switch b {
	case tea.MouseButtonRight:
		return input.ButtonRight
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle
	default:
		// Some terminals report releases without a button.
		return input.ButtonLeft
	}
}

// keyEvents converts a terminal key press. Pasted text yields one event per
// rune; keys with no counterpart yield none.
func keyEvents(msg tea.KeyMsg) []input.KeyEvent {
	var mods input.Modifiers
	if msg.Alt {
		mods |= input.ModAlt
	}
	key := func(k input.Key) []input.KeyEvent {
		return []input.KeyEvent{{Key: k, Modifiers: mods}}
	}
	switch msg.Type {
	case tea.KeyEnter:
		return key(input.KeyEnter)
	case tea.KeyEsc:
		return key(input.KeyEscape)
	case tea.KeyBackspace:
		return key(input.KeyBackspace)
	case tea.KeyDelete:
		return key(input.KeyDelete)
	case tea.KeyTab:
		return key(input.KeyTab)
	case tea.KeyShiftTab:
		return []input.KeyEvent{{Key: input.KeyTab, Modifiers: mods | input.ModShift}}
	case tea.KeySpace:
		return []input.KeyEvent{{Key: input.KeySpace, Rune: ' ', Modifiers: mods}}
	case tea.KeyLeft:
		return key(input.KeyLeft)
	case tea.KeyRight:
		return key(input.KeyRight)
	case tea.KeyUp:
		return key(input.KeyUp)
	case tea.KeyDown:
		return key(input.KeyDown)
	case tea.KeyHome:
		return key(input.KeyHome)
	case tea.KeyEnd:
		return key(input.KeyEnd)
	case tea.KeyPgUp:
		return key(input.KeyPageUp)
	case tea.KeyPgDown:
		return key(input.KeyPageDown)
	case tea.KeyRunes:
		out := make([]input.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev := input.RuneKey(r)
			ev.Modifiers = mods
			out = append(out, ev)
		}
		return out
	}
	return nil
}

// cell is one terminal cell of the frame. A zero rune marks the second
// half of a wide rune.
type cell struct {
	r      rune
	fg, bg graphics.Color
}

func (m *playModel) View() string {
	if m.cols == 0 || m.rows == 0 {
		return ""
	}
	grid := make([][]cell, m.rows)
	for y := range grid {
		grid[y] = make([]cell, m.cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', fg: widgets.TextColor, bg: backgroundColor}
		}
	}
	for _, w := range m.demo.canvas.DrawOrder() {
		m.paint(grid, w)
	}

	var sb strings.Builder
	for _, row := range grid {
		writeRow(&sb, row)
		sb.WriteByte('\n')
	}
	status := m.cells.Truncate(m.demo.status, float64(m.cols-2)*cellWidth, "…")
	sb.WriteString(statusStyle.Width(m.cols).Render(status))
	return sb.String()
}

// paint draws one widget clipped to its visible region: text for labels
// and text boxes, a filled block for every other geometry.
func (m *playModel) paint(grid [][]cell, w core.Widget) {
	if !w.HasGeometry() {
		return
	}
	region := w.VisibleRegion()
	if region.IsEmpty() {
		return
	}
	x0, y0, x1, y1 := m.cellSpan(region)

	switch w := w.(type) {
	case *widgets.Label:
		m.write(grid, w.Bounds(), region, w.Text(), w.Color())
		return
	case *widgets.TextBox:
		fill(grid, x0, y0, x1, y1, widgets.TextBoxColor)
		m.write(grid, w.Bounds(), region, w.Text(), widgets.TextColor)
		return
	}
	vertices := w.VertexData(false)
	if len(vertices) == 0 {
		return
	}
	fill(grid, x0, y0, x1, y1, vertices[0].Color)
}

// cellSpan returns the cells covered by b, clamped to the grid.
func (m *playModel) cellSpan(b graphics.Bounds) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(math.Floor(b.Min.X/cellWidth)), 0, m.cols)
	y0 = clampInt(int(math.Floor(b.Min.Y/cellHeight)), 0, m.rows)
	x1 = clampInt(int(math.Ceil(b.Max.X/cellWidth)), 0, m.cols)
	y1 = clampInt(int(math.Ceil(b.Max.Y/cellHeight)), 0, m.rows)
	return x0, y0, x1, y1
}

// write places s on the first cell row of bounds, cut at the right edge of
// region.
func (m *playModel) write(grid [][]cell, bounds, region graphics.Bounds, s string, fg graphics.Color) {
	row := int(math.Floor(bounds.Min.Y / cellHeight))
	if bounds.Min.Y < region.Min.Y || row < 0 || row >= m.rows {
		return
	}
	start := int(math.Floor(bounds.Min.X / cellWidth))
	s = m.cells.Truncate(s, region.Max.X-float64(start)*cellWidth, "")
	advances := m.cells.Advances(s)
	x := start
	i := 0
	for _, r := range s {
		span := int(advances[i] / cellWidth)
		i++
		if x >= 0 && x+span <= m.cols {
			grid[row][x].r, grid[row][x].fg = r, fg
			for k := 1; k < span; k++ {
				grid[row][x+k].r = 0
			}
		}
		x += span
	}
}

func fill(grid [][]cell, x0, y0, x1, y1 int, c graphics.Color) {
	a := c.Alpha()
	if a == 0 {
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			bg := &grid[y][x].bg
			if a >= 1 {
				*bg = c
			} else {
				*bg = bg.Lerp(c.WithAlpha(1), a)
			}
		}
	}
}

// writeRow renders a row with one style per run of equal colors.
func writeRow(sb *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			if c.r != 0 {
				run.WriteRune(c.r)
			}
		}
		style := lipgloss.NewStyle().
			Foreground(lipglossColor(row[start].fg)).
			Background(lipglossColor(row[start].bg))
		sb.WriteString(style.Render(run.String()))
		start = i
	}
}

func lipglossColor(c graphics.Color) lipgloss.Color {
	r, g, b, _ := c.NRGBA()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
