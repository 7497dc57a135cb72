package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-drift/slate/pkg/canvas"
	"github.com/go-drift/slate/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Rasterise the demo tree to a PNG",
		Long: `Build the demo widget tree, rasterise one frame with the software
renderer and write it as a PNG.

Flags:
  -o FILE           Output file (default: slate.png)
  --scroll PERCENT  Scroll the demo list before rendering (0 to 1)
  --lines           Render outline geometry instead of filled quads`,
		Usage: "slate render [-o FILE] [--scroll PERCENT] [--lines]",
		Run:   runRender,
	})
}

type renderOptions struct {
	output string
	scroll float64
	lines  bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{output: "slate.png"}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file path", args[i])
			}
			opts.output = args[i+1]
			i++
		case "--scroll":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scroll requires a percent")
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil {
				return opts, fmt.Errorf("invalid --scroll value %q: %w", args[i+1], err)
			}
			opts.scroll = v
			i++
		case "--lines":
			opts.lines = true
		default:
			return opts, fmt.Errorf("unknown flag: %s", args[i])
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	s, err := loadSettings()
	if err != nil {
		return err
	}

	r := raster.New(backgroundColor)
	canvasOpts := canvas.OptionsFrom(s)
	canvasOpts.Renderer = r
	canvasOpts.LineMode = opts.lines
	d := newDemo(canvasOpts, nil)
	defer d.close()
	if opts.scroll != 0 {
		d.list.Scroll(opts.scroll)
	}
	if err := d.canvas.Flush(); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	dim := d.canvas.ScreenDimension()
	fmt.Printf("Rendered %dx%d frame with %d widgets to %s\n",
		int(dim.Width), int(dim.Height), r.Uploaded(), opts.output)
	return nil
}
