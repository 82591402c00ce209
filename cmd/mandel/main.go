// mandel renders the Mandelbrot set over a square region of the complex plane
// and hands the colored grid to a PNG file, the terminal or a desktop window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"time"

	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/palette"
	"github.com/marben/mandelgrid/render"
	"github.com/marben/mandelgrid/sink"
	"github.com/marben/mandelgrid/sink/term"
	"github.com/marben/mandelgrid/sink/window"
)

var (
	navy = color.RGBA{R: 0, G: 7, B: 100, A: 255}
	gold = color.RGBA{R: 255, G: 170, B: 0, A: 255}
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("run: %v", err)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if opts.listViews {
		for _, name := range mandel.ViewNames() {
			v, _ := mandel.LookupView(name)
			fmt.Printf("%-20s center %s  side %v\n", name, v.Center, v.Side)
		}
		return nil
	}

	pal, err := loadPalette(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderer := render.Renderer{Palette: pal, Workers: opts.workers}

	var s mandel.Sink
	switch opts.sink {
	case "png":
		s = sink.PNG{Path: opts.out}
	case "window":
		s = window.Sink{Title: fmt.Sprintf("mandel %s side %v", opts.cfg.Center, opts.cfg.Side)}
	case "term":
		ts, err := term.Open()
		if err != nil {
			return err
		}
		defer ts.Close()
		s = ts
	}

	// the terminal belongs to tcell from here on, keep it free of log lines
	if opts.sink != "term" {
		renderer.OnColumn = progress(opts.cfg.GridSize)
		log.Printf("rendering center %s side %v: %dx%d samples, max %d iterations, %d colors",
			opts.cfg.Center, opts.cfg.Side, opts.cfg.GridSize, opts.cfg.GridSize, opts.cfg.MaxIter, len(pal))
	}

	start := time.Now()
	if err := renderer.RenderTo(ctx, opts.cfg, s); err != nil {
		return err
	}

	switch opts.sink {
	case "png":
		log.Printf("rendered in %s, saved to %q", time.Since(start).Round(time.Millisecond), opts.out)
	case "window":
		log.Printf("window closed")
	}
	return nil
}

func loadPalette(opts options) (palette.Palette, error) {
	switch {
	case opts.rainbow > 0:
		return palette.Rainbow(opts.rainbow)
	case opts.gradient > 0:
		return palette.Gradient(opts.gradient, navy, gold)
	case opts.palettePath != "":
		return palette.Load(opts.palettePath)
	}
	return palette.Default(), nil
}

// progress returns an OnColumn hook logging every further tenth of the columns.
func progress(columns int) func(x int) {
	done, next := 0, 10
	return func(int) {
		done++
		if pct := done * 100 / columns; pct >= next {
			log.Printf("finished: %d%%", pct)
			next = pct/10*10 + 10
		}
	}
}
