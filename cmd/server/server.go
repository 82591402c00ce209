package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/palette"
	"github.com/marben/mandelgrid/render"
)

// main is the entry point for the Mandelbrot web viewer server.
// It renders one view in the background and streams progress and the finished frame to websocket viewers.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	port := flag.Int("port", 8080, "http port")
	static := flag.String("static", "./static", "directory with index.html and main.wasm")
	viewName := flag.String("view", "seahorse", "named view to render")
	grid := flag.Int("grid", 800, "samples per axis")
	maxIter := flag.Int("max", mandel.DefaultMaxIter, "escape iteration cap")
	palettePath := flag.String("palette", "", "palette file (default: bundled palette)")
	origins := flag.String("origins", "", "comma separated host patterns of other origins allowed to open the websocket, e.g. 'viewer.example.com,localhost:*'")
	flag.Parse()

	view, err := mandel.LookupView(*viewName)
	if err != nil {
		return err
	}
	cfg := mandel.Config{Center: view.Center, Side: view.Side, GridSize: *grid, MaxIter: *maxIter}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pal := palette.Default()
	if *palettePath != "" {
		if pal, err = palette.Load(*palettePath); err != nil {
			return err
		}
	}

	frames := newFrameStore(cfg.GridSize)
	renderer := render.Renderer{
		Palette:  pal,
		Workers:  runtime.NumCPU(),
		OnColumn: frames.columnFinished,
	}

	go func() {
		log.Printf("rendering %q: center %s side %v, %dx%d samples", *viewName, cfg.Center, cfg.Side, cfg.GridSize, cfg.GridSize)
		if err := renderer.RenderTo(context.Background(), cfg, frames); err != nil {
			log.Printf("render: %v", err)
			return
		}
		log.Printf("render finished")
	}()

	httpServer := webServer(frames, *port, *static, splitOrigins(*origins))
	log.Printf("mb server waiting for websocket viewers")
	if err := httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}

func splitOrigins(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
