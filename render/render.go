// Package render turns a mandel.Config into a colored grid: it samples the
// region, runs the escape-time iteration per sample and maps counts onto a palette.
package render

import (
	"context"
	"fmt"

	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/palette"
)

// Renderer renders escape-time images. The zero value lacks a palette and is not usable.
type Renderer struct {
	Palette palette.Palette

	// Workers is the number of goroutines evaluating columns; values <= 1 render sequentially.
	// The output does not depend on it.
	Workers int

	// OnColumn, if set, is called after column x has been colored.
	// Calls never overlap, but their order is unspecified when Workers > 1.
	OnColumn func(x int)
}

// Render evaluates every cell of the grid described by cfg.
func (r Renderer) Render(cfg mandel.Config) (mandel.ColorGrid, error) {
	return r.render(context.Background(), cfg)
}

// RenderTo renders cfg and hands the result to sink.
// It stops between columns once ctx is done and returns an error wrapping ctx.Err() without calling sink.
func (r Renderer) RenderTo(ctx context.Context, cfg mandel.Config, sink mandel.Sink) error {
	g, err := r.render(ctx, cfg)
	if err != nil {
		return err
	}
	if err := sink.Accept(ctx, g); err != nil {
		return fmt.Errorf("sink.Accept: %w", err)
	}
	return nil
}

func (r Renderer) render(ctx context.Context, cfg mandel.Config) (mandel.ColorGrid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(r.Palette) == 0 {
		return nil, fmt.Errorf("%w: palette is empty", mandel.ErrInvalidArgument)
	}

	samples, err := SampleGrid(cfg.Center, cfg.Side, cfg.GridSize)
	if err != nil {
		return nil, err
	}

	out := mandel.NewColorGrid(cfg.GridSize, cfg.GridSize)
	colorColumn := func(x int) {
		for y, z0 := range samples[x] {
			out[x][y] = r.Palette.Color(EscapeTime(z0, cfg.MaxIter), cfg.MaxIter)
		}
	}

	if r.Workers <= 1 {
		for x := range samples {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("render: %w", err)
			}
			colorColumn(x)
			if r.OnColumn != nil {
				r.OnColumn(x)
			}
		}
		return out, nil
	}

	// Each worker writes only the columns it popped, so out needs no locking.
	newColumnScheduler(len(samples), r.OnColumn).run(ctx, r.Workers, colorColumn)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out, nil
}
