package mandel

import (
	"context"
	"image/color"
)

// ColorGrid is a rendered region indexed as grid[x][y].
// Cell (0,0) is the bottom-left corner of the region, x grows right and y grows up.
type ColorGrid [][]color.RGBA

// NewColorGrid allocates a w×h grid.
func NewColorGrid(w, h int) ColorGrid {
	g := make(ColorGrid, w)
	for x := range g {
		g[x] = make([]color.RGBA, h)
	}
	return g
}

func (g ColorGrid) Width() int { return len(g) }

func (g ColorGrid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Sink presents a rendered grid.
// Implementations must not modify the grid they are handed.
type Sink interface {
	Accept(ctx context.Context, g ColorGrid) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, g ColorGrid) error

func (f SinkFunc) Accept(ctx context.Context, g ColorGrid) error { return f(ctx, g) }
