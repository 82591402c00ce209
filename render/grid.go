package render

import (
	"fmt"
	"math"

	mandel "github.com/marben/mandelgrid"
)

// SampleGrid returns the n×n sample points covering the square of side length
// side centered at center, indexed as grid[x][y].
//
// grid[0][0] is the bottom-left corner center-side/2, grid[n-1][n-1] the top-right
// corner center+side/2, neighbours are side/(n-1) apart.
func SampleGrid(center mandel.Complex, side float64, n int) ([][]mandel.Complex, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: grid size must be at least 2, got %d", mandel.ErrInvalidArgument, n)
	}
	if math.IsNaN(side) || math.IsInf(side, 0) || side <= 0 {
		return nil, fmt.Errorf("%w: sidelength must be a positive number, got %v", mandel.ErrInvalidArgument, side)
	}

	x0 := center.Re - side/2
	y0 := center.Im - side/2
	den := float64(n - 1)

	grid := make([][]mandel.Complex, n)
	for x := range grid {
		col := make([]mandel.Complex, n)
		re := x0 + side*float64(x)/den
		for y := range col {
			col[y] = mandel.Complex{
				Re: re,
				Im: y0 + side*float64(y)/den,
			}
		}
		grid[x] = col
	}
	return grid, nil
}
