// Package sink presents rendered grids: as images, PNG files and the
// building blocks shared by the terminal, window and web sinks.
package sink

import (
	"image"

	mandel "github.com/marben/mandelgrid"
)

// Image converts g into an RGBA image.
// Grid y grows upwards while image rows grow downwards, so cell (x, y)
// lands on pixel (x, Height-1-y).
func Image(g mandel.ColorGrid) *image.RGBA {
	w, h := g.Width(), g.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x, col := range g {
		for y, c := range col {
			img.SetRGBA(x, h-1-y, c)
		}
	}
	return img
}
