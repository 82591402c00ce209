package sink

import (
	"fmt"
	"image"

	mandel "github.com/marben/mandelgrid"
)

// Frame is a rendered grid as top-down RGBA pixels, the form sent to web viewers.
type Frame struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Pix    []byte `json:"pix"` // 4 bytes per pixel, row-major from the top-left
}

// NewFrame converts g with the same orientation as Image.
func NewFrame(g mandel.ColorGrid) Frame {
	img := Image(g)
	return Frame{Width: g.Width(), Height: g.Height(), Pix: img.Pix}
}

// Image wraps the frame's pixels without copying them.
func (f Frame) Image() (*image.RGBA, error) {
	if f.Width < 0 || f.Height < 0 || len(f.Pix) != 4*f.Width*f.Height {
		return nil, fmt.Errorf("frame %dx%d carries %d bytes", f.Width, f.Height, len(f.Pix))
	}
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}, nil
}

// Update reports render progress to a viewer. The last update of a render carries the Frame.
type Update struct {
	Done  int    `json:"done"`  // columns finished
	Total int    `json:"total"` // columns in the grid
	Frame *Frame `json:"frame,omitempty"`
}
