package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	mandel "github.com/marben/mandelgrid"
)

// Gradient returns n colors blended from `from` to `to` in HCL space.
func Gradient(n int, from, to color.RGBA) (Palette, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: gradient needs at least 1 color, got %d", mandel.ErrInvalidArgument, n)
	}

	c1 := toColorful(from)
	c2 := toColorful(to)

	p := make(Palette, n)
	for i := range p {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		p[i] = fromColorful(c1.BlendHcl(c2, t).Clamped())
	}
	return p, nil
}

// Rainbow returns n-1 hues spread around the color wheel followed by black,
// so points that never escape stay black.
func Rainbow(n int) (Palette, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: rainbow needs at least 2 colors, got %d", mandel.ErrInvalidArgument, n)
	}

	p := make(Palette, n)
	hues := n - 1
	for i := 0; i < hues; i++ {
		p[i] = fromColorful(colorful.Hsv(360*float64(i)/float64(hues), 0.85, 1.0))
	}
	p[n-1] = color.RGBA{A: 255}
	return p, nil
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
