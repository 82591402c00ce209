package sink

import (
	"context"
	"fmt"
	"image/png"
	"os"

	mandel "github.com/marben/mandelgrid"
)

// PNG writes each accepted grid to the file at Path, replacing it.
type PNG struct {
	Path string
}

var _ mandel.Sink = PNG{}

func (s PNG) Accept(ctx context.Context, g mandel.ColorGrid) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(f, Image(g)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", s.Path, err)
	}
	return nil
}
