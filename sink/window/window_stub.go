//go:build !cgo

package window

import (
	"context"
	"errors"

	mandel "github.com/marben/mandelgrid"
)

// Sink is unavailable without cgo; Accept always fails.
type Sink struct {
	Title string
	Scale int
}

var _ mandel.Sink = Sink{}

func (Sink) Accept(context.Context, mandel.ColorGrid) error {
	return errors.New("window sink requires cgo (build/run with CGO_ENABLED=1)")
}
