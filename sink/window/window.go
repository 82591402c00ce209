//go:build cgo

// Package window shows rendered grids in a desktop window using ebiten.
package window

import (
	"context"
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/sink"
)

// Sink opens a window per accepted grid and blocks until it is closed
// (window close button, q or Esc).
// ebiten requires Accept to be called from the main goroutine.
type Sink struct {
	Title string
	Scale int // window pixels per grid cell; values < 1 mean 1
}

var _ mandel.Sink = Sink{}

func (s Sink) Accept(ctx context.Context, g mandel.ColorGrid) error {
	if g.Width() == 0 || g.Height() == 0 {
		return errors.New("window: empty grid")
	}
	scale := max(s.Scale, 1)

	ebiten.SetWindowTitle(s.Title)
	ebiten.SetWindowSize(g.Width()*scale, g.Height()*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(&viewer{ctx: ctx, frame: sink.Image(g)})
}

// viewer implements ebiten.Game for a single still frame.
type viewer struct {
	ctx   context.Context
	frame *image.RGBA
	img   *ebiten.Image
}

func (v *viewer) Update() error {
	if v.ctx.Err() != nil ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		b := v.frame.Bounds()
		v.img = ebiten.NewImage(b.Dx(), b.Dy())
		v.img.WritePixels(v.frame.Pix)
	}
	screen.DrawImage(v.img, nil)
}

// Layout keeps the logical screen at grid resolution; ebiten scales it to the window.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := v.frame.Bounds()
	return b.Dx(), b.Dy()
}
