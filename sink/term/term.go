// Package term draws rendered grids on a terminal using tcell.
// Every cell shows two grid samples stacked vertically with the upper half block glyph.
package term

import (
	"context"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/marben/mandelgrid"
)

const halfBlock = '▀'

// Sink draws onto an initialized screen. It never initializes or finalizes Screen itself.
type Sink struct {
	Screen tcell.Screen

	// Wait keeps Accept on screen until a quit key (q, Esc, Enter, Ctrl-C) is pressed,
	// redrawing on resize.
	Wait bool
}

var _ mandel.Sink = (*Sink)(nil)

// Open initializes the terminal and returns a waiting Sink on it. Close restores the terminal.
func Open() (*Sink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen.Init: %w", err)
	}
	return &Sink{Screen: screen, Wait: true}, nil
}

func (s *Sink) Close() {
	s.Screen.Fini()
}

func (s *Sink) Accept(ctx context.Context, g mandel.ColorGrid) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.draw(g)
	if !s.Wait {
		return nil
	}

	for {
		switch ev := s.Screen.PollEvent().(type) {
		case nil:
			// screen finalized underneath us
			return nil
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			s.draw(g)
		}
	}
}

// draw scales g to the largest square that fits the screen, two samples per cell.
func (s *Sink) draw(g mandel.ColorGrid) {
	s.Screen.Clear()

	cols, rows := s.Screen.Size()
	size := min(cols, 2*rows)
	gw, gh := g.Width(), g.Height()
	if size <= 0 || gw == 0 || gh == 0 {
		s.Screen.Show()
		return
	}

	// sample returns the grid color under pixel (px, py), py counted from the top.
	sample := func(px, py int) tcell.Color {
		x := px * gw / size
		y := gh - 1 - py*gh/size
		return tcellColor(g[x][y])
	}

	for px := 0; px < size; px++ {
		for py := 0; py < size; py += 2 {
			st := tcell.StyleDefault.Foreground(sample(px, py))
			if py+1 < size {
				st = st.Background(sample(px, py+1))
			}
			s.Screen.SetContent(px, py/2, halfBlock, nil, st)
		}
	}
	s.Screen.Show()
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
