package term

import (
	"context"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	mandel "github.com/marben/mandelgrid"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func newScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	// Init resets the simulated size
	screen.SetSize(w, h)
	if cw, ch := screen.Size(); cw != w || ch != h {
		t.Fatalf("Expected screen %dx%d, got %dx%d", w, h, cw, ch)
	}
	t.Cleanup(screen.Fini)
	return screen
}

func TestAcceptDrawsScaledGrid(t *testing.T) {
	screen := newScreen(t, 10, 5)

	// 2×2 grid: red bottom-left, green top-left, blue bottom-right, white top-right
	g := mandel.NewColorGrid(2, 2)
	g[0][0] = red
	g[0][1] = green
	g[1][0] = blue
	g[1][1] = white

	s := &Sink{Screen: screen}
	if err := s.Accept(context.Background(), g); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	tests := []struct {
		name   string
		x, y   int
		fg, bg color.RGBA
	}{
		{"top-left", 0, 0, green, green},
		{"bottom-left", 0, 4, red, red},
		{"top-right", 9, 0, white, white},
		{"bottom-right", 9, 4, blue, blue},
		{"left edge, boundary row", 4, 2, green, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mainc, _, style, _ := screen.GetContent(tt.x, tt.y)
			if mainc != halfBlock {
				t.Errorf("Expected character %c, got %c", halfBlock, mainc)
			}
			fg, bg, _ := style.Decompose()
			if fg != tcellColor(tt.fg) {
				t.Errorf("Expected foreground %v, got %v", tcellColor(tt.fg), fg)
			}
			if bg != tcellColor(tt.bg) {
				t.Errorf("Expected background %v, got %v", tcellColor(tt.bg), bg)
			}
		})
	}
}

func TestAcceptCanceled(t *testing.T) {
	screen := newScreen(t, 4, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Sink{Screen: screen, Wait: true}
	if err := s.Accept(ctx, mandel.NewColorGrid(2, 2)); err == nil {
		t.Fatal("expected context error")
	}
}

func TestIsQuitKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuitKey(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
