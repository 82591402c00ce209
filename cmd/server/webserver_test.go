package main

import (
	"context"
	"image/color"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/sink"
)

func dialViewer(t *testing.T, ctx context.Context, frames *frameStore) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(websocketHandler(frames, nil))
	t.Cleanup(srv.Close)

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("websocket.Dial: %v", err)
	}
	t.Cleanup(func() { c.CloseNow() })
	c.SetReadLimit(1 << 20)
	return c
}

// readFrame reads updates until one carries the frame.
func readFrame(t *testing.T, ctx context.Context, c *websocket.Conn) (sink.Frame, []sink.Update) {
	t.Helper()
	var progress []sink.Update
	for {
		var u sink.Update
		if err := wsjson.Read(ctx, c, &u); err != nil {
			t.Fatalf("wsjson.Read: %v", err)
		}
		if u.Frame != nil {
			return *u.Frame, progress
		}
		progress = append(progress, u)
	}
}

func testGrid() mandel.ColorGrid {
	g := mandel.NewColorGrid(4, 4)
	g[0][0] = color.RGBA{R: 255, A: 255}
	return g
}

func TestViewerGetsFinishedFrame(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames := newFrameStore(4)
	if err := frames.Accept(ctx, testGrid()); err != nil {
		t.Fatal(err)
	}

	c := dialViewer(t, ctx, frames)
	f, _ := readFrame(t, ctx, c)
	if f.Width != 4 || f.Height != 4 {
		t.Fatalf("frame %dx%d", f.Width, f.Height)
	}
	img, err := f.Image()
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 3); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom-left = %v", got)
	}
}

func TestViewerWaitsForRender(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames := newFrameStore(4)
	c := dialViewer(t, ctx, frames)

	go func() {
		for x := 0; x < 2; x++ {
			frames.columnFinished(x)
		}
		time.Sleep(3 * progressInterval)
		frames.Accept(ctx, testGrid())
	}()

	f, progress := readFrame(t, ctx, c)
	if f.Width != 4 {
		t.Fatalf("frame width %d", f.Width)
	}
	if len(progress) == 0 {
		t.Fatalf("no progress updates before the frame")
	}
	for _, u := range progress {
		if u.Total != 4 || u.Done > 4 {
			t.Errorf("progress %+v", u)
		}
	}
}

func TestFrameStoreStatus(t *testing.T) {
	frames := newFrameStore(10)
	frames.columnFinished(3)
	frames.columnFinished(7)

	if s := frames.status(); s.Done != 2 || s.Total != 10 || s.Frame != nil {
		t.Fatalf("status=%+v", s)
	}
	select {
	case <-frames.ready():
		t.Fatal("ready before Accept")
	default:
	}

	frames.Accept(context.Background(), mandel.NewColorGrid(10, 10))
	<-frames.ready()
	if s := frames.status(); s.Done != 10 || s.Frame == nil {
		t.Fatalf("status=%+v", s)
	}
}

func TestViewerOrigins(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	frames := newFrameStore(4)
	if err := frames.Accept(ctx, testGrid()); err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(websocketHandler(frames, splitOrigins(" viewer.example.com, ")))
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	tests := []struct {
		name   string
		origin string
		ok     bool
	}{
		{"no origin", "", true},
		{"same origin", srv.URL, true},
		{"allowed origin", "https://viewer.example.com", true},
		{"foreign origin", "https://elsewhere.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.origin != "" {
				h.Set("Origin", tt.origin)
			}
			c, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{HTTPHeader: h})
			if tt.ok != (err == nil) {
				t.Fatalf("Expected accepted=%v, got err=%v", tt.ok, err)
			}
			if c != nil {
				c.CloseNow()
			}
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	if got := splitOrigins(""); len(got) != 0 {
		t.Errorf("Expected no patterns, got %q", got)
	}
	got := splitOrigins("a.example.com, localhost:*,,")
	if len(got) != 2 || got[0] != "a.example.com" || got[1] != "localhost:*" {
		t.Errorf("Expected [a.example.com localhost:*], got %q", got)
	}
}
