//go:build js && wasm

// webclient.go is a WASM web viewer for the Mandelbrot server.
// It connects over websocket, shows render progress and draws the finished frame on a canvas.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/marben/mandelgrid/sink"
)

// maxFrameBytes bounds a single websocket message; a 2000×2000 frame is 16 MB of pixels before base64.
const maxFrameBytes = 64 << 20

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to server via WebSocket
	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	ctx := context.Background()
	conn, _, err := websocket.Dial(ctx, websocketUrl, nil)
	if err != nil {
		logFatalf("websocket.Dial: %v", err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(maxFrameBytes)
	logScreenf("WebSocket connected.")

	initCanvas(400, 400, "#3a3a6e")

	// Step 3: Follow progress until the frame arrives
	f, err := awaitFrame(ctx, conn)
	if err != nil {
		logFatalf("awaitFrame: %v", err)
	}
	img, err := f.Image()
	if err != nil {
		logFatalf("frame: %v", err)
	}
	logScreenf("Dimensions: %dx%d", f.Width, f.Height)
	displayImage(img)
	conn.Close(websocket.StatusNormalClosure, "")

	// Step 4: Block main goroutine to keep WASM running
	select {}
}

// awaitFrame reads progress updates into the HUD and returns the frame once the server sends it.
func awaitFrame(ctx context.Context, conn *websocket.Conn) (*sink.Frame, error) {
	for {
		var u sink.Update
		if err := wsjson.Read(ctx, conn, &u); err != nil {
			return nil, fmt.Errorf("wsjson.Read: %w", err)
		}
		hudSetProgress(u.Done, u.Total)
		if u.Frame != nil {
			return u.Frame, nil
		}
	}
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetProgress updates the HUD with finished and total grid columns.
func hudSetProgress(done, total int) {
	doc := js.Global().Get("document")
	doc.Call("getElementById", "columnsDone").Set("textContent", done)
	doc.Call("getElementById", "columnsTotal").Set("textContent", total)
}
