package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// progressInterval is how often viewers get progress updates while the render runs.
const progressInterval = 250 * time.Millisecond

// webServer creates server serving files in staticDir
// along with the websocket endpoint streaming the render to viewers
func webServer(frames *frameStore, port int, staticDir string, originPatterns []string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(frames, originPatterns))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return srv
}

// websocketHandler sends progress updates to the viewer until the frame is
// ready, then sends the update carrying the frame and closes the connection.
// Same-origin viewers are always accepted, cross-origin ones only when their host matches originPatterns.
func websocketHandler(frames *frameStore, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		log.Printf("got connection from: %s", r.RemoteAddr)
		ctx := r.Context()

		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-frames.ready():
				if err := wsjson.Write(ctx, c, frames.status()); err != nil {
					log.Printf("send frame to %s: %v", r.RemoteAddr, err)
					return
				}
				c.Close(websocket.StatusNormalClosure, "frame sent")
				return
			case <-ticker.C:
				if err := wsjson.Write(ctx, c, frames.status()); err != nil {
					log.Printf("send progress to %s: %v", r.RemoteAddr, err)
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}
