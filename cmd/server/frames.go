package main

import (
	"context"
	"sync"

	mandel "github.com/marben/mandelgrid"
	"github.com/marben/mandelgrid/sink"
)

// frameStore is the render's sink and tracks its progress for viewers.
// ctx is canceled once the frame is available.
type frameStore struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	totalColumns    int
	finishedColumns int
	frame           *sink.Frame
	m               sync.Mutex
}

var _ mandel.Sink = (*frameStore)(nil)

func newFrameStore(columns int) *frameStore {
	ctx, cancel := context.WithCancel(context.Background())
	return &frameStore{
		ctx:          ctx,
		ctxCancel:    cancel,
		totalColumns: columns,
	}
}

// columnFinished is the renderer's OnColumn hook.
func (fs *frameStore) columnFinished(int) {
	fs.m.Lock()
	defer fs.m.Unlock()
	fs.finishedColumns++
}

// Accept implements mandel.Sink.
func (fs *frameStore) Accept(_ context.Context, g mandel.ColorGrid) error {
	f := sink.NewFrame(g)

	fs.m.Lock()
	fs.frame = &f
	fs.finishedColumns = fs.totalColumns
	fs.m.Unlock()

	fs.ctxCancel()
	return nil
}

// ready is closed once the frame is available.
func (fs *frameStore) ready() <-chan struct{} {
	return fs.ctx.Done()
}

// status returns the current progress, including the frame once it exists.
func (fs *frameStore) status() sink.Update {
	fs.m.Lock()
	defer fs.m.Unlock()
	return sink.Update{
		Done:  fs.finishedColumns,
		Total: fs.totalColumns,
		Frame: fs.frame,
	}
}
