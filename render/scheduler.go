package render

import (
	"context"
	"sync"
)

// columnScheduler hands out grid columns to concurrent workers.
type columnScheduler struct {
	next  int
	total int

	onFinished func(x int)
	m          sync.Mutex
}

func newColumnScheduler(columns int, onFinished func(x int)) *columnScheduler {
	return &columnScheduler{
		total:      columns,
		onFinished: onFinished,
	}
}

func (cs *columnScheduler) popColumn() (x int, found bool) {
	cs.m.Lock()
	defer cs.m.Unlock()

	if cs.next >= cs.total {
		return 0, false
	}
	x = cs.next
	cs.next++
	return x, true
}

// columnFinished reports a done column. The hook runs under the lock so
// progress callbacks never overlap.
func (cs *columnScheduler) columnFinished(x int) {
	cs.m.Lock()
	defer cs.m.Unlock()

	if cs.onFinished != nil {
		cs.onFinished(x)
	}
}

// run starts workers goroutines, each calling work for popped columns until none are left
// or ctx is done.
func (cs *columnScheduler) run(ctx context.Context, workers int, work func(x int)) {
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				x, found := cs.popColumn()
				if !found {
					return
				}
				work(x)
				cs.columnFinished(x)
			}
		}()
	}
	wg.Wait()
}
