package render

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoChart is returned when a capture is requested for a block that never
// registered a chart (non-chartable or unknown block).
var ErrNoChart = errors.New("render: no chart registered for block")

// Bridge coordinates off-screen chart captures for one export pass. Charts
// are registered up front from the answer snapshot, then captured lazily:
// one render in flight at a time, each at most once, each bounded by a
// timeout so a stuck render degrades that block only.
type Bridge struct {
	rasterizer Rasterizer
	timeout    time.Duration

	mu       sync.Mutex
	charts   map[string]*Chart
	captured map[string]captureResult
}

type captureResult struct {
	data []byte
	err  error
}

func NewBridge(rasterizer Rasterizer, timeout time.Duration) *Bridge {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Bridge{
		rasterizer: rasterizer,
		timeout:    timeout,
		charts:     make(map[string]*Chart),
		captured:   make(map[string]captureResult),
	}
}

// Register mounts a chart for the given block id
func (b *Bridge) Register(blockID string, chart *Chart) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.charts[blockID] = chart
}

// Capture returns the block's bitmap, rendering it on first request. The
// result (success or failure) is memoized for the rest of the pass.
func (b *Bridge) Capture(ctx context.Context, blockID string) ([]byte, error) {
	b.mu.Lock()
	if res, ok := b.captured[blockID]; ok {
		b.mu.Unlock()
		return res.data, res.err
	}
	chart, ok := b.charts[blockID]
	if !ok {
		b.mu.Unlock()
		return nil, ErrNoChart
	}
	b.mu.Unlock()

	captureCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	type outcome struct {
		data []byte
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		data, err := b.rasterizer.Capture(captureCtx, chart)
		done <- outcome{data: data, err: err}
	}()

	var res captureResult
	select {
	case o := <-done:
		res = captureResult{data: o.data, err: o.err}
	case <-captureCtx.Done():
		res = captureResult{err: captureCtx.Err()}
	}

	b.mu.Lock()
	b.captured[blockID] = res
	b.mu.Unlock()
	return res.data, res.err
}
