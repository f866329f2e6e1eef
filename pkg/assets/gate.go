package assets

import (
	"context"
	"sync/atomic"
)

// Gate blocks an export until every image referenced by the rendered
// document has finished loading. Images already complete count immediately;
// pending ones count on their load callback; with zero images the gate is
// open from the start. The count must reach the exact total before release.
type Gate struct {
	total  int
	loaded int32
	open   chan struct{}
	images []*Image
}

// NewGate builds a gate over the given images, registering load callbacks
// for any that are still pending.
func NewGate(images []*Image) *Gate {
	g := &Gate{total: len(images), open: make(chan struct{}), images: images}
	if g.total == 0 {
		close(g.open)
		return g
	}
	for _, img := range images {
		img.OnLoad(g.count)
	}
	return g
}

func (g *Gate) count() {
	if int(atomic.AddInt32(&g.loaded, 1)) == g.total {
		close(g.open)
	}
}

// Wait blocks until all images have completed or the context is canceled.
// It returns the first image load error, if any.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.open:
	case <-ctx.Done():
		return ctx.Err()
	}
	for _, img := range g.images {
		if err := img.Err(); err != nil {
			return err
		}
	}
	return nil
}
