package null

import (
	"context"
	"maps"
	"sync"

	"github.com/labi-le/clipmon/pkg/clipboard/eventful"
	"github.com/labi-le/clipmon/pkg/format"
)

var _ eventful.Eventful = &Clipboard{}

// Clipboard is an in-memory clipboard. Every Write is delivered to the watcher.
type Clipboard struct {
	mu      sync.RWMutex
	current format.Snapshot
	data    chan format.Snapshot
}

func NewNull() *Clipboard {
	return &Clipboard{data: make(chan format.Snapshot), current: format.Snapshot{}}
}

func (n *Clipboard) Watch(ctx context.Context, fn eventful.Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-n.data:
			fn(eventful.NewEvent(snap))
		}
	}
}

// Write replaces the clipboard content and blocks until the watcher receives it.
func (n *Clipboard) Write(ctx context.Context, snap format.Snapshot) error {
	snap = maps.Clone(snap)

	n.mu.Lock()
	n.current = snap
	n.mu.Unlock()

	select {
	case n.data <- snap:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Clipboard) Snapshot() format.DataObject {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.current
}
