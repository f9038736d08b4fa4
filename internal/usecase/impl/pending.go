package impl

import (
	"sync"

	domainerrors "storefront/internal/domain/errors"
)

// itemGuard serializes cart mutations per line item. A mutation acquires
// the item's slot before touching the network and releases it when the
// call settles; a second mutation on a busy item fails immediately.
type itemGuard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func newItemGuard() *itemGuard {
	return &itemGuard{
		inflight: make(map[string]struct{}),
	}
}

// acquire claims the slot for key or reports the item busy.
func (g *itemGuard) acquire(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inflight[key]; busy {
		return domainerrors.ErrItemBusy
	}
	g.inflight[key] = struct{}{}

	return nil
}

func (g *itemGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inflight, key)
}
