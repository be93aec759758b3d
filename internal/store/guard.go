package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/serroba/hop/internal/redirect"
)

// guard serializes access to a single collection. A panic inside a critical
// section poisons the guard: the lock is still released, and every later
// acquisition fails with redirect.ErrStorePoisoned.
type guard struct {
	mu    sync.RWMutex
	cause atomic.Pointer[string]
}

func (g *guard) write(fn func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.run(fn)
}

func (g *guard) read(fn func()) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.run(fn)
}

func (g *guard) run(fn func()) (err error) {
	if perr := g.poisoned(); perr != nil {
		return perr
	}

	defer func() {
		if r := recover(); r != nil {
			cause := fmt.Sprint(r)
			g.cause.CompareAndSwap(nil, &cause)
			err = fmt.Errorf("%w: %s", redirect.ErrStorePoisoned, cause)
		}
	}()

	fn()

	return nil
}

func (g *guard) poisoned() error {
	if cause := g.cause.Load(); cause != nil {
		return fmt.Errorf("%w: %s", redirect.ErrStorePoisoned, *cause)
	}

	return nil
}

// Ping reports whether the component is still usable.
func (g *guard) Ping(_ context.Context) error {
	return g.poisoned()
}
