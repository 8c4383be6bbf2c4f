// Package assets caches the sprite handles a frontend draws with.
// Resources load concurrently; the cache becomes ready exactly once, after every
// requested resource has loaded, and frontends wait for that before the first frame.
package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrUnknownResource is returned by loaders asked for an id they cannot produce.
var ErrUnknownResource = errors.New("assets: unknown resource")

// Loader produces the handle for one resource id.
type Loader[T any] func(ctx context.Context, id string) (T, error)

// Cache holds loaded handles by id. It is safe for concurrent use.
type Cache[T any] struct {
	load  Loader[T]
	limit int

	mu      sync.RWMutex
	items   map[string]T
	pending []func()

	ready     chan struct{}
	readyOnce sync.Once
}

// NewCache creates an empty cache. limit bounds the number of concurrent loads;
// values below 1 mean no bound.
func NewCache[T any](load Loader[T], limit int) *Cache[T] {
	return &Cache[T]{
		load:  load,
		limit: limit,
		items: make(map[string]T),
		ready: make(chan struct{}),
	}
}

// Load fetches every id that is not cached yet and marks the cache ready
// once all of them succeed. The first failure cancels the rest and is returned;
// the cache then stays not ready.
func (c *Cache[T]) Load(ctx context.Context, ids ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	if c.limit > 0 {
		g.SetLimit(c.limit)
	}

	for _, id := range ids {
		if _, ok := c.Get(id); ok {
			continue
		}
		g.Go(func() error {
			h, err := c.load(ctx, id)
			if err != nil {
				return fmt.Errorf("assets: load %q: %w", id, err)
			}
			c.mu.Lock()
			c.items[id] = h
			c.mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	c.markReady()
	return nil
}

func (c *Cache[T]) markReady() {
	c.readyOnce.Do(func() {
		c.mu.Lock()
		callbacks := c.pending
		c.pending = nil
		close(c.ready)
		c.mu.Unlock()

		for _, fn := range callbacks {
			fn()
		}
	})
}

// Get returns the handle for id.
func (c *Cache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.items[id]
	return h, ok
}

// Len returns the number of cached handles.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Ready returns a channel closed when the cache becomes ready.
func (c *Cache[T]) Ready() <-chan struct{} {
	return c.ready
}

// IsReady reports whether the cache has become ready.
func (c *Cache[T]) IsReady() bool {
	select {
	case <-c.ready:
		return true
	default:
		return false
	}
}

// OnReady registers fn to run once when the cache becomes ready.
// If it already is, fn runs immediately on the calling goroutine.
func (c *Cache[T]) OnReady(fn func()) {
	c.mu.Lock()
	if !c.IsReady() {
		c.pending = append(c.pending, fn)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}
