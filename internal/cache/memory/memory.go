// Package memory is an in-process render cache with a bounded number of entries.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/sidereusnuntius/pageview/internal/cache"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache
	// pages indexes the keys of every page, for purging.
	pages map[int64]map[string]struct{}
	ttl   time.Duration
	now   func() time.Time
}

func New(maxEntries int, ttl time.Duration) *Cache {
	c := &Cache{
		entries: lru.New(maxEntries),
		pages:   map[int64]map[string]struct{}{},
		ttl:     ttl,
		now:     time.Now,
	}
	c.entries.OnEvicted = c.evicted
	return c
}

func (c *Cache) Get(_ context.Context, page domain.PageRef, rev *domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cache.Key(page, rev, opts)
	v, ok := c.entries.Get(key)
	if !ok {
		return domain.RenderedOutput{}, view.ErrNotFound
	}

	out := v.(domain.RenderedOutput)
	// Latest entries are the last resort when rendering fails, so they are handed out even when expired.
	if rev != nil && !out.ExpiresAt.IsZero() && !c.now().Before(out.ExpiresAt) {
		c.entries.Remove(key)
		return domain.RenderedOutput{}, view.ErrNotFound
	}
	return out, nil
}

func (c *Cache) Put(_ context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions, out domain.RenderedOutput) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if out.ExpiresAt.IsZero() && c.ttl > 0 {
		out.ExpiresAt = c.now().Add(c.ttl)
	}
	out.PageID = page.ID

	for _, key := range cache.Keys(page, rev, opts) {
		c.entries.Add(key, out)
		keys, ok := c.pages[page.ID]
		if !ok {
			keys = map[string]struct{}{}
			c.pages[page.ID] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

func (c *Cache) Purge(_ context.Context, page domain.PageRef) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.pages[page.ID] {
		c.entries.Remove(key)
	}
	delete(c.pages, page.ID)
	return nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// evicted runs with mu held, from within Add and Remove.
func (c *Cache) evicted(key lru.Key, value interface{}) {
	out := value.(domain.RenderedOutput)
	keys := c.pages[out.PageID]
	delete(keys, key.(string))
	if len(keys) == 0 {
		delete(c.pages, out.PageID)
	}
}
