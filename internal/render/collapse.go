package render

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

// Collapse lets a single request render a given revision at a time. Requests that waited for the lock look
// in the cache again before rendering, so a burst of views of a freshly edited page renders it once.
type Collapse struct {
	Renderer view.Renderer
	Cache    view.RenderCache
	// Cacheable tells whether a render may be stored; outputs that are not are never shared.
	Cacheable func(rev domain.RevisionRef, opts domain.RenderOptions) bool
	locks     *mutexes.MutexMap
}

func NewCollapse(r view.Renderer, cache view.RenderCache, cacheable func(domain.RevisionRef, domain.RenderOptions) bool) *Collapse {
	locks := mutexes.MutexMap{}
	return &Collapse{
		Renderer:  r,
		Cache:     cache,
		Cacheable: cacheable,
		locks:     &locks,
	}
}

// Stores reports whether Render writes the render of rev to the cache, before releasing the lock.
func (c *Collapse) Stores(rev domain.RevisionRef, opts domain.RenderOptions) bool {
	return c.Cache != nil && c.Cacheable != nil && c.Cacheable(rev, opts)
}

func (c *Collapse) Render(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, error) {
	if !c.Stores(rev, opts) {
		return c.Renderer.Render(ctx, page, rev, opts)
	}

	unlock := c.locks.Lock(fmt.Sprintf("%d:%d:%s", page.ID, rev.ID, opts.Key()))
	defer unlock()

	out, err := c.Cache.Get(ctx, page, &rev, opts)
	if err == nil && out.RevisionID == rev.ID {
		log.Debug().Int64("revision", rev.ID).Msg("render done by another request")
		return out, nil
	} else if err != nil && !errors.Is(err, view.ErrNotFound) {
		log.Warn().Err(err).Int64("revision", rev.ID).Msg("render cache lookup failed")
	}

	out, err = c.Renderer.Render(ctx, page, rev, opts)
	if err != nil {
		return out, err
	}
	if err := c.Cache.Put(ctx, page, rev, opts, out); err != nil {
		log.Warn().Err(err).Int64("revision", rev.ID).Msg("failed to store render")
	}
	return out, nil
}
