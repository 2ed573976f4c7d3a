package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Collaborators are the services the controller orchestrates. Cache, Diff, Pages, Purger, Recorder and
// Hooks are optional.
type Collaborators struct {
	Store    RevisionStore
	Pages    PageStore
	Cache    RenderCache
	Renderer Renderer
	Diff     DiffRenderer
	Purger   Purger
	Recorder Recorder
	Hooks    Hooks
}

// StoringRenderer is a Renderer that writes some of its renders to the render cache itself. The controller
// does not store those a second time.
type StoringRenderer interface {
	Renderer
	Stores(rev domain.RevisionRef, opts domain.RenderOptions) bool
}

// Controller handles page views. It keeps no state between requests; everything a request produces is
// returned to the caller.
type Controller struct {
	Resolver *Resolver
	Selector *Selector
	Gate     Gate
	Cache    RenderCache
	Renderer Renderer
	Diff     DiffRenderer
	Pages    PageStore
	Purger   Purger
	Recorder Recorder
	// StaleMaxAge is the cache lifetime of responses built from stale or degraded output.
	StaleMaxAge time.Duration
	Now         func() time.Time
}

func New(cfg config.Configuration, c Collaborators) *Controller {
	links := Links{Base: cfg.Url}
	recorder := c.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Controller{
		Resolver: NewResolver(c.Store, links),
		Selector: &Selector{
			Cache:          c.Cache,
			Hooks:          c.Hooks,
			Links:          links,
			Recorder:       recorder,
			Policy:         domain.ParseRobotPolicy(cfg.DefaultRobotPolicy),
			Language:       cfg.Language,
			MaxAge:         cfg.CacheMaxAge,
			NoCache:        c.Cache == nil,
			CachePrintable: cfg.CachePrintable,
		},
		Cache:       c.Cache,
		Renderer:    c.Renderer,
		Diff:        c.Diff,
		Pages:       c.Pages,
		Purger:      c.Purger,
		Recorder:    recorder,
		StaleMaxAge: cfg.StaleMaxAge,
	}
}

// View produces the plan for one page view. Failures end up in the plan, never as a panic or an error
// the caller has to deal with: the worst outcome is a PlanError.
func (c *Controller) View(ctx context.Context, req domain.ViewRequest, auth Authority) (plan domain.OutputPlan) {
	defer func() {
		c.recorder().Plan(plan.Kind)
		e := log.Debug()
		if plan.Err != nil {
			e = log.Error().Err(plan.Err)
		}
		e.Str("title", req.Page.Title).
			Int64("oldid", req.OldID).
			Str("plan", plan.Kind.String()).
			Msg("page view")
	}()

	resolved, err := c.Resolver.Resolve(ctx, req.Page, req.OldID, req.Direction)
	if err != nil {
		return c.errorPlan(req.Page, fmt.Errorf("resolving revision: %w", err))
	}

	if resolved.Kind == domain.ViewRedirect {
		if !resolved.HistoryEnd || !req.NoRedirect {
			return domain.OutputPlan{
				Kind: domain.PlanRedirect,
				Page: resolved.Page,
				URL:  resolved.URL,
			}
		}
		// Only the redirect at the end of the history carries the marker; show the revision instead of
		// sending the reader back to it.
		resolved, err = c.Resolver.Resolve(ctx, req.Page, req.OldID, domain.DirectionNone)
		if err != nil {
			return c.errorPlan(req.Page, fmt.Errorf("resolving revision: %w", err))
		}
	}

	if req.Diff {
		return c.ShowDiffPage(ctx, req, auth)
	}

	plan, err = c.Selector.SelectOutput(ctx, req, resolved, auth)
	if err != nil {
		return c.errorPlan(resolved.Page, err)
	}

	if plan.Kind != domain.PlanRenderFresh {
		return plan
	}

	rendered := c.Render(ctx, plan.Page, *plan.Revision, plan.Options, plan.CacheWrite)
	if rendered.Kind == domain.PlanError {
		return rendered
	}
	rendered.OldRevisionHeader = plan.OldRevisionHeader
	if plan.Banner.Kind != domain.BannerNone {
		rendered.Banner = plan.Banner
	}
	rendered.Meta.Robots = plan.Meta.Robots
	if !rendered.Meta.Stale {
		rendered.Meta.MaxAge = plan.Meta.MaxAge
	}
	return rendered
}

// ShowDiffPage renders the differences between two revisions, and unless DiffOnly is set, the newer one
// below them.
func (c *Controller) ShowDiffPage(ctx context.Context, req domain.ViewRequest, auth Authority) domain.OutputPlan {
	opts := req.Options(c.Selector.Language)
	if c.Diff == nil {
		return c.errorPlan(req.Page, fmt.Errorf("%w: no diff renderer", ErrMisconfigured))
	}

	resolved, err := c.Resolver.ResolveDiff(ctx, req.Page, req.OldID, req.DiffNewID)
	if err != nil {
		return c.errorPlan(req.Page, fmt.Errorf("resolving diff: %w", err))
	}
	if resolved.Kind == domain.ViewMissing {
		return c.Selector.MissingPlan(resolved, opts)
	}

	page := resolved.Page
	newRev := *resolved.Revision
	var banner domain.Banner
	for _, rev := range []*domain.RevisionRef{resolved.OldRevision, &newRev} {
		if rev == nil {
			continue
		}
		if outcome := c.Gate.CheckFetch(ctx, page, *rev, auth); !outcome.OK() {
			return c.Selector.FetchErrorPlan(outcome, opts)
		}
		d := c.Gate.CheckDisplay(ctx, *rev, auth, req.Unhide)
		if !d.Allowed {
			return domain.OutputPlan{
				Kind:     domain.PlanRevisionHidden,
				Page:     page,
				Revision: rev,
				Banner:   d.Banner(c.Selector.Links.Unhide(page, req)),
				Options:  opts,
				Meta: domain.Meta{
					RevisionID: rev.ID,
					Robots:     domain.PolicyNoIndexNoFollow,
				},
			}
		}
		if d.Mode == DisplayViewingDeleted {
			banner = d.Banner("")
		}
	}

	out, err := c.Diff.RenderDiff(ctx, resolved.OldRevision, newRev)
	if err != nil {
		return c.errorPlan(page, fmt.Errorf("%w: diff: %w", ErrRenderFailed, err))
	}

	plan := domain.OutputPlan{
		Kind:     domain.PlanShowDiff,
		Page:     page,
		Revision: &newRev,
		Banner:   banner,
		Output:   &out,
		Options:  opts,
		Meta: domain.Meta{
			RevisionID: newRev.ID,
			Robots:     domain.PolicyNoIndexNoFollow,
		},
	}

	if !req.DiffOnly {
		cacheable := c.Selector.Storable(newRev, opts)
		if below, ok := c.belowFromCache(ctx, page, newRev, opts, cacheable); ok {
			plan.Below = &below
		} else {
			plan.Below = c.Render(ctx, page, newRev, opts, cacheable).Output
		}
	}
	return plan
}

// Render runs the renderer for rev and stores the result when cacheWrite is set. When rendering the current
// revision fails, a copy of the page from the cache, even one for an older revision, is served with a short
// lifetime and a staleness notice.
func (c *Controller) Render(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions, cacheWrite bool) domain.OutputPlan {
	start := c.now()
	out, err := c.Renderer.Render(ctx, page, rev, opts)
	c.recorder().Render(c.now().Sub(start), err)

	if err != nil {
		log.Warn().
			Err(err).
			Str("title", page.Title).
			Int64("revision", rev.ID).
			Bool("degraded", isDegraded(err)).
			Msg("render failed")

		if stale, ok := c.staleCopy(ctx, page, rev, opts); ok {
			return domain.OutputPlan{
				Kind:     domain.PlanServeFromCache,
				Page:     page,
				Revision: &rev,
				Banner:   domain.Banner{Kind: domain.BannerStale},
				Output:   &stale,
				Options:  opts,
				Meta: domain.Meta{
					RevisionID:   stale.RevisionID,
					Stale:        true,
					MaxAge:       c.StaleMaxAge,
					LastModified: stale.RenderedAt,
				},
				Err: err,
			}
		}

		plan := c.errorPlan(page, fmt.Errorf("%w: %w", ErrRenderFailed, err))
		if isDegraded(err) {
			plan.Meta.Stale = true
			plan.Meta.MaxAge = c.StaleMaxAge
		}
		return plan
	}

	if cacheWrite && c.Cache != nil && !c.storedByRenderer(rev, opts) {
		if err := c.Cache.Put(ctx, page, rev, opts, out); err != nil {
			log.Warn().Err(err).Int64("revision", rev.ID).Msg("failed to store render")
		}
	}

	return domain.OutputPlan{
		Kind:       domain.PlanRenderFresh,
		Page:       page,
		Revision:   &rev,
		Output:     &out,
		Options:    opts,
		CacheWrite: cacheWrite,
		Meta: domain.Meta{
			RevisionID:   rev.ID,
			LastModified: out.RenderedAt,
		},
	}
}

// Delete archives the page and schedules the removal of its cached renders.
func (c *Controller) Delete(ctx context.Context, page domain.PageRef, auth Authority, reason string) error {
	if !page.Exists() {
		return ErrNotFound
	}
	if !auth.CanDelete(ctx, page) {
		return ErrPermissionDenied
	}
	if c.Pages == nil {
		return fmt.Errorf("%w: no page store", ErrMisconfigured)
	}

	if err := c.Pages.DeletePage(ctx, page, auth.UserID(), reason); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	log.Info().
		Str("title", page.Title).
		Int64("user", auth.UserID()).
		Str("reason", reason).
		Msg("page deleted")

	if c.Purger != nil {
		err := c.Purger.EnqueuePurge(ctx, page)
		if err == nil {
			return nil
		}
		log.Error().Err(err).Str("title", page.Title).Msg("failed to enqueue purge; purging now")
	}
	if c.Cache != nil {
		return c.Cache.Purge(ctx, page)
	}
	return nil
}

func (c *Controller) storedByRenderer(rev domain.RevisionRef, opts domain.RenderOptions) bool {
	s, ok := c.Renderer.(StoringRenderer)
	return ok && s.Stores(rev, opts)
}

func (c *Controller) belowFromCache(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions, cacheable bool) (domain.RenderedOutput, bool) {
	if !cacheable {
		return domain.RenderedOutput{}, false
	}
	return c.Selector.FromCache(ctx, page, rev, opts)
}

// staleCopy only stands in for the current revision: an old revision is never replaced by another one.
func (c *Controller) staleCopy(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, bool) {
	if c.Cache == nil || !rev.Current || rev.TextDeleted() {
		return domain.RenderedOutput{}, false
	}
	out, err := c.Cache.Get(ctx, page, nil, opts)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Int64("page", page.ID).Msg("stale cache lookup failed")
		}
		return domain.RenderedOutput{}, false
	}
	return out, true
}

func (c *Controller) errorPlan(page domain.PageRef, err error) domain.OutputPlan {
	return domain.OutputPlan{
		Kind: domain.PlanError,
		Page: page,
		Meta: domain.Meta{
			Robots: domain.PolicyNoIndexNoFollow,
		},
		Err: err,
	}
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Controller) recorder() Recorder {
	if c.Recorder == nil {
		return nopRecorder{}
	}
	return c.Recorder
}
