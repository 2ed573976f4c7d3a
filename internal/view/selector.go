package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Selector decides, before anything expensive happens, how a resolved view is going to be produced.
type Selector struct {
	Cache    RenderCache
	Gate     Gate
	Hooks    Hooks
	Links    Links
	Recorder Recorder
	// Policy is the robot policy of current revisions. Everything else is noindex,nofollow.
	Policy   domain.RobotPolicy
	Language string
	MaxAge   time.Duration
	// NoCache disables both lookups and writes.
	NoCache        bool
	CachePrintable bool
	Now            func() time.Time
}

// SelectOutput returns the plan for a view that is neither a redirect nor a diff. Cache lookups always come
// before the revision is checked for fetching, so that a hit never loads anything else.
func (s *Selector) SelectOutput(ctx context.Context, req domain.ViewRequest, resolved domain.ResolvedView, auth Authority) (domain.OutputPlan, error) {
	opts := req.Options(s.Language)

	hc := &domain.HookContext{
		Request: req,
		View:    resolved,
		UserID:  auth.UserID(),
	}
	if out, ok := s.Hooks.Run(ctx, hc); ok {
		return domain.OutputPlan{
			Kind:    domain.PlanHookOutput,
			Page:    resolved.Page,
			Output:  out,
			Options: opts,
			Meta: domain.Meta{
				Robots: s.robots(req, false),
			},
		}, nil
	}

	switch resolved.Kind {
	case domain.ViewMissing:
		return s.MissingPlan(resolved, opts), nil
	case domain.ViewRenderCurrent, domain.ViewRenderOld:
	default:
		return domain.OutputPlan{}, fmt.Errorf("%w: no output for a %s view", ErrMisconfigured, resolved.Kind)
	}

	page := resolved.Page
	rev := *resolved.Revision
	old := resolved.Kind == domain.ViewRenderOld
	deleted := rev.TextDeleted()

	if !auth.CanRead(ctx, page) {
		return s.FetchErrorPlan(domain.FetchFailed(page, rev.ID, domain.FetchPermission), opts), nil
	}

	if !old && !deleted {
		if out, ok := s.FromCache(ctx, page, rev, opts); ok {
			return s.cachedPlan(req, page, rev, opts, out, false), nil
		}
	}

	if outcome := s.Gate.CheckFetch(ctx, page, rev, auth); !outcome.OK() {
		return s.FetchErrorPlan(outcome, opts), nil
	}

	plan := domain.OutputPlan{
		Kind:     domain.PlanRenderFresh,
		Page:     page,
		Revision: &rev,
		Options:  opts,
		Meta: domain.Meta{
			RevisionID: rev.ID,
			Robots:     s.robots(req, old || deleted),
			MaxAge:     s.MaxAge,
		},
		OldRevisionHeader: old,
	}

	// Deleted text goes through the display gate even when it is the current revision.
	if old || deleted {
		d := s.Gate.CheckDisplay(ctx, rev, auth, req.Unhide)
		plan.Banner = d.Banner(s.Links.Unhide(page, req))
		if !d.Allowed {
			plan.Kind = domain.PlanRevisionHidden
			plan.Meta.MaxAge = 0
			return plan, nil
		}
	}

	if old && !deleted {
		if out, ok := s.FromCache(ctx, page, rev, opts); ok {
			cached := s.cachedPlan(req, page, rev, opts, out, true)
			cached.Banner = plan.Banner
			return cached, nil
		}
	}

	plan.CacheWrite = s.Storable(rev, opts)
	if deleted {
		plan.Meta.MaxAge = 0
	}
	return plan, nil
}

// FromCache looks rev up in the render cache. Entries for another revision, and expired entries, count
// as misses: the cache may have changed between reporting a hit and returning it.
func (s *Selector) FromCache(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, bool) {
	if s.Cache == nil || !s.cacheable(opts) {
		return domain.RenderedOutput{}, false
	}

	out, err := s.Cache.Get(ctx, page, &rev, opts)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Int64("page", page.ID).Int64("revision", rev.ID).Msg("render cache lookup failed")
		}
		s.recorder().CacheLookup(false)
		return domain.RenderedOutput{}, false
	}

	if !out.ValidFor(rev.ID, s.now()) {
		log.Debug().
			Int64("revision", rev.ID).
			Int64("cached revision", out.RevisionID).
			Msg("discarding stale render cache entry")
		s.recorder().CacheLookup(false)
		return domain.RenderedOutput{}, false
	}

	s.recorder().CacheLookup(true)
	return out, true
}

func (s *Selector) MissingPlan(resolved domain.ResolvedView, opts domain.RenderOptions) domain.OutputPlan {
	if resolved.MissingRevID != 0 {
		plan := s.FetchErrorPlan(domain.FetchFailed(resolved.Page, resolved.MissingRevID, domain.FetchNotFound), opts)
		plan.MissingRevID = resolved.MissingRevID
		return plan
	}

	return domain.OutputPlan{
		Kind:    domain.PlanShowMissingPage,
		Page:    resolved.Page,
		Options: opts,
		Meta: domain.Meta{
			Robots:   domain.PolicyNoIndexNoFollow,
			NotFound: true,
		},
	}
}

func (s *Selector) FetchErrorPlan(outcome domain.FetchOutcome, opts domain.RenderOptions) domain.OutputPlan {
	return domain.OutputPlan{
		Kind:         domain.PlanShowFetchError,
		Page:         outcome.Page,
		FetchFailure: outcome.Failure,
		Options:      opts,
		Meta: domain.Meta{
			RevisionID: outcome.RevID,
			Robots:     domain.PolicyNoIndexNoFollow,
			NotFound:   outcome.Failure == domain.FetchNotFound,
		},
	}
}

func (s *Selector) cachedPlan(req domain.ViewRequest, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions, out domain.RenderedOutput, old bool) domain.OutputPlan {
	return domain.OutputPlan{
		Kind:              domain.PlanServeFromCache,
		Page:              page,
		Revision:          &rev,
		OldRevisionHeader: old,
		Output:            &out,
		Options:           opts,
		Meta: domain.Meta{
			RevisionID:   out.RevisionID,
			Robots:       s.robots(req, old),
			MaxAge:       s.MaxAge,
			LastModified: out.RenderedAt,
		},
	}
}

func (s *Selector) robots(req domain.ViewRequest, noindex bool) domain.RobotPolicy {
	if noindex || req.Printable {
		return domain.PolicyNoIndexNoFollow
	}
	return s.Policy.Merge(domain.PolicyIndexFollow)
}

func (s *Selector) cacheable(opts domain.RenderOptions) bool {
	return !s.NoCache && (s.CachePrintable || !opts.Printable)
}

// Storable reports whether a render of rev may be written to the cache. Deleted text never goes into a
// shared cache, even for callers allowed to see it.
func (s *Selector) Storable(rev domain.RevisionRef, opts domain.RenderOptions) bool {
	return rev.ID != 0 && !rev.TextDeleted() && s.cacheable(opts)
}

func (s *Selector) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Selector) recorder() Recorder {
	if s.Recorder == nil {
		return nopRecorder{}
	}
	return s.Recorder
}
