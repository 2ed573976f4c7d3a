package view

import (
	"context"
	"errors"
	"net/url"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Resolver turns a requested title and revision into the revision that should be shown.
type Resolver struct {
	Store RevisionStore
	Links Links
}

func NewResolver(store RevisionStore, links Links) *Resolver {
	return &Resolver{
		Store: store,
		Links: links,
	}
}

// Resolve picks the revision to show for page. An oldID of 0 means the current revision. When oldID
// belongs to another page, that page becomes the target. A direction turns into a redirect to the
// neighbouring revision; running off the end of the history redirects to the page itself when going
// forward, and silently shows the current revision when going back.
func (r *Resolver) Resolve(ctx context.Context, page domain.PageRef, oldID int64, dir domain.Direction) (domain.ResolvedView, error) {
	current, err := r.current(ctx, page)
	if err != nil {
		return domain.ResolvedView{}, err
	}
	if current == nil {
		return domain.Missing(page), nil
	}

	if oldID == 0 {
		if dir != domain.DirectionNone {
			log.Debug().
				Str("title", page.Title).
				Str("direction", dir.String()).
				Msg("direction without oldid; ignoring it")
		}
		return domain.RenderCurrent(page, *current), nil
	}

	rev := *current
	if oldID != current.ID {
		rev, err = r.Store.GetRevisionByID(ctx, oldID)
		if errors.Is(err, ErrNotFound) {
			return domain.MissingRevision(page, oldID), nil
		} else if err != nil {
			return domain.ResolvedView{}, err
		}

		if rev.PageID != page.ID {
			page, err = r.Store.GetPage(ctx, rev.PageID)
			if errors.Is(err, ErrNotFound) {
				return domain.MissingRevision(domain.PageRef{ID: rev.PageID}, oldID), nil
			} else if err != nil {
				return domain.ResolvedView{}, err
			}
			log.Debug().
				Int64("oldid", oldID).
				Str("title", page.Title).
				Msg("revision belongs to another page; following it")
		}
	}

	switch dir {
	case domain.DirectionNext:
		next, err := r.Store.GetNext(ctx, rev)
		if errors.Is(err, ErrNotFound) {
			return domain.RedirectToHistoryEnd(page, r.Links.Canonical(page, url.Values{"redirect": {"no"}})), nil
		} else if err != nil {
			return domain.ResolvedView{}, err
		}
		return domain.RedirectTo(page, r.Links.Revision(page, next.ID)), nil
	case domain.DirectionPrev:
		prev, err := r.Store.GetPrevious(ctx, rev)
		if errors.Is(err, ErrNotFound) {
			return r.Resolve(ctx, page, 0, domain.DirectionNone)
		} else if err != nil {
			return domain.ResolvedView{}, err
		}
		return domain.RedirectTo(page, r.Links.Revision(page, prev.ID)), nil
	}

	if rev.Current {
		return domain.RenderCurrent(page, rev), nil
	}
	return domain.RenderOld(page, rev), nil
}

// ResolveDiff finds both sides of a diff. newID 0 is the current revision and oldID 0 is the revision
// preceding the new one. Sides given in the wrong order are swapped.
func (r *Resolver) ResolveDiff(ctx context.Context, page domain.PageRef, oldID, newID int64) (domain.ResolvedView, error) {
	current, err := r.current(ctx, page)
	if err != nil {
		return domain.ResolvedView{}, err
	}
	if current == nil {
		return domain.Missing(page), nil
	}

	newRev := *current
	if newID != 0 && newID != current.ID {
		newRev, err = r.Store.GetRevisionByID(ctx, newID)
		if errors.Is(err, ErrNotFound) {
			return domain.MissingRevision(page, newID), nil
		} else if err != nil {
			return domain.ResolvedView{}, err
		}
		if newRev.PageID != page.ID {
			if page, err = r.Store.GetPage(ctx, newRev.PageID); err != nil {
				return domain.ResolvedView{}, err
			}
		}
	}

	var oldRev *domain.RevisionRef
	if oldID == 0 {
		prev, err := r.Store.GetPrevious(ctx, newRev)
		if err == nil {
			oldRev = &prev
		} else if !errors.Is(err, ErrNotFound) {
			return domain.ResolvedView{}, err
		}
	} else {
		old, err := r.Store.GetRevisionByID(ctx, oldID)
		if errors.Is(err, ErrNotFound) {
			return domain.MissingRevision(page, oldID), nil
		} else if err != nil {
			return domain.ResolvedView{}, err
		}
		oldRev = &old
	}

	if oldRev != nil && newer(*oldRev, newRev) {
		*oldRev, newRev = newRev, *oldRev
	}
	return domain.ShowDiff(page, oldRev, newRev), nil
}

func (r *Resolver) current(ctx context.Context, page domain.PageRef) (*domain.RevisionRef, error) {
	if !page.Exists() {
		return nil, nil
	}
	rev, err := r.Store.GetCurrent(ctx, page)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &rev, nil
}

func newer(a, b domain.RevisionRef) bool {
	if a.Timestamp.Equal(b.Timestamp) {
		return a.ID > b.ID
	}
	return a.Timestamp.After(b.Timestamp)
}
