package view

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_view.go -package=mocks

// RevisionStore is the read side of the revision storage. Lookups that find nothing return an error
// wrapping ErrNotFound.
type RevisionStore interface {
	GetPage(ctx context.Context, id int64) (domain.PageRef, error)
	// GetCurrent returns the page's latest revision, with Current set. Its text may be deleted.
	GetCurrent(ctx context.Context, page domain.PageRef) (domain.RevisionRef, error)
	GetRevisionByID(ctx context.Context, id int64) (domain.RevisionRef, error)
	GetNext(ctx context.Context, rev domain.RevisionRef) (domain.RevisionRef, error)
	GetPrevious(ctx context.Context, rev domain.RevisionRef) (domain.RevisionRef, error)
}

type PageStore interface {
	// DeletePage archives every revision of the page, leaving it without a current revision.
	DeletePage(ctx context.Context, page domain.PageRef, actorID int64, reason string) error
}

// Authority answers permission questions for the caller of one request.
type Authority interface {
	UserID() int64
	CanRead(ctx context.Context, page domain.PageRef) bool
	// CanViewDeletedText distinguishes ordinary deletions from suppressions by looking at the revision's flags.
	CanViewDeletedText(ctx context.Context, rev domain.RevisionRef) bool
	CanDelete(ctx context.Context, page domain.PageRef) bool
}

// RenderCache maps (page, revision, options) to rendered output. A nil revision on Get asks for whatever
// output is cached for the page, regardless of revision or expiry; it is used as a last resort when
// rendering fails.
type RenderCache interface {
	Get(ctx context.Context, page domain.PageRef, rev *domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, error)
	Put(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions, out domain.RenderedOutput) error
	Purge(ctx context.Context, page domain.PageRef) error
}

type Renderer interface {
	Render(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, error)
}

type DiffRenderer interface {
	// RenderDiff renders the changes from old to new. A nil old means new created the page.
	RenderDiff(ctx context.Context, old *domain.RevisionRef, new domain.RevisionRef) (domain.RenderedOutput, error)
}

// ExtensionHook may take over a page view entirely. Hooks that do not handle the view return false and a
// nil output.
type ExtensionHook interface {
	OnViewHeader(ctx context.Context, hc *domain.HookContext) (handled bool, out *domain.RenderedOutput)
}

type Purger interface {
	EnqueuePurge(ctx context.Context, page domain.PageRef) error
}
