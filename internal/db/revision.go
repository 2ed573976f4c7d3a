package db

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

type Revision interface {
	// GetCurrent returns the page's latest revision, deleted text or not.
	GetCurrent(ctx context.Context, page domain.PageRef) (domain.RevisionRef, error)
	GetRevisionByID(ctx context.Context, id int64) (domain.RevisionRef, error)
	GetNext(ctx context.Context, rev domain.RevisionRef) (domain.RevisionRef, error)
	GetPrevious(ctx context.Context, rev domain.RevisionRef) (domain.RevisionRef, error)
	// GetContent returns the revision's source text and its media type.
	GetContent(ctx context.Context, revID int64) (content, model string, err error)
	// AddRevision saves a new revision and makes it the page's current one.
	AddRevision(ctx context.Context, page domain.PageRef, edit Edit) (domain.RevisionRef, error)
	SetRevisionDeleted(ctx context.Context, revID int64, flags domain.DeletionFlags) error
}
