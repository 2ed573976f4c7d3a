package db

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

type Page interface {
	GetPage(ctx context.Context, id int64) (domain.PageRef, error)
	// GetPageByTitle returns ErrNotFound for titles that were never created. Deleted pages are still found;
	// they just have no current revision.
	GetPageByTitle(ctx context.Context, namespace int, title string) (domain.PageRef, error)
	// CreatePage inserts the page, or reuses a deleted one with the same title, and saves its first revision.
	CreatePage(ctx context.Context, namespace int, title string, edit Edit) (domain.PageRef, domain.RevisionRef, error)
	// DeletePage archives every revision of the page, leaving it without a current revision.
	DeletePage(ctx context.Context, page domain.PageRef, actorID int64, reason string) error
}

// Edit is the content of a new revision.
type Edit struct {
	UserID   int64
	Username string
	Comment  string
	Content  string
	// ContentModel defaults to the configured media type.
	ContentModel string
}
