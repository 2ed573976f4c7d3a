package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

var (
	ErrNotFound         = domain.ErrNotFound
	ErrPermissionDenied = domain.ErrPermissionDenied
	ErrConflict         = db.ErrConflict
	ErrInvalidInput     = errors.New("invalid")
)

type Service interface {
	// AuthenticateUser takes the user's identifier, which may be their username or email address, and password
	// and verifies if these credentials are correct. If authentication fails, authenticated is false and
	// err is nil; a non nil error indicates that an internal, unexpected error has occured.
	AuthenticateUser(ctx context.Context, user, password string) (u domain.Account, authenticated bool, err error)
	// CreateUser inserts a new, local user, also creating their corresponding account, for which the email and
	// password are needed.
	CreateUser(ctx context.Context, username, password, email string, admin, suppressor bool) (int64, error)
	// Authority returns the permissions of the user; 0 stands for an anonymous visitor.
	Authority(ctx context.Context, userID int64) (view.Authority, error)
	// FindPage turns a title taken from a URL into a page. Titles that were never created are not an error:
	// the page returned has a zero ID.
	FindPage(ctx context.Context, key string) (domain.PageRef, error)
	// Edit creates the page if it does not exist or has been deleted; otherwise it adds a revision to it.
	Edit(ctx context.Context, title, content, comment string, userID int64) (domain.RevisionRef, error)
	// HideRevision replaces the deletion flags of a revision.
	HideRevision(ctx context.Context, revID int64, flags domain.DeletionFlags) error
}
