package db

import (
	"errors"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

var (
	ErrNotFound = domain.ErrNotFound
	ErrInternal = errors.New("internal database error")
	// ErrConflict is returned when a unique value, such as a username, is already taken.
	ErrConflict = errors.New("already exists")
)

type DB interface {
	Page
	Revision
	Account
}
