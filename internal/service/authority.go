package service

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

// Authority holds the permissions of one caller. The zero value is an anonymous visitor of a public wiki.
type Authority struct {
	Account           domain.Account
	ReadRequiresLogin bool
}

func (a Authority) UserID() int64 {
	return a.Account.UserID
}

func (a Authority) CanRead(_ context.Context, _ domain.PageRef) bool {
	return !a.ReadRequiresLogin || a.Account.UserID != 0
}

// CanViewDeletedText lets admins see deleted text; suppressed text is reserved for suppressors.
func (a Authority) CanViewDeletedText(_ context.Context, rev domain.RevisionRef) bool {
	if rev.Suppressed() {
		return a.Account.Suppressor
	}
	return a.Account.Admin || a.Account.Suppressor
}

func (a Authority) CanDelete(_ context.Context, _ domain.PageRef) bool {
	return a.Account.Admin
}
