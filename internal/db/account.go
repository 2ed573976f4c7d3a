package db

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

type Account interface {
	GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error)
	GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error)
	GetAccount(ctx context.Context, userID int64) (domain.Account, error)
	// InsertUser persists the user and its account. The password must already be hashed.
	InsertUser(ctx context.Context, account domain.Account) (int64, error)
}
