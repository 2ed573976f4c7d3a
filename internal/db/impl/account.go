package impl

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/db/impl/queries"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

func (d *dbImpl) GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error) {
	u, err := d.queries.AuthUserByUsername(ctx, username)
	if err != nil {
		return domain.Account{}, d.HandleError(err)
	}
	return domain.Account(u), nil
}

func (d *dbImpl) GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error) {
	u, err := d.queries.AuthUserByEmail(ctx, email)
	if err != nil {
		// Treat error to hide implementation details.
		return domain.Account{}, d.HandleError(err)
	}
	return domain.Account(u), nil
}

func (d *dbImpl) GetAccount(ctx context.Context, userID int64) (domain.Account, error) {
	u, err := d.queries.AuthUserByID(ctx, userID)
	if err != nil {
		return domain.Account{}, d.HandleError(err)
	}
	return domain.Account(u), nil
}

func (d *dbImpl) InsertUser(ctx context.Context, account domain.Account) (id int64, err error) {
	err = d.WithTx(func(tx *queries.Queries) error {
		id, err = tx.CreateLocalUser(ctx, queries.CreateLocalUserParams{
			Username: account.Username,
			Created:  d.now().Unix(),
		})
		if err != nil {
			return d.HandleError(err)
		}

		return d.HandleError(tx.CreateAccount(ctx, queries.CreateAccountParams{
			UserID:     id,
			Email:      account.Email,
			Password:   account.Password,
			Admin:      account.Admin,
			Suppressor: account.Suppressor,
		}))
	})
	return
}
