package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/service"
	"github.com/sidereusnuntius/pageview/internal/validate"
	"github.com/sidereusnuntius/pageview/internal/view"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser confirms the user's identity and, if their credentials are correct, returns data to be put
// in the login session, such as the user's name and id. user is either the user's username or their email.
func (s *AppService) AuthenticateUser(ctx context.Context, user, password string) (u domain.Account, authenticated bool, err error) {
	user = strings.ToLower(strings.TrimSpace(user))

	err = validate.Email(user)
	if err == nil {
		u, err = s.DB.GetAuthDataByEmail(ctx, user)
	} else if err = validate.Username(user); err == nil {
		u, err = s.DB.GetAuthDataByUsername(ctx, user)
	} else {
		err = errors.New("invalid username or email")
	}

	if errors.Is(err, db.ErrNotFound) {
		return domain.Account{}, false, nil
	}

	err = errors.Join(err, validate.Password(password))
	if err != nil {
		err = fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	authenticated = err == nil
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		err = nil
	}
	if !authenticated {
		u = domain.Account{}
	}
	return
}

func (s *AppService) CreateUser(ctx context.Context, username, password, email string, admin, suppressor bool) (int64, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	err := validate.SignUpForm(username, password, email)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return 0, err
	}

	return s.DB.InsertUser(ctx, domain.Account{
		Username:   username,
		Email:      email,
		Password:   string(hash),
		Admin:      admin,
		Suppressor: suppressor,
	})
}

func (s *AppService) Authority(ctx context.Context, userID int64) (view.Authority, error) {
	auth := service.Authority{ReadRequiresLogin: s.Config.ReadRequiresLogin}
	if userID == 0 {
		return auth, nil
	}

	account, err := s.DB.GetAccount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account of user %d: %w", userID, err)
	}
	account.Password = ""
	auth.Account = account
	return auth, nil
}
