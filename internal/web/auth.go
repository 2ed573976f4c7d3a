package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/service"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const SessionKey = "user"

type Session struct {
	UserID    int64
	AccountID int64
	Username  string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetSession(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}
			handler.renderError(w, r, http.StatusUnauthorized, "You must be logged in to do that.")
		})
	}
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

// authority returns the permissions of whoever sent the request. A session pointing at an account that no
// longer exists is treated as anonymous.
func (h *Handler) authority(ctx context.Context) (view.Authority, error) {
	s, _ := GetSession(ctx)
	auth, err := h.service.Authority(ctx, s.UserID)
	if errors.Is(err, service.ErrNotFound) {
		return h.service.Authority(ctx, 0)
	}
	return auth, err
}

func Logout(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := handler.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
		}
		http.Redirect(w, r, localPath(r.URL.Query().Get("prev")), http.StatusSeeOther)
	}
}

func Login(handler *Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := handler.SessionManager.Load(r)
		if err := r.ParseForm(); err != nil {
			handler.renderLogin(w, r, http.StatusBadRequest, "Failed to parse form body.")
			return
		}

		prev := r.Form.Get("prev")
		user := r.Form.Get("user")
		password := r.Form.Get("password")
		u, authenticated, err := handler.service.AuthenticateUser(ctx, user, password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidInput) {
				handler.renderLogin(w, r, http.StatusBadRequest, "Invalid username, email or password.")
				return
			}
			log.Error().Err(err).Str("user", user).Msg("authentication failed")
			handler.renderLogin(w, r, http.StatusInternalServerError, "Something went wrong, please try again.")
			return
		}

		if !authenticated {
			handler.renderLogin(w, r, http.StatusUnauthorized, "Wrong username or password.")
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			u.UserID,
			u.AccountID,
			u.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to store session")
			handler.renderLogin(w, r, http.StatusInternalServerError, "Failed to create and load session.")
			return
		}

		log.Info().Str("username", u.Username).Msg("user logged in")
		http.Redirect(w, r, localPath(prev), http.StatusSeeOther)
	})
}

func GetLogin(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.renderLogin(w, r, http.StatusOK, "")
	}
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, message string) {
	prev := r.URL.Query().Get("prev")
	if prev == "" {
		prev = r.FormValue("prev")
	}
	h.render(w, r, status, loginTemplate, pageData{
		Title: "Log in",
		Error: message,
		Form: formData{
			Action: LoginRoute,
			Prev:   localPath(prev),
		},
	})
}

// localPath keeps redirects after login and logout on this site.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}
