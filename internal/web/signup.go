package web

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/service"
)

func SignUp(s *Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			s.renderSignup(w, r, http.StatusBadRequest, "Failed to parse form body.")
			return
		}

		username := r.Form.Get("username")
		email := r.Form.Get("email")
		password := r.Form.Get("password")

		_, err := s.service.CreateUser(ctx, username, password, email, false, false)
		switch {
		case err == nil:
			http.Redirect(w, r, LoginRoute, http.StatusSeeOther)
		case errors.Is(err, service.ErrInvalidInput):
			s.renderSignup(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrConflict):
			s.renderSignup(w, r, http.StatusConflict, "That username or email is already taken.")
		default:
			log.Error().Err(err).Str("username", username).Msg("failed to create user")
			s.renderSignup(w, r, http.StatusInternalServerError, "Something went wrong, please try again.")
		}
	})
}

func GetSignup(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handler.renderSignup(w, r, http.StatusOK, "")
	}
}

func (h *Handler) renderSignup(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, signupTemplate, pageData{
		Title: "Sign up",
		Error: message,
		Form:  formData{Action: SignUpRoute},
	})
}

func GetCode(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
