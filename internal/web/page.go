package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const MaxMemory = 64 * 1024

// ParseViewRequest reads the query parameters of a page view. Malformed numbers are ignored rather than
// rejected, the way a reader following a mangled link would expect.
func ParseViewRequest(page domain.PageRef, q url.Values) domain.ViewRequest {
	req := domain.ViewRequest{
		Page:       page,
		OldID:      parseID(q.Get("oldid")),
		Direction:  domain.ParseDirection(q.Get("direction")),
		DiffOnly:   flag(q.Get("diffonly")),
		Unhide:     flag(q.Get("unhide")),
		Printable:  q.Get("printable") == "yes",
		NoRedirect: q.Get("redirect") == "no",
	}

	if q.Has("diff") {
		req.Diff = true
		switch d := q.Get("diff"); d {
		case "", "cur":
		case "prev":
			// The changes made by oldid itself.
			req.DiffNewID, req.OldID = req.OldID, 0
		default:
			req.DiffNewID = parseID(d)
		}
		req.Direction = domain.DirectionNone
	}
	return req
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func flag(s string) bool {
	switch s {
	case "1", "yes", "true":
		return true
	}
	return false
}

func ViewPage(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page, err := h.service.FindPage(ctx, chi.URLParam(r, "title"))
		if err != nil {
			h.renderError(w, r, GetCode(err), "Bad title.")
			return
		}

		auth, err := h.authority(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to load permissions")
			h.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again.")
			return
		}

		req := ParseViewRequest(page, r.URL.Query())
		plan := h.Controller.View(ctx, req, auth)
		h.writePlan(w, r, plan, auth)
	}
}

// PostArticle saves a new revision of the page, creating it if needed.
func PostArticle(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session, _ := GetSession(ctx)

		r.Body = http.MaxBytesReader(w, r.Body, MaxMemory)
		if err := r.ParseForm(); err != nil {
			h.renderError(w, r, http.StatusBadRequest, "Failed to parse form body.")
			return
		}

		title := chi.URLParam(r, "title")
		rev, err := h.service.Edit(ctx, title, r.Form.Get("content"), r.Form.Get("summary"), session.UserID)
		if err != nil {
			log.Error().Err(err).Str("title", title).Msg("failed to save edit")
			h.renderError(w, r, GetCode(err), "Failed to save the page.")
			return
		}

		page := domain.PageRef{Title: domain.TitleFromKey(title)}
		http.Redirect(w, r, pagePath(page, url.Values{"oldid": {strconv.FormatInt(rev.ID, 10)}}), http.StatusSeeOther)
	}
}

func DeletePage(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			h.renderError(w, r, http.StatusBadRequest, "Failed to parse form body.")
			return
		}

		page, err := h.service.FindPage(ctx, chi.URLParam(r, "title"))
		if err != nil {
			h.renderError(w, r, GetCode(err), "Bad title.")
			return
		}
		auth, err := h.authority(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to load permissions")
			h.renderError(w, r, http.StatusInternalServerError, "Something went wrong, please try again.")
			return
		}

		err = h.Controller.Delete(ctx, page, auth, r.Form.Get("reason"))
		switch {
		case err == nil:
			http.Redirect(w, r, pagePath(page, nil), http.StatusSeeOther)
		case errors.Is(err, view.ErrPermissionDenied):
			h.renderError(w, r, http.StatusForbidden, "You are not allowed to delete this page.")
		case errors.Is(err, view.ErrNotFound):
			h.renderError(w, r, http.StatusNotFound, "There is no page to delete.")
		default:
			log.Error().Err(err).Str("title", page.Title).Msg("failed to delete page")
			h.renderError(w, r, http.StatusInternalServerError, "Failed to delete the page.")
		}
	}
}

// pagePath is the site-relative address of a page; canonical URLs come from the configured base url.
func pagePath(page domain.PageRef, q url.Values) string {
	u := url.URL{Path: ArticlesPath + "/" + page.DBKey()}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
