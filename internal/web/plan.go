package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const (
	RobotsHeader     = "X-Robots-Tag"
	RevisionIDHeader = "X-Revision-Id"
)

// writePlan turns the controller's plan into the response.
func (h *Handler) writePlan(w http.ResponseWriter, r *http.Request, plan domain.OutputPlan, auth view.Authority) {
	header := w.Header()
	if robots := plan.Meta.Robots.String(); robots != "" {
		header.Set(RobotsHeader, robots)
	}
	if plan.Meta.RevisionID != 0 {
		header.Set(RevisionIDHeader, strconv.FormatInt(plan.Meta.RevisionID, 10))
	}
	if !plan.Meta.LastModified.IsZero() {
		header.Set("Last-Modified", plan.Meta.LastModified.UTC().Format(http.TimeFormat))
	}
	_, loggedIn := GetSession(r.Context())
	header.Set("Cache-Control", cacheControl(plan.Meta, loggedIn))

	if plan.Kind == domain.PlanRedirect {
		http.Redirect(w, r, plan.URL, http.StatusFound)
		return
	}

	h.render(w, r, Status(plan), pageTemplate, pageData{
		Title:   plan.Page.Title,
		Article: h.articleData(r, plan, auth),
	})
}

// Status is the HTTP status of a plan. Pages that exist but can't be shown are 403s; a missing page or
// revision is a 404 even though it still gets a full page.
func Status(plan domain.OutputPlan) int {
	switch plan.Kind {
	case domain.PlanRedirect:
		return http.StatusFound
	case domain.PlanShowMissingPage:
		return http.StatusNotFound
	case domain.PlanShowFetchError:
		if plan.FetchFailure == domain.FetchPermission {
			return http.StatusForbidden
		}
		return http.StatusNotFound
	case domain.PlanRevisionHidden:
		return http.StatusForbidden
	case domain.PlanError:
		if plan.Meta.Stale {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	}
	if plan.Meta.NotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

func cacheControl(meta domain.Meta, loggedIn bool) string {
	if meta.MaxAge <= 0 {
		return "no-cache, no-store"
	}
	scope := "public"
	if loggedIn {
		scope = "private"
	}
	return fmt.Sprintf("%s, max-age=%d", scope, int(meta.MaxAge/time.Second))
}

func (h *Handler) articleData(r *http.Request, plan domain.OutputPlan, auth view.Authority) *articleData {
	page := plan.Page
	a := &articleData{
		Kind:      plan.Kind.String(),
		Banner:    banner(plan.Banner),
		Printable: plan.Options.Printable,
	}
	if plan.Output != nil {
		a.Content = template.HTML(plan.Output.HTML)
	}
	if plan.Below != nil {
		a.Below = template.HTML(plan.Below.HTML)
	}
	if plan.OldRevisionHeader && plan.Revision != nil {
		a.OldRevision = oldRevision(page, *plan.Revision, auth.CanViewDeletedText(r.Context(), *plan.Revision))
	}

	switch plan.Kind {
	case domain.PlanShowMissingPage:
		a.Message = "There is currently no text in this page."
	case domain.PlanShowFetchError:
		a.Message = fetchErrorMessage(plan)
	case domain.PlanError:
		a.Message = "The page could not be displayed right now. Please try again later."
	}

	if _, ok := GetSession(r.Context()); ok {
		a.EditAction = pagePath(page, nil)
		if page.Exists() && auth.CanDelete(r.Context(), page) && plan.Kind != domain.PlanShowMissingPage {
			a.CanDelete = true
			a.DeleteAction = pagePath(page, nil) + "/delete"
		}
	}
	return a
}

func fetchErrorMessage(plan domain.OutputPlan) string {
	switch {
	case plan.FetchFailure == domain.FetchPermission:
		return "You do not have permission to view this page."
	case plan.MissingRevID != 0:
		return fmt.Sprintf("The revision #%d of the page named %q does not exist.", plan.MissingRevID, plan.Page.Title)
	default:
		return "The requested revision could not be found."
	}
}

func banner(b domain.Banner) *bannerData {
	switch b.Kind {
	case domain.BannerPermission:
		msg := "This revision of the page has been deleted. You do not have permission to view it."
		if b.Suppressed {
			msg = "This revision of the page has been suppressed. You do not have permission to view it."
		}
		return &bannerData{Class: "banner-permission", Message: msg}
	case domain.BannerUnhideConfirm:
		return &bannerData{
			Class:    "banner-unhide",
			Message:  "This revision of the page has been deleted.",
			Link:     b.Link,
			LinkText: "View it anyway",
		}
	case domain.BannerViewingDeleted:
		return &bannerData{Class: "banner-deleted", Message: "You are viewing a deleted revision of this page."}
	case domain.BannerStale:
		return &bannerData{Class: "banner-stale", Message: "This page could not be rendered just now; an earlier copy is shown."}
	}
	return nil
}

func oldRevision(page domain.PageRef, rev domain.RevisionRef, seeDeleted bool) *oldRevisionData {
	id := strconv.FormatInt(rev.ID, 10)
	o := &oldRevisionData{
		ID:        rev.ID,
		Author:    rev.Username,
		Timestamp: rev.Timestamp.UTC().Format("15:04, 2 January 2006"),
		Comment:   rev.Comment,
		Previous:  pagePath(page, url.Values{"oldid": {id}, "direction": {"prev"}}),
		Next:      pagePath(page, url.Values{"oldid": {id}, "direction": {"next"}}),
		Current:   pagePath(page, nil),
		Diff:      pagePath(page, url.Values{"oldid": {id}, "diff": {"prev"}}),
	}
	if rev.Deleted.Has(domain.DeletedUser) && !seeDeleted {
		o.Author = ""
	}
	if rev.Deleted.Has(domain.DeletedComment) && !seeDeleted {
		o.Comment = ""
	}
	return o
}
