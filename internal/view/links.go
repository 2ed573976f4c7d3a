package view

import (
	"net/url"
	"strconv"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

const ArticlesPath = "a"

// Links builds the canonical URLs of pages.
type Links struct {
	Base *url.URL
}

func (l Links) Canonical(page domain.PageRef, query url.Values) string {
	u := l.Base.JoinPath(ArticlesPath, page.DBKey())
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (l Links) Revision(page domain.PageRef, id int64) string {
	return l.Canonical(page, url.Values{"oldid": {strconv.FormatInt(id, 10)}})
}

// Unhide repeats req with the unhide flag set. It is the link offered by the banner of a deleted revision.
func (l Links) Unhide(page domain.PageRef, req domain.ViewRequest) string {
	q := Query(req)
	q.Set("unhide", "1")
	return l.Canonical(page, q)
}

// Query is the inverse of the query string parsing done by the web layer.
func Query(req domain.ViewRequest) url.Values {
	q := url.Values{}
	if req.OldID != 0 {
		q.Set("oldid", strconv.FormatInt(req.OldID, 10))
	}
	if req.Direction != domain.DirectionNone {
		q.Set("direction", req.Direction.String())
	}
	if req.Diff {
		diff := "cur"
		if req.DiffNewID != 0 {
			diff = strconv.FormatInt(req.DiffNewID, 10)
		}
		q.Set("diff", diff)
	}
	if req.DiffOnly {
		q.Set("diffonly", "1")
	}
	if req.Unhide {
		q.Set("unhide", "1")
	}
	if req.Printable {
		q.Set("printable", "yes")
	}
	if req.NoRedirect {
		q.Set("redirect", "no")
	}
	return q
}
