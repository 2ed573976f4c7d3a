package domain

import (
	"errors"
	"fmt"
)

type ViewKind int

const (
	ViewRenderCurrent ViewKind = iota + 1
	ViewRenderOld
	ViewRedirect
	ViewShowDiff
	ViewMissing
)

func (k ViewKind) String() string {
	switch k {
	case ViewRenderCurrent:
		return "current"
	case ViewRenderOld:
		return "old"
	case ViewRedirect:
		return "redirect"
	case ViewShowDiff:
		return "diff"
	case ViewMissing:
		return "missing"
	default:
		return "invalid"
	}
}

var ErrInvalidView = errors.New("invalid resolved view")

// ResolvedView is the outcome of revision resolution. Only the fields of its Kind are populated; use the
// constructors below rather than building one by hand.
type ResolvedView struct {
	Kind ViewKind
	Page PageRef
	// Revision is set for RenderCurrent and RenderOld, and is the newer side of ShowDiff.
	Revision *RevisionRef
	// OldRevision is the older side of ShowDiff. It is nil when the newer side is the page's first revision.
	OldRevision *RevisionRef
	URL         string
	// HistoryEnd marks the redirect made when there is no next revision to move to.
	HistoryEnd bool
	// MissingRevID is the requested revision id when Missing was caused by an unknown revision.
	MissingRevID int64
}

func RenderCurrent(page PageRef, rev RevisionRef) ResolvedView {
	return ResolvedView{Kind: ViewRenderCurrent, Page: page, Revision: &rev}
}

func RenderOld(page PageRef, rev RevisionRef) ResolvedView {
	return ResolvedView{Kind: ViewRenderOld, Page: page, Revision: &rev}
}

func RedirectTo(page PageRef, url string) ResolvedView {
	return ResolvedView{Kind: ViewRedirect, Page: page, URL: url}
}

// RedirectToHistoryEnd is the redirect back to the page when a reader asks for the revision after the last one.
func RedirectToHistoryEnd(page PageRef, url string) ResolvedView {
	return ResolvedView{Kind: ViewRedirect, Page: page, URL: url, HistoryEnd: true}
}

func ShowDiff(page PageRef, old *RevisionRef, new RevisionRef) ResolvedView {
	return ResolvedView{Kind: ViewShowDiff, Page: page, OldRevision: old, Revision: &new}
}

func Missing(page PageRef) ResolvedView {
	return ResolvedView{Kind: ViewMissing, Page: page}
}

func MissingRevision(page PageRef, id int64) ResolvedView {
	return ResolvedView{Kind: ViewMissing, Page: page, MissingRevID: id}
}

// Validate reports whether exactly the fields that belong to the view's kind are set.
func (v ResolvedView) Validate() error {
	ok := false
	switch v.Kind {
	case ViewRenderCurrent, ViewRenderOld:
		ok = v.Revision != nil && v.OldRevision == nil && v.URL == "" && v.MissingRevID == 0 && !v.HistoryEnd
	case ViewRedirect:
		ok = v.URL != "" && v.Revision == nil && v.OldRevision == nil && v.MissingRevID == 0
	case ViewShowDiff:
		ok = v.Revision != nil && v.URL == "" && v.MissingRevID == 0
	case ViewMissing:
		ok = v.Revision == nil && v.OldRevision == nil && v.URL == ""
	}
	if !ok {
		return fmt.Errorf("%w: kind %s", ErrInvalidView, v.Kind)
	}
	return nil
}
