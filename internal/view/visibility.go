package view

import (
	"context"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

type DisplayMode int

const (
	// DisplayNormal: the revision is not deleted.
	DisplayNormal DisplayMode = iota
	// DisplayPermissionBanner: deleted, and the caller may not see it.
	DisplayPermissionBanner
	// DisplayUnhideConfirm: deleted, the caller may see it but did not ask to.
	DisplayUnhideConfirm
	// DisplayViewingDeleted: deleted content is shown on request.
	DisplayViewingDeleted
)

type DisplayDecision struct {
	Allowed    bool
	Mode       DisplayMode
	Suppressed bool
}

// DecideDisplay collapses the eight combinations of its inputs into the four display modes. hasRights
// and unhide only matter for deleted revisions, and unhide only matters when the caller has the rights.
func DecideDisplay(isDeleted, hasRights, unhide bool) DisplayDecision {
	switch {
	case !isDeleted:
		return DisplayDecision{Allowed: true, Mode: DisplayNormal}
	case !hasRights:
		return DisplayDecision{Allowed: false, Mode: DisplayPermissionBanner}
	case !unhide:
		return DisplayDecision{Allowed: false, Mode: DisplayUnhideConfirm}
	default:
		return DisplayDecision{Allowed: true, Mode: DisplayViewingDeleted}
	}
}

// Banner converts the decision into what the page shows above the content. link is only used by the
// unhide confirmation.
func (d DisplayDecision) Banner(link string) domain.Banner {
	switch d.Mode {
	case DisplayPermissionBanner:
		return domain.Banner{Kind: domain.BannerPermission, Suppressed: d.Suppressed}
	case DisplayUnhideConfirm:
		return domain.Banner{Kind: domain.BannerUnhideConfirm, Suppressed: d.Suppressed, Link: link}
	case DisplayViewingDeleted:
		return domain.Banner{Kind: domain.BannerViewingDeleted, Suppressed: d.Suppressed}
	default:
		return domain.Banner{}
	}
}

// Gate decides whether the caller may load and see a revision.
type Gate struct{}

// CheckFetch reports whether rev's content may be loaded at all on behalf of auth.
func (Gate) CheckFetch(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, auth Authority) domain.FetchOutcome {
	if !auth.CanRead(ctx, page) {
		return domain.FetchFailed(page, rev.ID, domain.FetchPermission)
	}
	if rev.TextDeleted() && !auth.CanViewDeletedText(ctx, rev) {
		return domain.FetchFailed(page, rev.ID, domain.FetchPermission)
	}
	return domain.FetchSucceeded(page, rev)
}

func (Gate) CheckDisplay(ctx context.Context, rev domain.RevisionRef, auth Authority, unhide bool) DisplayDecision {
	deleted := rev.TextDeleted()
	var rights bool
	if deleted {
		rights = auth.CanViewDeletedText(ctx, rev)
	}
	d := DecideDisplay(deleted, rights, unhide)
	d.Suppressed = deleted && rev.Suppressed()
	return d
}
