package domain

import "time"

type PlanKind int

const (
	PlanHookOutput PlanKind = iota + 1
	PlanServeFromCache
	PlanRenderFresh
	PlanShowMissingPage
	PlanShowFetchError
	PlanRevisionHidden
	PlanShowDiff
	PlanRedirect
	PlanError
)

func (k PlanKind) String() string {
	switch k {
	case PlanHookOutput:
		return "hook"
	case PlanServeFromCache:
		return "cache"
	case PlanRenderFresh:
		return "render"
	case PlanShowMissingPage:
		return "missing"
	case PlanShowFetchError:
		return "fetch_error"
	case PlanRevisionHidden:
		return "hidden"
	case PlanShowDiff:
		return "diff"
	case PlanRedirect:
		return "redirect"
	case PlanError:
		return "error"
	default:
		return "unknown"
	}
}

type BannerKind int

const (
	BannerNone BannerKind = iota
	// BannerPermission: the revision is deleted and the caller may not see it.
	BannerPermission
	// BannerUnhideConfirm: the caller may see the deleted revision but has to ask for it explicitly.
	BannerUnhideConfirm
	// BannerViewingDeleted: deleted content is being shown.
	BannerViewingDeleted
	BannerStale
)

type Banner struct {
	Kind       BannerKind
	Suppressed bool
	// Link is the URL that reveals the content, for BannerUnhideConfirm.
	Link string
}

// Meta is the information the HTTP layer needs besides the body.
type Meta struct {
	RevisionID   int64
	Robots       RobotPolicy
	NotFound     bool
	Stale        bool
	MaxAge       time.Duration
	LastModified time.Time
}

// OutputPlan tells the presentation layer what to emit for a view request.
type OutputPlan struct {
	Kind PlanKind
	Page PageRef
	// Revision is the revision the plan is about, when there is one.
	Revision          *RevisionRef
	OldRevisionHeader bool
	Banner            Banner
	Output            *RenderedOutput
	// Below holds the rendered new revision shown under a diff.
	Below        *RenderedOutput
	Options      RenderOptions
	CacheWrite   bool
	FetchFailure FetchFailure
	// MissingRevID is set on not-found fetch errors caused by an unknown revision id.
	MissingRevID int64
	URL          string
	Meta         Meta
	// Err is kept for logging; it is never shown to the reader.
	Err error
}
