package domain

import "strings"

type Direction int

const (
	DirectionNone Direction = iota
	DirectionPrev
	DirectionNext
)

func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prev":
		return DirectionPrev
	case "next":
		return DirectionNext
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionPrev:
		return "prev"
	case DirectionNext:
		return "next"
	default:
		return "none"
	}
}

// ViewRequest holds everything a single page view was asked for. It is built from the query string and
// thrown away once the response is written.
type ViewRequest struct {
	Page PageRef
	// OldID is the explicitly requested revision; 0 means the latest one.
	OldID     int64
	Direction Direction
	Diff      bool
	// DiffNewID is the newer side of a diff; 0 means the current revision.
	DiffNewID int64
	// DiffOnly suppresses the rendering of the new revision below a diff.
	DiffOnly  bool
	Unhide    bool
	Printable bool
	// NoRedirect is set on the URL the controller redirects to at the end of the history. It only suppresses
	// that same redirect.
	NoRedirect bool
}

func (r ViewRequest) Options(language string) RenderOptions {
	return RenderOptions{
		Printable: r.Printable,
		Language:  language,
	}
}

// HookContext is what extension hooks get to look at before the default view logic runs.
type HookContext struct {
	Request ViewRequest
	View    ResolvedView
	UserID  int64
}
