package domain

import "time"

// DeletionFlags mirrors the per-field visibility bits stored with each revision.
type DeletionFlags uint8

const (
	DeletedText DeletionFlags = 1 << iota
	DeletedComment
	DeletedUser
	// DeletedRestricted turns an ordinary deletion into a suppression: the fields it accompanies are hidden
	// even from users allowed to see deleted content.
	DeletedRestricted
)

func (f DeletionFlags) Has(field DeletionFlags) bool {
	return f&field == field
}

// RevisionRef is an immutable snapshot of a page. Its content is loaded separately, so a RevisionRef is
// cheap enough to pass around while deciding what to render.
type RevisionRef struct {
	ID        int64
	PageID    int64
	ParentID  int64
	Timestamp time.Time
	UserID    int64
	Username  string
	Comment   string
	Deleted   DeletionFlags
	// Current is relative to the page at the moment the revision was loaded. It must not outlive the request.
	Current bool
}

func (r RevisionRef) TextDeleted() bool {
	return r.Deleted.Has(DeletedText)
}

func (r RevisionRef) Suppressed() bool {
	return r.Deleted.Has(DeletedRestricted)
}
