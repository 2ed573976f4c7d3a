package domain

type FetchFailure string

const (
	FetchOK         FetchFailure = ""
	FetchNotFound   FetchFailure = "not-found"
	FetchPermission FetchFailure = "permission"
)

// FetchOutcome is either a revision that may be loaded, or the reason it may not. A failed outcome keeps
// the page identity and revision id for the error message and nothing else.
type FetchOutcome struct {
	Revision *RevisionRef
	Failure  FetchFailure
	Page     PageRef
	RevID    int64
}

func FetchSucceeded(page PageRef, rev RevisionRef) FetchOutcome {
	return FetchOutcome{Revision: &rev, Page: page, RevID: rev.ID}
}

func FetchFailed(page PageRef, revID int64, reason FetchFailure) FetchOutcome {
	return FetchOutcome{Failure: reason, Page: page, RevID: revID}
}

func (o FetchOutcome) OK() bool {
	return o.Failure == FetchOK && o.Revision != nil
}
