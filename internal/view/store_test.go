package view

import (
	"context"
	"net/url"
	"sort"
	"time"

	"github.com/sidereusnuntius/pageview/internal/domain"
)

var (
	ctx  = context.Background()
	base = time.Date(2025, 9, 25, 22, 0, 0, 0, time.UTC)
	wiki = Links{Base: mustURL("https://test.wiki")}

	foo   = domain.PageRef{ID: 1, Title: "Foo"}
	bar   = domain.PageRef{ID: 2, Title: "Bar"}
	empty = domain.PageRef{ID: 3, Title: "Empty"}
	// unknown has never been created.
	unknown = domain.PageRef{Title: "Unknown"}
)

// fakeStore keeps revisions in memory. A page's current revision is its highest id.
type fakeStore struct {
	pages map[int64]domain.PageRef
	revs  map[int64]domain.RevisionRef
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		pages: map[int64]domain.PageRef{},
		revs:  map[int64]domain.RevisionRef{},
	}
	for _, p := range []domain.PageRef{foo, bar, empty} {
		s.pages[p.ID] = p
	}
	s.add(foo, 50, 0)
	s.add(foo, 55, 0)
	s.add(foo, 60, 0)
	s.add(foo, 100, 0)
	s.add(bar, 70, 0)
	s.add(bar, 80, 0)
	return s
}

func (s *fakeStore) add(page domain.PageRef, id int64, flags domain.DeletionFlags) {
	s.revs[id] = domain.RevisionRef{
		ID:        id,
		PageID:    page.ID,
		Timestamp: base.Add(time.Duration(id) * time.Minute),
		Username:  "sarah",
		Deleted:   flags,
	}
}

func (s *fakeStore) history(pageID int64) []domain.RevisionRef {
	var h []domain.RevisionRef
	for _, r := range s.revs {
		if r.PageID == pageID {
			h = append(h, r)
		}
	}
	sort.Slice(h, func(i, j int) bool { return h[i].ID < h[j].ID })
	return h
}

func (s *fakeStore) withCurrent(r domain.RevisionRef) domain.RevisionRef {
	h := s.history(r.PageID)
	r.Current = h[len(h)-1].ID == r.ID
	return r
}

func (s *fakeStore) GetPage(_ context.Context, id int64) (domain.PageRef, error) {
	p, ok := s.pages[id]
	if !ok {
		return domain.PageRef{}, ErrNotFound
	}
	return p, nil
}

func (s *fakeStore) GetCurrent(_ context.Context, page domain.PageRef) (domain.RevisionRef, error) {
	h := s.history(page.ID)
	if len(h) == 0 {
		return domain.RevisionRef{}, ErrNotFound
	}
	return s.withCurrent(h[len(h)-1]), nil
}

func (s *fakeStore) GetRevisionByID(_ context.Context, id int64) (domain.RevisionRef, error) {
	r, ok := s.revs[id]
	if !ok {
		return domain.RevisionRef{}, ErrNotFound
	}
	return s.withCurrent(r), nil
}

func (s *fakeStore) GetNext(_ context.Context, rev domain.RevisionRef) (domain.RevisionRef, error) {
	for _, r := range s.history(rev.PageID) {
		if r.ID > rev.ID {
			return s.withCurrent(r), nil
		}
	}
	return domain.RevisionRef{}, ErrNotFound
}

func (s *fakeStore) GetPrevious(_ context.Context, rev domain.RevisionRef) (domain.RevisionRef, error) {
	h := s.history(rev.PageID)
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].ID < rev.ID {
			return s.withCurrent(h[i]), nil
		}
	}
	return domain.RevisionRef{}, ErrNotFound
}

func (s *fakeStore) rev(id int64) domain.RevisionRef {
	r, _ := s.GetRevisionByID(ctx, id)
	return r
}

// fakeAuthority answers every question with a fixed value.
type fakeAuthority struct {
	id         int64
	read       bool
	deleted    bool
	suppressed bool
	delete     bool
}

var (
	anonymous = fakeAuthority{read: true}
	admin     = fakeAuthority{id: 1, read: true, deleted: true, delete: true}
)

func (a fakeAuthority) UserID() int64 { return a.id }

func (a fakeAuthority) CanRead(context.Context, domain.PageRef) bool { return a.read }

func (a fakeAuthority) CanViewDeletedText(_ context.Context, rev domain.RevisionRef) bool {
	if rev.Suppressed() {
		return a.suppressed
	}
	return a.deleted || a.suppressed
}

func (a fakeAuthority) CanDelete(context.Context, domain.PageRef) bool { return a.delete }

func mustURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
