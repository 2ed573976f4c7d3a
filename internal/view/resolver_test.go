package view

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/mocks"
	"go.uber.org/mock/gomock"
)

var directions = []domain.Direction{domain.DirectionNone, domain.DirectionPrev, domain.DirectionNext}

func TestResolve_NoRevisions(t *testing.T) {
	r := NewResolver(newFakeStore(), wiki)

	for _, page := range []domain.PageRef{empty, unknown} {
		for _, oldID := range []int64{0, 55, 70, 100, 999} {
			for _, dir := range directions {
				name := fmt.Sprintf("%s/%d/%s", page.Title, oldID, dir)
				t.Run(name, func(t *testing.T) {
					v, err := r.Resolve(ctx, page, oldID, dir)
					if err != nil {
						t.Fatal("unexpected error:", err)
					}
					if v.Kind != domain.ViewMissing {
						t.Errorf("expected missing view, got %s", v.Kind)
					}
				})
			}
		}
	}
}

func TestResolve_ExplicitRevision(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, wiki)

	cases := []struct {
		id   int64
		kind domain.ViewKind
	}{
		{50, domain.ViewRenderOld},
		{55, domain.ViewRenderOld},
		{60, domain.ViewRenderOld},
		{100, domain.ViewRenderCurrent},
	}

	for _, c := range cases {
		t.Run(fmt.Sprint(c.id), func(t *testing.T) {
			v, err := r.Resolve(ctx, foo, c.id, domain.DirectionNone)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if err = v.Validate(); err != nil {
				t.Error(err)
			}
			if v.Kind != c.kind {
				t.Errorf("expected %s, got %s", c.kind, v.Kind)
			}
			if diff := cmp.Diff(store.rev(c.id), *v.Revision); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestResolve_Latest(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, wiki)

	v, err := r.Resolve(ctx, foo, 0, domain.DirectionNone)
	if err != nil {
		t.Fatal(err)
	}
	expected := domain.RenderCurrent(foo, store.rev(100))
	if diff := cmp.Diff(expected, v); diff != "" {
		t.Error(diff)
	}

	again, _ := r.Resolve(ctx, foo, 0, domain.DirectionNone)
	if diff := cmp.Diff(v, again); diff != "" {
		t.Errorf("resolution is not idempotent: %s", diff)
	}
}

func TestResolve_FollowsRevisionPage(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, wiki)

	v, err := r.Resolve(ctx, foo, 70, domain.DirectionNone)
	if err != nil {
		t.Fatal(err)
	}
	if v.Page != bar {
		t.Errorf("expected page %v, got %v", bar, v.Page)
	}
	if diff := cmp.Diff(domain.RenderOld(bar, store.rev(70)), v); diff != "" {
		t.Error(diff)
	}

	v, _ = r.Resolve(ctx, foo, 80, domain.DirectionNone)
	if v.Kind != domain.ViewRenderCurrent || v.Page != bar {
		t.Errorf("expected current revision of %s, got %s view of %s", bar.Title, v.Kind, v.Page.Title)
	}
}

func TestResolve_MissingRevision(t *testing.T) {
	r := NewResolver(newFakeStore(), wiki)

	v, err := r.Resolve(ctx, foo, 999, domain.DirectionNone)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(domain.MissingRevision(foo, 999), v); diff != "" {
		t.Error(diff)
	}
}

func TestResolve_Navigation(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, wiki)

	cases := []struct {
		name     string
		page     domain.PageRef
		oldID    int64
		dir      domain.Direction
		expected domain.ResolvedView
	}{
		{"next", foo, 55, domain.DirectionNext, domain.RedirectTo(foo, "https://test.wiki/a/Foo?oldid=60")},
		{"next of current", foo, 100, domain.DirectionNext, domain.RedirectToHistoryEnd(foo, "https://test.wiki/a/Foo?redirect=no")},
		{"prev", foo, 60, domain.DirectionPrev, domain.RedirectTo(foo, "https://test.wiki/a/Foo?oldid=55")},
		{"prev of earliest", foo, 50, domain.DirectionPrev, domain.RenderCurrent(foo, store.rev(100))},
		{"next across pages", foo, 70, domain.DirectionNext, domain.RedirectTo(bar, "https://test.wiki/a/Bar?oldid=80")},
		{"direction without oldid", foo, 0, domain.DirectionNext, domain.RenderCurrent(foo, store.rev(100))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := r.Resolve(ctx, c.page, c.oldID, c.dir)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if diff := cmp.Diff(c.expected, v); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestResolve_PrevOfEarliestMatchesLatest(t *testing.T) {
	r := NewResolver(newFakeStore(), wiki)

	fallback, err := r.Resolve(ctx, foo, 50, domain.DirectionPrev)
	if err != nil {
		t.Fatal(err)
	}
	latest, _ := r.Resolve(ctx, foo, 0, domain.DirectionNone)
	if diff := cmp.Diff(latest, fallback); diff != "" {
		t.Error(diff)
	}
}

func TestResolve_ReusesCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRevisionStore(ctrl)
	full := newFakeStore()

	current := full.rev(100)
	// GetRevisionByID is not expected: the current revision is already loaded.
	store.EXPECT().GetCurrent(gomock.Any(), foo).Return(current, nil)

	v, err := NewResolver(store, wiki).Resolve(ctx, foo, 100, domain.DirectionNone)
	if err != nil {
		t.Fatal(err)
	}

	lookup, _ := NewResolver(full, wiki).Resolve(ctx, foo, 100, domain.DirectionNone)
	if diff := cmp.Diff(lookup, v); diff != "" {
		t.Error(diff)
	}
}

func TestResolveDiff(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, wiki)
	rev := func(id int64) *domain.RevisionRef {
		x := store.rev(id)
		return &x
	}

	cases := []struct {
		name     string
		page     domain.PageRef
		oldID    int64
		newID    int64
		expected domain.ResolvedView
	}{
		{"last change", foo, 0, 0, domain.ShowDiff(foo, rev(60), store.rev(100))},
		{"explicit pair", foo, 50, 60, domain.ShowDiff(foo, rev(50), store.rev(60))},
		{"reversed pair", foo, 100, 55, domain.ShowDiff(foo, rev(55), store.rev(100))},
		{"creation", foo, 0, 50, domain.ShowDiff(foo, nil, store.rev(50))},
		{"unknown new side", foo, 0, 999, domain.MissingRevision(foo, 999)},
		{"unknown old side", foo, 998, 0, domain.MissingRevision(foo, 998)},
		{"no revisions", empty, 0, 0, domain.Missing(empty)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := r.ResolveDiff(ctx, c.page, c.oldID, c.newID)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if diff := cmp.Diff(c.expected, v); diff != "" {
				t.Error(diff)
			}
		})
	}
}
