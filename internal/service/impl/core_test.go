package core

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/pageview/internal/config"
	dbimpl "github.com/sidereusnuntius/pageview/internal/db/impl"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/initialization"
	"github.com/sidereusnuntius/pageview/internal/mocks"
	"github.com/sidereusnuntius/pageview/internal/service"
	"go.uber.org/mock/gomock"
)

var (
	cfg config.Configuration
	s   *AppService
	ctx = context.Background()
)

func TestMain(m *testing.M) {
	hostname, _ := url.Parse("https://test.wiki")
	cfg = config.Configuration{
		Url:       hostname,
		MediaType: config.Markdown,
	}
	d, err := initialization.OpenDB("file:service?mode=memory&cache=shared")
	if err != nil {
		os.Exit(1)
	}
	if err = initialization.SetupDB(d, "../../../migrations", "service"); err != nil {
		os.Exit(1)
	}

	s = &AppService{
		Config: cfg,
		DB:     dbimpl.New(cfg, d),
	}
	os.Exit(m.Run())
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	id, err := s.CreateUser(ctx, " Alice ", "correct horse", "Alice@Test.Wiki", true, false)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		user     string
		password string
		ok       bool
	}{
		{"username", "alice", "correct horse", true},
		{"email", "alice@test.wiki", "correct horse", true},
		{"upper case", "ALICE", "correct horse", true},
		{"wrong password", "alice", "wrong horse", false},
		{"unknown user", "bob", "correct horse", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u, ok, err := s.AuthenticateUser(ctx, c.user, c.password)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if ok != c.ok {
				t.Fatalf("authenticated = %v, want %v", ok, c.ok)
			}
			if ok && (u.UserID != id || u.Username != "alice" || !u.Admin) {
				t.Errorf("unexpected account: %+v", u)
			}
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		_, ok, err := s.AuthenticateUser(ctx, "alice", "short")
		if ok || !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v, %v", ok, err)
		}
	})

	t.Run("taken", func(t *testing.T) {
		_, err := s.CreateUser(ctx, "alice", "correct horse", "other@test.wiki", false, false)
		if !errors.Is(err, service.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("invalid form", func(t *testing.T) {
		_, err := s.CreateUser(ctx, "carol", "short", "carol", false, false)
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestAuthority(t *testing.T) {
	id, err := s.CreateUser(ctx, "sam", "correct horse", "sam@test.wiki", false, true)
	if err != nil {
		t.Fatal(err)
	}

	auth, err := s.Authority(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	a := auth.(service.Authority)
	if a.UserID() != id || !a.Account.Suppressor || a.Account.Password != "" {
		t.Errorf("unexpected authority: %+v", a)
	}

	anon, err := s.Authority(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(service.Authority{}, anon); diff != "" {
		t.Error(diff)
	}

	if _, err = s.Authority(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindPage(t *testing.T) {
	page, err := s.FindPage(ctx, "Never_Written")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(domain.PageRef{Title: "Never Written"}, page); diff != "" {
		t.Error(diff)
	}

	if _, err = s.FindPage(ctx, "A|B"); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	purger := mocks.NewMockPurger(ctrl)
	svc := *s
	svc.Purger = purger

	purger.EXPECT().EnqueuePurge(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	first, err := svc.Edit(ctx, "Edited_Page", "# Hello", "created", 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Edit(ctx, "Edited Page", "# Hello, world", "typo", 0)
	if err != nil {
		t.Fatal(err)
	}
	if second.PageID != first.PageID || second.ParentID != first.ID || !second.Current {
		t.Errorf("expected a new current revision of the same page: %+v, %+v", first, second)
	}

	page, err := svc.FindPage(ctx, "Edited_Page")
	if err != nil {
		t.Fatal(err)
	}
	if page.ID != first.PageID {
		t.Errorf("FindPage returned page %d, want %d", page.ID, first.PageID)
	}

	if err = svc.HideRevision(ctx, first.ID, domain.DeletedText|domain.DeletedComment); err != nil {
		t.Fatal(err)
	}
	hidden, err := svc.DB.GetRevisionByID(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !hidden.TextDeleted() || !hidden.Deleted.Has(domain.DeletedComment) {
		t.Errorf("expected the revision to be hidden, got flags %b", hidden.Deleted)
	}

	if err = svc.HideRevision(ctx, second.ID, domain.DeletedText); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("hiding the current text: expected ErrInvalidInput, got %v", err)
	}

	if err = svc.HideRevision(ctx, 99999, domain.DeletedText); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
