package impl

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"

	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	hostname, _ := url.Parse("https://test.wiki")
	cfg := config.Configuration{
		Url:       hostname,
		MediaType: config.Markdown,
	}
	d, err := initialization.OpenDB("file:temp?mode=memory&cache=shared")
	if err != nil {
		os.Exit(1)
	}

	err = initialization.SetupDB(d, "../../../migrations", "temp")
	if err != nil {
		os.Exit(1)
	}
	DB = New(cfg, d)
	os.Exit(m.Run())
}

func createPage(t *testing.T, title string, contents ...string) (domain.PageRef, []domain.RevisionRef) {
	t.Helper()
	page, first, err := DB.CreatePage(ctx, domain.NamespaceMain, title, db.Edit{
		Username: "sarah",
		Comment:  "created",
		Content:  contents[0],
	})
	if err != nil {
		t.Fatal("failed to create page:", err)
	}

	revs := []domain.RevisionRef{first}
	for _, c := range contents[1:] {
		rev, err := DB.AddRevision(ctx, page, db.Edit{Username: "sarah", Content: c})
		if err != nil {
			t.Fatal("failed to add revision:", err)
		}
		revs = append(revs, rev)
	}
	return page, revs
}

func TestRevisionHistory(t *testing.T) {
	page, revs := createPage(t, "History", "one", "two", "three")

	current, err := DB.GetCurrent(ctx, page)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if current.ID != revs[2].ID || !current.Current {
		t.Errorf("expected %d to be current, got %+v", revs[2].ID, current)
	}
	if current.ParentID != revs[1].ID {
		t.Errorf("expected parent %d, got %d", revs[1].ID, current.ParentID)
	}

	old, err := DB.GetRevisionByID(ctx, revs[0].ID)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if old.Current || old.PageID != page.ID || old.Username != "sarah" || old.Comment != "created" {
		t.Errorf("unexpected revision %+v", old)
	}

	next, err := DB.GetNext(ctx, old)
	if err != nil || next.ID != revs[1].ID {
		t.Errorf("expected next to be %d, got %d (%v)", revs[1].ID, next.ID, err)
	}
	prev, err := DB.GetPrevious(ctx, current)
	if err != nil || prev.ID != revs[1].ID {
		t.Errorf("expected previous to be %d, got %d (%v)", revs[1].ID, prev.ID, err)
	}

	if _, err = DB.GetNext(ctx, current); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound after the last revision, got %v", err)
	}
	if _, err = DB.GetPrevious(ctx, old); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound before the first revision, got %v", err)
	}

	content, model, err := DB.GetContent(ctx, revs[1].ID)
	if err != nil || content != "two" || model != config.Markdown {
		t.Errorf("unexpected content %q (%s): %v", content, model, err)
	}
}

func TestGetPageByTitle(t *testing.T) {
	page, _ := createPage(t, "Lookup Test", "text")

	found, err := DB.GetPageByTitle(ctx, domain.NamespaceMain, "Lookup Test")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if found != page {
		t.Errorf("expected %+v, got %+v", page, found)
	}

	if _, err = DB.GetPageByTitle(ctx, domain.NamespaceMain, "Never Written"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err = DB.GetPageByTitle(ctx, domain.NamespaceHelp, "Lookup Test"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("namespaces are not kept apart: %v", err)
	}
}

func TestDeletePage(t *testing.T) {
	page, revs := createPage(t, "Doomed", "one", "two")

	if err := DB.DeletePage(ctx, page, 0, "test"); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if _, err := DB.GetCurrent(ctx, page); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("deleted page still has a current revision: %v", err)
	}
	if _, err := DB.GetRevisionByID(ctx, revs[0].ID); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("archived revision is still visible: %v", err)
	}
	if err := DB.DeletePage(ctx, page, 0, "again"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected deleting twice to fail with ErrNotFound, got %v", err)
	}

	recreated, rev, err := DB.CreatePage(ctx, domain.NamespaceMain, "Doomed", db.Edit{Content: "back"})
	if err != nil {
		t.Fatal("failed to recreate page:", err)
	}
	if recreated.ID != page.ID || !rev.Current || rev.ParentID != 0 {
		t.Errorf("unexpected recreation %+v, %+v", recreated, rev)
	}
}

func TestSetRevisionDeleted(t *testing.T) {
	_, revs := createPage(t, "Hidden", "secret", "public")

	flags := domain.DeletedText | domain.DeletedRestricted
	if err := DB.SetRevisionDeleted(ctx, revs[0].ID, flags); err != nil {
		t.Fatal("unexpected error:", err)
	}

	rev, err := DB.GetRevisionByID(ctx, revs[0].ID)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if rev.Deleted != flags || !rev.Suppressed() {
		t.Errorf("expected flags %d, got %d", flags, rev.Deleted)
	}

	if err = DB.SetRevisionDeleted(ctx, 1<<40, flags); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAccounts(t *testing.T) {
	account := domain.Account{
		Username:   "maria",
		Email:      "maria@test.wiki",
		Password:   "$2a$10$not.a.real.hash",
		Admin:      true,
		Suppressor: true,
	}

	id, err := DB.InsertUser(ctx, account)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	byName, err := DB.GetAuthDataByUsername(ctx, "maria")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if byName.UserID != id || !byName.Admin || !byName.Suppressor || byName.Password != account.Password {
		t.Errorf("unexpected account %+v", byName)
	}

	byEmail, err := DB.GetAuthDataByEmail(ctx, "maria@test.wiki")
	if err != nil || byEmail != byName {
		t.Errorf("lookup by email returned %+v (%v)", byEmail, err)
	}
	byID, err := DB.GetAccount(ctx, id)
	if err != nil || byID != byName {
		t.Errorf("lookup by id returned %+v (%v)", byID, err)
	}

	if _, err = DB.InsertUser(ctx, account); !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if _, err = DB.GetAuthDataByUsername(ctx, "nobody"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
