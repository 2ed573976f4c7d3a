package impl

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

func mockDB(t *testing.T) (db.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return New(config.Configuration{MediaType: config.Markdown}, conn), mock
}

func TestHandleError(t *testing.T) {
	broken := errors.New("disk I/O error")
	cases := []struct {
		name     string
		err      error
		expected error
	}{
		{"no rows", sql.ErrNoRows, db.ErrNotFound},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, db.ErrConflict},
		{"other", broken, broken},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, mock := mockDB(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT id, namespace, title, latest_rev FROM pages WHERE id = ?")).
				WithArgs(int64(7)).
				WillReturnError(c.err)

			_, err := d.GetPage(ctx, 7)
			if !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestInsertUserRollsBack(t *testing.T) {
	d, mock := mockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
	mock.ExpectRollback()

	_, err := d.InsertUser(ctx, domain.Account{Username: "alice", Email: "alice@test.wiki", Password: "hash"})
	if !errors.Is(err, db.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
