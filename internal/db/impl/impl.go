package impl

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/config"
	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/db/impl/queries"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

type dbImpl struct {
	Config  config.Configuration
	db      *sql.DB
	queries *queries.Queries
	now     func() time.Time
}

func New(config config.Configuration, d *sql.DB) db.DB {
	return &dbImpl{
		Config:  config,
		db:      d,
		queries: queries.New(d),
		now:     time.Now,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return db.ErrConflict
	}

	log.Error().Err(err).Msg("database error")
	return err
}

func (d *dbImpl) WithTx(f func(tx *queries.Queries) error) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(d.queries.WithTx(tx))
	return
}

func toRevisionRef(r queries.Revision) domain.RevisionRef {
	return domain.RevisionRef{
		ID:        r.ID,
		PageID:    r.PageID,
		ParentID:  r.ParentID.Int64,
		Timestamp: time.Unix(r.Created, 0).UTC(),
		UserID:    r.UserID.Int64,
		Username:  r.Username,
		Comment:   r.Comment,
		Deleted:   domain.DeletionFlags(r.Deleted),
		Current:   r.Current,
	}
}

func toPageRef(p queries.Page) domain.PageRef {
	return domain.PageRef{
		ID:        p.ID,
		Namespace: int(p.Namespace),
		Title:     p.Title,
	}
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{
		Valid: id != 0,
		Int64: id,
	}
}
