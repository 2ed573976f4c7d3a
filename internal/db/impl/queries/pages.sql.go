package queries

import (
	"context"
	"database/sql"
)

const getPage = `SELECT id, namespace, title, latest_rev FROM pages WHERE id = ?`

func (q *Queries) GetPage(ctx context.Context, id int64) (Page, error) {
	row := q.db.QueryRowContext(ctx, getPage, id)
	var i Page
	err := row.Scan(&i.ID, &i.Namespace, &i.Title, &i.LatestRev)
	return i, err
}

const getPageByTitle = `SELECT id, namespace, title, latest_rev FROM pages WHERE namespace = ? AND title = ?`

type GetPageByTitleParams struct {
	Namespace int64
	Title     string
}

func (q *Queries) GetPageByTitle(ctx context.Context, arg GetPageByTitleParams) (Page, error) {
	row := q.db.QueryRowContext(ctx, getPageByTitle, arg.Namespace, arg.Title)
	var i Page
	err := row.Scan(&i.ID, &i.Namespace, &i.Title, &i.LatestRev)
	return i, err
}

const insertPage = `INSERT INTO pages (namespace, title) VALUES (?, ?)
ON CONFLICT (namespace, title) DO UPDATE SET title = excluded.title
RETURNING id`

type InsertPageParams struct {
	Namespace int64
	Title     string
}

// InsertPage returns the id of the existing page when the title is taken, so that a deleted page can be
// recreated.
func (q *Queries) InsertPage(ctx context.Context, arg InsertPageParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, insertPage, arg.Namespace, arg.Title)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const setLatestRevision = `UPDATE pages SET latest_rev = ? WHERE id = ?`

type SetLatestRevisionParams struct {
	LatestRev sql.NullInt64
	ID        int64
}

func (q *Queries) SetLatestRevision(ctx context.Context, arg SetLatestRevisionParams) error {
	_, err := q.db.ExecContext(ctx, setLatestRevision, arg.LatestRev, arg.ID)
	return err
}

const archiveRevisions = `UPDATE revisions SET archived = TRUE WHERE page_id = ? AND archived = FALSE`

func (q *Queries) ArchiveRevisions(ctx context.Context, pageID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, archiveRevisions, pageID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const insertDeletionLog = `INSERT INTO deletion_log (page_id, actor_id, reason, created) VALUES (?, ?, ?, ?)`

type InsertDeletionLogParams struct {
	PageID  int64
	ActorID sql.NullInt64
	Reason  string
	Created int64
}

func (q *Queries) InsertDeletionLog(ctx context.Context, arg InsertDeletionLogParams) error {
	_, err := q.db.ExecContext(ctx, insertDeletionLog, arg.PageID, arg.ActorID, arg.Reason, arg.Created)
	return err
}
