package queries

import (
	"context"
	"database/sql"
)

const revisionColumns = `r.id, r.page_id, r.parent_id, r.created, r.user_id, r.username, r.comment, r.deleted, r.content_model,
	COALESCE(p.latest_rev = r.id, FALSE) AS current
FROM revisions r
JOIN pages p ON p.id = r.page_id`

func scanRevision(row *sql.Row) (Revision, error) {
	var i Revision
	err := row.Scan(
		&i.ID,
		&i.PageID,
		&i.ParentID,
		&i.Created,
		&i.UserID,
		&i.Username,
		&i.Comment,
		&i.Deleted,
		&i.ContentModel,
		&i.Current,
	)
	return i, err
}

const getCurrentRevision = `SELECT ` + revisionColumns + `
WHERE p.id = ? AND r.id = p.latest_rev`

func (q *Queries) GetCurrentRevision(ctx context.Context, pageID int64) (Revision, error) {
	return scanRevision(q.db.QueryRowContext(ctx, getCurrentRevision, pageID))
}

const getRevision = `SELECT ` + revisionColumns + `
WHERE r.id = ? AND r.archived = FALSE`

func (q *Queries) GetRevision(ctx context.Context, id int64) (Revision, error) {
	return scanRevision(q.db.QueryRowContext(ctx, getRevision, id))
}

const getNextRevision = `SELECT ` + revisionColumns + `
WHERE r.page_id = ? AND r.archived = FALSE AND (r.created > ? OR (r.created = ? AND r.id > ?))
ORDER BY r.created, r.id
LIMIT 1`

type NeighbourParams struct {
	PageID  int64
	Created int64
	ID      int64
}

func (q *Queries) GetNextRevision(ctx context.Context, arg NeighbourParams) (Revision, error) {
	return scanRevision(q.db.QueryRowContext(ctx, getNextRevision, arg.PageID, arg.Created, arg.Created, arg.ID))
}

const getPreviousRevision = `SELECT ` + revisionColumns + `
WHERE r.page_id = ? AND r.archived = FALSE AND (r.created < ? OR (r.created = ? AND r.id < ?))
ORDER BY r.created DESC, r.id DESC
LIMIT 1`

func (q *Queries) GetPreviousRevision(ctx context.Context, arg NeighbourParams) (Revision, error) {
	return scanRevision(q.db.QueryRowContext(ctx, getPreviousRevision, arg.PageID, arg.Created, arg.Created, arg.ID))
}

const getRevisionContent = `SELECT content, content_model FROM revisions WHERE id = ? AND archived = FALSE`

type GetRevisionContentRow struct {
	Content      string
	ContentModel string
}

func (q *Queries) GetRevisionContent(ctx context.Context, id int64) (GetRevisionContentRow, error) {
	row := q.db.QueryRowContext(ctx, getRevisionContent, id)
	var i GetRevisionContentRow
	err := row.Scan(&i.Content, &i.ContentModel)
	return i, err
}

const insertRevision = `INSERT INTO revisions (page_id, parent_id, created, user_id, username, comment, content, content_model)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`

type InsertRevisionParams struct {
	PageID       int64
	ParentID     sql.NullInt64
	Created      int64
	UserID       sql.NullInt64
	Username     string
	Comment      string
	Content      string
	ContentModel string
}

func (q *Queries) InsertRevision(ctx context.Context, arg InsertRevisionParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, insertRevision,
		arg.PageID,
		arg.ParentID,
		arg.Created,
		arg.UserID,
		arg.Username,
		arg.Comment,
		arg.Content,
		arg.ContentModel,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const setRevisionDeleted = `UPDATE revisions SET deleted = ? WHERE id = ?`

type SetRevisionDeletedParams struct {
	Deleted int64
	ID      int64
}

func (q *Queries) SetRevisionDeleted(ctx context.Context, arg SetRevisionDeletedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setRevisionDeleted, arg.Deleted, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
