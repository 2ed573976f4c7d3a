package impl

import (
	"context"
	"fmt"

	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/db/impl/queries"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

func (d *dbImpl) GetCurrent(ctx context.Context, page domain.PageRef) (domain.RevisionRef, error) {
	r, err := d.queries.GetCurrentRevision(ctx, page.ID)
	if err != nil {
		return domain.RevisionRef{}, d.HandleError(err)
	}
	return toRevisionRef(r), nil
}

func (d *dbImpl) GetRevisionByID(ctx context.Context, id int64) (domain.RevisionRef, error) {
	r, err := d.queries.GetRevision(ctx, id)
	if err != nil {
		return domain.RevisionRef{}, d.HandleError(err)
	}
	return toRevisionRef(r), nil
}

func (d *dbImpl) GetNext(ctx context.Context, rev domain.RevisionRef) (domain.RevisionRef, error) {
	r, err := d.queries.GetNextRevision(ctx, neighbourOf(rev))
	if err != nil {
		return domain.RevisionRef{}, d.HandleError(err)
	}
	return toRevisionRef(r), nil
}

func (d *dbImpl) GetPrevious(ctx context.Context, rev domain.RevisionRef) (domain.RevisionRef, error) {
	r, err := d.queries.GetPreviousRevision(ctx, neighbourOf(rev))
	if err != nil {
		return domain.RevisionRef{}, d.HandleError(err)
	}
	return toRevisionRef(r), nil
}

func (d *dbImpl) GetContent(ctx context.Context, revID int64) (string, string, error) {
	c, err := d.queries.GetRevisionContent(ctx, revID)
	if err != nil {
		return "", "", d.HandleError(err)
	}
	return c.Content, c.ContentModel, nil
}

func (d *dbImpl) AddRevision(ctx context.Context, page domain.PageRef, edit db.Edit) (rev domain.RevisionRef, err error) {
	err = d.WithTx(func(tx *queries.Queries) error {
		var parent int64
		current, err := tx.GetCurrentRevision(ctx, page.ID)
		if err == nil {
			parent = current.ID
		} else if err = d.HandleError(err); err != db.ErrNotFound {
			return err
		}

		rev, err = d.insertRevision(ctx, tx, page, parent, edit)
		return err
	})
	return
}

func (d *dbImpl) SetRevisionDeleted(ctx context.Context, revID int64, flags domain.DeletionFlags) error {
	n, err := d.queries.SetRevisionDeleted(ctx, queries.SetRevisionDeletedParams{
		Deleted: int64(flags),
		ID:      revID,
	})
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return fmt.Errorf("revision %d: %w", revID, db.ErrNotFound)
	}
	return nil
}

// insertRevision saves the revision and points the page at it.
func (d *dbImpl) insertRevision(ctx context.Context, tx *queries.Queries, page domain.PageRef, parent int64, edit db.Edit) (domain.RevisionRef, error) {
	model := edit.ContentModel
	if model == "" {
		model = d.Config.MediaType
	}
	created := d.now().Unix()

	id, err := tx.InsertRevision(ctx, queries.InsertRevisionParams{
		PageID:       page.ID,
		ParentID:     nullID(parent),
		Created:      created,
		UserID:       nullID(edit.UserID),
		Username:     edit.Username,
		Comment:      edit.Comment,
		Content:      edit.Content,
		ContentModel: model,
	})
	if err != nil {
		return domain.RevisionRef{}, fmt.Errorf("failed to insert revision: %w", d.HandleError(err))
	}

	err = tx.SetLatestRevision(ctx, queries.SetLatestRevisionParams{
		LatestRev: nullID(id),
		ID:        page.ID,
	})
	if err != nil {
		return domain.RevisionRef{}, d.HandleError(err)
	}

	r, err := tx.GetRevision(ctx, id)
	if err != nil {
		return domain.RevisionRef{}, d.HandleError(err)
	}
	return toRevisionRef(r), nil
}

func neighbourOf(rev domain.RevisionRef) queries.NeighbourParams {
	return queries.NeighbourParams{
		PageID:  rev.PageID,
		Created: rev.Timestamp.Unix(),
		ID:      rev.ID,
	}
}
