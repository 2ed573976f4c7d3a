package impl

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/db/impl/queries"
	"github.com/sidereusnuntius/pageview/internal/domain"
)

func (d *dbImpl) GetPage(ctx context.Context, id int64) (domain.PageRef, error) {
	p, err := d.queries.GetPage(ctx, id)
	if err != nil {
		return domain.PageRef{}, d.HandleError(err)
	}
	return toPageRef(p), nil
}

func (d *dbImpl) GetPageByTitle(ctx context.Context, namespace int, title string) (domain.PageRef, error) {
	p, err := d.queries.GetPageByTitle(ctx, queries.GetPageByTitleParams{
		Namespace: int64(namespace),
		Title:     title,
	})
	if err != nil {
		return domain.PageRef{}, d.HandleError(err)
	}
	return toPageRef(p), nil
}

func (d *dbImpl) CreatePage(ctx context.Context, namespace int, title string, edit db.Edit) (page domain.PageRef, rev domain.RevisionRef, err error) {
	log.Debug().
		Str("title", title).
		Int("namespace", namespace).
		Msg("creating page")

	err = d.WithTx(func(tx *queries.Queries) error {
		id, err := tx.InsertPage(ctx, queries.InsertPageParams{
			Namespace: int64(namespace),
			Title:     title,
		})
		if err != nil {
			return d.HandleError(err)
		}

		page = domain.PageRef{ID: id, Namespace: namespace, Title: title}
		rev, err = d.insertRevision(ctx, tx, page, 0, edit)
		return err
	})
	return
}

func (d *dbImpl) DeletePage(ctx context.Context, page domain.PageRef, actorID int64, reason string) error {
	return d.WithTx(func(tx *queries.Queries) error {
		n, err := tx.ArchiveRevisions(ctx, page.ID)
		if err != nil {
			return d.HandleError(err)
		}
		if n == 0 {
			return fmt.Errorf("page %d has no revisions: %w", page.ID, db.ErrNotFound)
		}

		err = tx.SetLatestRevision(ctx, queries.SetLatestRevisionParams{ID: page.ID})
		if err != nil {
			return d.HandleError(err)
		}

		return d.HandleError(tx.InsertDeletionLog(ctx, queries.InsertDeletionLogParams{
			PageID:  page.ID,
			ActorID: nullID(actorID),
			Reason:  reason,
			Created: d.now().Unix(),
		}))
	})
}
