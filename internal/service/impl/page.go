package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/db"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/service"
	"github.com/sidereusnuntius/pageview/internal/validate"
)

func (s *AppService) FindPage(ctx context.Context, key string) (domain.PageRef, error) {
	title := domain.TitleFromKey(key)
	if err := validate.Title(title); err != nil {
		return domain.PageRef{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	page, err := s.DB.GetPageByTitle(ctx, domain.NamespaceMain, title)
	if errors.Is(err, db.ErrNotFound) {
		return domain.PageRef{Namespace: domain.NamespaceMain, Title: title}, nil
	}
	return page, err
}

func (s *AppService) Edit(ctx context.Context, title, content, comment string, userID int64) (domain.RevisionRef, error) {
	page, err := s.FindPage(ctx, title)
	if err != nil {
		return domain.RevisionRef{}, err
	}

	edit := db.Edit{
		UserID:  userID,
		Comment: comment,
		Content: content,
	}
	if userID != 0 {
		account, err := s.DB.GetAccount(ctx, userID)
		if err != nil {
			return domain.RevisionRef{}, fmt.Errorf("failed to load editor %d: %w", userID, err)
		}
		edit.Username = account.Username
	}

	var rev domain.RevisionRef
	if page.Exists() {
		rev, err = s.DB.AddRevision(ctx, page, edit)
	} else {
		page, rev, err = s.DB.CreatePage(ctx, page.Namespace, page.Title, edit)
	}
	if err != nil {
		return domain.RevisionRef{}, err
	}

	log.Info().
		Str("title", page.Title).
		Int64("revision", rev.ID).
		Int64("user", userID).
		Msg("page edited")

	s.purge(ctx, page)
	return rev, nil
}

func (s *AppService) HideRevision(ctx context.Context, revID int64, flags domain.DeletionFlags) error {
	rev, err := s.DB.GetRevisionByID(ctx, revID)
	if err != nil {
		return err
	}
	// A page's current text can only be removed by deleting the page or editing over it.
	if rev.Current && flags.Has(domain.DeletedText) {
		return fmt.Errorf("%w: the text of the current revision can't be hidden", service.ErrInvalidInput)
	}
	page, err := s.DB.GetPage(ctx, rev.PageID)
	if err != nil {
		return err
	}

	if err = s.DB.SetRevisionDeleted(ctx, revID, flags); err != nil {
		return err
	}

	s.purge(ctx, page)
	return nil
}

// purge is best effort: a render left behind is still discarded when its revision stops being current.
func (s *AppService) purge(ctx context.Context, page domain.PageRef) {
	if s.Purger == nil {
		return
	}
	if err := s.Purger.EnqueuePurge(ctx, page); err != nil {
		log.Error().Err(err).Str("title", page.Title).Msg("failed to enqueue purge")
	}
}
