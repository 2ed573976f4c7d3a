package queue

import (
	"context"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const (
	PurgeQueue = "Purge"
)

// PurgeJob removes every cached render of a page.
type PurgeJob struct {
	PageID int64
	Title  string
}

func (j PurgeJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        PurgeQueue,
		MaxAttempts: 5,
		Backoff:     5 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   12 * time.Hour,
			OnlyFailed: true,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

// Purger schedules cache purges on the task queue, so that a page deletion does not wait on a slow cache.
type Purger struct {
	queue *backlite.Client
	cache view.RenderCache
}

// New registers the purge queue and starts processing it.
func New(ctx context.Context, client *backlite.Client, cache view.RenderCache) *Purger {
	p := &Purger{
		queue: client,
		cache: cache,
	}
	client.Register(backlite.NewQueue[PurgeJob](p.purge()))
	client.Start(ctx)
	log.Info().Msg("started task queue")
	return p
}

func (p *Purger) EnqueuePurge(ctx context.Context, page domain.PageRef) error {
	log.Debug().Str("title", page.Title).Msg("enqueing purge task")
	_, err := p.queue.Add(PurgeJob{
		PageID: page.ID,
		Title:  page.Title,
	}).Save()
	return err
}

func (p *Purger) purge() func(context.Context, PurgeJob) error {
	return func(ctx context.Context, job PurgeJob) error {
		page := domain.PageRef{ID: job.PageID, Title: job.Title}
		if err := p.cache.Purge(ctx, page); err != nil {
			log.Error().Err(err).Str("title", job.Title).Msg("purge failed")
			return err
		}
		log.Debug().Str("title", job.Title).Msg("purged cached renders")
		return nil
	}
}
