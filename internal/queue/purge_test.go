package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/mocks"
	"go.uber.org/mock/gomock"
)

func TestPurgeJobConfig(t *testing.T) {
	cfg := PurgeJob{}.Config()
	if cfg.Name != PurgeQueue {
		t.Errorf("queue name = %q, want %q", cfg.Name, PurgeQueue)
	}
	if cfg.MaxAttempts < 2 {
		t.Errorf("purges should be retried, got %d attempts", cfg.MaxAttempts)
	}
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	page := domain.PageRef{ID: 7, Title: "Foo"}

	cases := []struct {
		name string
		err  error
	}{
		{"purged", nil},
		{"cache unavailable", errors.New("connection refused")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := mocks.NewMockRenderCache(ctrl)
			cache.EXPECT().Purge(gomock.Any(), page).Return(c.err)

			p := &Purger{cache: cache}
			err := p.purge()(ctx, PurgeJob{PageID: page.ID, Title: page.Title})
			if !errors.Is(err, c.err) {
				t.Errorf("expected %v, got %v", c.err, err)
			}
		})
	}
}
