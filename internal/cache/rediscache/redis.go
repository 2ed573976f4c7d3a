// Package rediscache shares the render cache between instances through Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/pageview/internal/cache"
	"github.com/sidereusnuntius/pageview/internal/domain"
	"github.com/sidereusnuntius/pageview/internal/view"
)

const prefix = "pageview:render:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewClient returns a Redis client that is known to be reachable.
func NewClient(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	log.Info().Str("addr", addr).Msg("connected to redis")
	return client, nil
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, page domain.PageRef, rev *domain.RevisionRef, opts domain.RenderOptions) (domain.RenderedOutput, error) {
	key := prefix + cache.Key(page, rev, opts)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RenderedOutput{}, view.ErrNotFound
		}
		return domain.RenderedOutput{}, fmt.Errorf("redis get %s: %w", key, err)
	}

	var out domain.RenderedOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.RenderedOutput{}, fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return out, nil
}

// Put stores the render under its own key, which expires. A render of the current revision is also kept as
// the page's latest render, which lasts until the page is purged.
func (c *Cache) Put(ctx context.Context, page domain.PageRef, rev domain.RevisionRef, opts domain.RenderOptions, out domain.RenderedOutput) error {
	if out.ExpiresAt.IsZero() && c.ttl > 0 {
		out.ExpiresAt = time.Now().Add(c.ttl)
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal cache value for page %d: %w", page.ID, err)
	}

	key := prefix + cache.Key(page, &rev, opts)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, payload, c.ttl)
		pipe.SAdd(ctx, indexKey(page), key)
		if rev.Current {
			latest := prefix + cache.LatestKey(page, opts)
			pipe.Set(ctx, latest, payload, 0)
			pipe.SAdd(ctx, indexKey(page), latest)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Purge(ctx context.Context, page domain.PageRef) error {
	index := indexKey(page)
	keys, err := c.client.SMembers(ctx, index).Result()
	if err != nil {
		return fmt.Errorf("redis smembers %s: %w", index, err)
	}

	keys = append(keys, index)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", index, err)
	}
	log.Debug().Int64("page", page.ID).Int("keys", len(keys)).Msg("purged renders from redis")
	return nil
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

func indexKey(page domain.PageRef) string {
	return prefix + strconv.FormatInt(page.ID, 10) + ":keys"
}
