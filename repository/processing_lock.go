// ABOUTME: Advisory per-article processing lock backed by Redis SET NX EX
// ABOUTME: The TTL bounds how long a crashed transformation can block an article
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockKeyPrefix = "news-remix:processing:"

// lockClient is the slice of go-redis used by the lock repository.
type lockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type processingLockRepository struct {
	client lockClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewProcessingLockRepository creates a Redis-backed advisory lock store.
func NewProcessingLockRepository(client lockClient, ttl time.Duration, logger *slog.Logger) ProcessingLockRepository {
	return &processingLockRepository{client: client, ttl: ttl, logger: logger}
}

func (r *processingLockRepository) Acquire(ctx context.Context, articleID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, lockKeyPrefix+articleID, "1", r.ttl).Result()
	if err != nil {
		// The lock is advisory. A broken lock store must not take the
		// transform pipeline down with it, so proceed unlocked.
		r.logger.Warn("lock store unavailable, proceeding without lock",
			"article_id", articleID, "error", err)
		return true, nil
	}
	if !ok {
		r.logger.Warn("article lock busy", "article_id", articleID)
	}
	return ok, nil
}

func (r *processingLockRepository) Release(ctx context.Context, articleID string) error {
	if err := r.client.Del(ctx, lockKeyPrefix+articleID).Err(); err != nil {
		return fmt.Errorf("lock release failed for %s: %w", articleID, err)
	}
	return nil
}
