package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// UsageStore counts generations made by free-plan users. Increment reserves a
// slot and returns the new count; Decrement gives a reserved slot back.
type UsageStore interface {
	Increment(ctx context.Context, userID string) (int, error)
	Decrement(ctx context.Context, userID string) error
}

type redisUsageStore struct {
	rdb *redis.Client
}

func NewUsageStore(rdb *redis.Client) UsageStore {
	return &redisUsageStore{rdb: rdb}
}

func usageKey(userID string) string {
	return "usage:" + userID
}

func (s *redisUsageStore) Increment(ctx context.Context, userID string) (int, error) {
	if s.rdb == nil {
		return 0, nil
	}

	n, err := s.rdb.Incr(ctx, usageKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment usage: %w", err)
	}
	return int(n), nil
}

func (s *redisUsageStore) Decrement(ctx context.Context, userID string) error {
	if s.rdb == nil {
		return nil
	}

	if err := s.rdb.Decr(ctx, usageKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to release usage: %w", err)
	}
	return nil
}
