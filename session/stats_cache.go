package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "stats:dashboard"

// StatsCache keeps the dashboard aggregation in redis for a short TTL so the
// stats endpoint does not hammer the loan registry on every poll.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (s *StatsCache) Get(ctx context.Context, dest any) (bool, error) {
	b, err := s.rdb.Get(ctx, statsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StatsCache) Set(ctx context.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, statsKey, b, s.ttl).Err()
}

func (s *StatsCache) Invalidate(ctx context.Context) error {
	return s.rdb.Del(ctx, statsKey).Err()
}
