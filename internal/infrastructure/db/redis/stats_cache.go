package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cv360/marketplace/internal/core/ports"
)

const (
	statsKey        = "admin:stats"
	defaultStatsTTL = 10 * time.Minute
)

// StatsCache stores the admin dashboard aggregates as a JSON blob with a
// TTL, so repeated dashboard loads do not fan out count queries to Mongo.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
// If ttl <= 0, defaultStatsTTL is used.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached stats, or (nil, nil) when the key is absent or
// the payload does not decode.
func (c *StatsCache) Get(ctx context.Context) (*ports.AdminStats, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// Stale or foreign payload, treat as a miss.
		return nil, nil
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *ports.AdminStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, statsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
