package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
)

// StatsCache stores campaign stats under a short TTL so UI pollers do not
// hammer the recipient table between batches.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ port.StatsCache = (*StatsCache)(nil)

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func key(campaignID string) string {
	return fmt.Sprintf("broadcast:stats:%s", campaignID)
}

func (c *StatsCache) Get(ctx context.Context, campaignID string) (*domain.CampaignStats, error) {
	b, err := c.rdb.Get(ctx, key(campaignID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats domain.CampaignStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, campaignID string, stats *domain.CampaignStats) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(campaignID), b, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, campaignID string) error {
	return c.rdb.Del(ctx, key(campaignID)).Err()
}
