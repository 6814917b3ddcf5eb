package port

import (
	"context"

	"omniflow-broadcast/internal/core/domain"
)

// StatsCache is an optional read-through cache for campaign stats. Get
// returns (nil, nil) on a miss. Cache failures are advisory; the engine
// falls back to the repository.
type StatsCache interface {
	Get(ctx context.Context, campaignID string) (*domain.CampaignStats, error)
	Set(ctx context.Context, campaignID string, stats *domain.CampaignStats) error
	Invalidate(ctx context.Context, campaignID string) error
}
