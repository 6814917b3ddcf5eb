package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omniflow-broadcast/internal/core/domain"
)

func newTestCache(t *testing.T) (*StatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStatsCache(rdb, 30*time.Second), mr
}

func TestStatsCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	want := &domain.CampaignStats{Total: 10, Pending: 2, Sent: 6, Failed: 2}
	require.NoError(t, cache.Set(ctx, "camp-1", want))

	got, err := cache.Get(ctx, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStatsCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "camp-1", &domain.CampaignStats{Total: 1}))
	require.NoError(t, cache.Invalidate(ctx, "camp-1"))

	got, err := cache.Get(ctx, "camp-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "camp-1", &domain.CampaignStats{Total: 1}))
	mr.FastForward(31 * time.Second)

	got, err := cache.Get(ctx, "camp-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsCache_KeysAreScopedPerCampaign(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "camp-1", &domain.CampaignStats{Total: 1}))
	require.NoError(t, cache.Set(ctx, "camp-2", &domain.CampaignStats{Total: 2}))
	require.NoError(t, cache.Invalidate(ctx, "camp-1"))

	got, err := cache.Get(ctx, "camp-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Total)
}
