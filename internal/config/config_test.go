package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.False(t, cfg.Psql.RunMigrations)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Dispatch.Enabled)
	assert.Equal(t, 15*time.Second, cfg.Dispatch.Interval)
	assert.Equal(t, 50, cfg.Dispatch.BatchSize)
	assert.Equal(t, 1000, cfg.Dispatch.DelayMs)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("DISPATCH_ENABLED", "true")
	t.Setenv("DISPATCH_INTERVAL", "1m")
	t.Setenv("CHANNEL_PHONE_WEBHOOK_URL", "http://gateway:9000/send")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.RunMigrations)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.Dispatch.Enabled)
	assert.Equal(t, time.Minute, cfg.Dispatch.Interval)
	assert.Equal(t, "http://gateway:9000/send", cfg.Channels.PhoneURL)
}

func TestLogger_UnknownValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}
