package config

import (
	"github.com/caarlos0/env/v11"

	"omniflow-broadcast/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields are
// populated from environment variables using the caarlos0/env library; the
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// defaults. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional stats cache (REDIS_ prefix). The cache
	// is disabled when no address is set.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Dispatch configures the optional internal dispatch loop
	// (DISPATCH_ prefix).
	Dispatch configs.Dispatch `envPrefix:"DISPATCH_"`

	// Channels configures the channel gateway webhooks (CHANNEL_ prefix).
	Channels configs.Channels `envPrefix:"CHANNEL_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no environment variable
// is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
