package configs

import "time"

// Dispatch configures the internal dispatch loop. When disabled, campaigns
// are driven solely by external callers of the execute endpoint (cron/UI).
// BatchSize and DelayMs bound one batch per running campaign per tick;
// keep BatchSize * DelayMs well under Interval.
type Dispatch struct {
	Enabled   bool          `env:"ENABLED" envDefault:"false"`
	Interval  time.Duration `env:"INTERVAL" envDefault:"15s"`
	BatchSize int           `env:"BATCH_SIZE" envDefault:"50"`
	DelayMs   int           `env:"DELAY_MS" envDefault:"1000"`
}
