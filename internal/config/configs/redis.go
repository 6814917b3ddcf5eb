package configs

import "time"

// Redis configures the optional campaign stats cache. Leaving Addr empty
// disables the cache entirely; the engine then always reads stats from
// PostgreSQL.
type Redis struct {
	Addr     string        `env:"ADDR" envDefault:""`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"5s"`
}

// Enabled reports whether a cache address was configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}
