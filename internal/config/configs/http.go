package configs

import "time"

// HTTP configures the inbound API server. A send batch is served
// synchronously by the execute endpoint, so the write timeout must exceed
// batchSize * delay for the largest batch operators are expected to
// request.
type HTTP struct {
	// Port is the TCP port the server listens on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading of a request, header included.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	// WriteTimeout bounds writing of a response. The default covers a
	// full default batch at the default pacing with headroom.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"120s"`
	// ShutdownTimeout is how long graceful shutdown waits for in-flight
	// requests before forcing connections closed.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
