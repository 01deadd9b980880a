package pubsub

import "time"

// Config holds the configuration for the dispatch loop
type Config struct {
	PollInterval    time.Duration `env:"PUBSUB_POLL_INTERVAL" envDefault:"100ms"`
	HandlerTimeout  time.Duration `env:"PUBSUB_HANDLER_TIMEOUT" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"PUBSUB_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
