package mongo

import "time"

// Config describes how to reach the MongoDB deployment backing the
// barrier store, populated from the environment via pkg/config.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // mongodb:// or mongodb+srv:// URI
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // per-attempt dial budget
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // upper bound on pooled connections
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // connections the driver keeps warm
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // idle time before a connection is retired
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // driver-level write retries
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // driver-level read retries
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // connection attempts before New gives up
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // wait between attempts
}
