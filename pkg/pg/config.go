package pg

import "time"

// Config describes the connection pool and migration settings, populated
// from the environment via pkg/config.
type Config struct {
	ConnectionString  string        `env:"PG_CONN_URL,required"`                   // postgres:// DSN of the barrier database
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`      // upper bound on pooled connections
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`       // connections the pool keeps warm
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`  // cadence of the pool's internal liveness probe
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"` // idle time before a connection is retired
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`  // total lifetime before a connection is recycled

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`  // connection attempts before Connect gives up
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"` // base wait between attempts, scaled linearly per attempt

	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"migrations"`         // directory holding the goose SQL migrations
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"` // goose version-tracking table
}
