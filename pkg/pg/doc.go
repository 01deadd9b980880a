// Package pg bootstraps the PostgreSQL layer behind the durable barrier
// store: a pgx/v5 connection pool with retrying startup, goose schema
// migrations, a readiness probe, and error classification helpers.
//
// The pieces are deliberately small and composable:
//
//   - Config carries pool limits, retry policy, and migration paths,
//     parsed from the environment via pkg/config.
//   - Connect opens a *pgxpool.Pool and retries with a linearly growing
//     backoff until the database answers a ping.
//   - Migrate applies the goose SQL migrations (the idempotency barrier
//     table lives under migrations/) before the service takes traffic.
//   - Healthcheck exposes the pool as a probe function for readiness
//     endpoints.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//
//	store, err := idempotency.NewPostgresStore(pool)
//
// # Error Handling
//
// Helpers such as [IsNotFoundError] and [IsDuplicateKeyError] classify
// pgx and *pgconn.PgError values through errors.Is/As, so callers never
// match on SQLSTATE strings themselves. The barrier store leans on
// IsDuplicateKeyError to tell an acquisition race from a real failure.
package pg
