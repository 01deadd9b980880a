package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrFailedToOpenDBConnection is returned when every connection attempt failed
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")

	// ErrEmptyConnectionString is returned when no DSN is configured
	ErrEmptyConnectionString = errors.New("empty postgres connection string, use PG_CONN_URL env var")

	// ErrHealthcheckFailed wraps ping failures reported by Healthcheck
	ErrHealthcheckFailed = errors.New("healthcheck failed, connection is not available")

	// ErrFailedToParseDBConfig is returned when the DSN cannot be parsed
	ErrFailedToParseDBConfig = errors.New("failed to parse db config")

	// ErrFailedToApplyMigrations wraps any goose failure during Migrate
	ErrFailedToApplyMigrations = errors.New("failed to apply migrations")

	// ErrMigrationsDirNotFound is returned when the configured migrations path does not exist
	ErrMigrationsDirNotFound = errors.New("migrations directory not found")

	// ErrMigrationPathNotProvided is returned when the migrations path is empty
	ErrMigrationPathNotProvided = errors.New("migration path not provided")
)

// IsNotFoundError reports whether err means the query matched no rows.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrNoRows)
}

// IsTxClosedError reports whether err came from using an already closed
// transaction.
func IsTxClosedError(err error) bool {
	return err != nil && errors.Is(err, pgx.ErrTxClosed)
}

// IsDuplicateKeyError reports a unique constraint violation (SQLSTATE
// 23505). The barrier store treats these as lost acquisition races, not
// failures.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolationError reports a referential integrity violation
// (SQLSTATE 23503).
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
