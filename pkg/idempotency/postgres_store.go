package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/dispatchkit/pkg/pg"
)

// PostgresStore implements Store on PostgreSQL. The acquire step is a
// single INSERT ... ON CONFLICT statement, so the database's unique key
// constraint arbitrates concurrent acquisitions; all expiry comparisons
// use the database clock. The backing table ships in migrations/.
type PostgresStore struct {
	pool  *pgxpool.Pool
	table string
}

// PostgresStoreOption configures a PostgresStore.
type PostgresStoreOption func(*PostgresStore)

// WithTable overrides the barrier table name.
func WithTable(table string) PostgresStoreOption {
	return func(ps *PostgresStore) {
		if table != "" {
			ps.table = table
		}
	}
}

// NewPostgresStore creates a barrier store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool, opts ...PostgresStoreOption) (*PostgresStore, error) {
	if pool == nil {
		return nil, ErrClientNil
	}

	ps := &PostgresStore{
		pool:  pool,
		table: "idempotency_barriers",
	}

	for _, opt := range opts {
		opt(ps)
	}

	return ps, nil
}

func (ps *PostgresStore) Acquire(ctx context.Context, key, operation string, ttl time.Duration) (Acquisition, error) {
	if err := validateAcquire(key, operation, ttl); err != nil {
		return Acquisition{}, err
	}

	// Insert wins when no row exists; the conditional upsert reclaims a
	// row whose barrier has expired. A live row matches neither branch,
	// so no row comes back and the acquisition is a conflict.
	query := `
		INSERT INTO ` + ps.table + ` (key, operation, token, expires_at, created_at)
		VALUES ($1, $2, $3, now() + make_interval(secs => $4), now())
		ON CONFLICT (key) DO UPDATE
		SET operation  = EXCLUDED.operation,
		    token      = EXCLUDED.token,
		    result     = NULL,
		    expires_at = EXCLUDED.expires_at,
		    created_at = EXCLUDED.created_at
		WHERE ` + ps.table + `.expires_at <= now()
		RETURNING token`

	var token uuid.UUID
	err := ps.pool.QueryRow(ctx, query, key, operation, uuid.New(), ttl.Seconds()).Scan(&token)
	if err == nil {
		return Acquisition{Acquired: true}, nil
	}
	if !isAcquireConflict(err) {
		return Acquisition{}, err
	}

	// Conflict path: read the live barrier's recorded result, if any.
	var result []byte
	err = ps.pool.QueryRow(ctx,
		`SELECT result FROM `+ps.table+` WHERE key = $1 AND expires_at > now()`,
		key,
	).Scan(&result)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The blocking barrier expired between the two statements;
			// report a plain conflict and let the caller retry.
			return Acquisition{Acquired: false}, nil
		}
		return Acquisition{}, err
	}

	return Acquisition{Acquired: false, Result: result}, nil
}

// isAcquireConflict classifies upsert failures that mean "a live barrier
// won the race". No row back is the normal case; a unique violation can
// still escape ON CONFLICT when two acquisitions race to reclaim the
// same expired row, and is a conflict all the same.
func isAcquireConflict(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pg.IsDuplicateKeyError(err)
}

func (ps *PostgresStore) Complete(ctx context.Context, key string, result json.RawMessage) error {
	if key == "" {
		return ErrKeyEmpty
	}

	tag, err := ps.pool.Exec(ctx,
		`UPDATE `+ps.table+` SET result = $2 WHERE key = $1 AND expires_at > now()`,
		key, []byte(result),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBarrierNotFound
	}

	return nil
}
