package idempotency

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsAcquireConflict(t *testing.T) {
	t.Parallel()

	t.Run("no row returned is a conflict", func(t *testing.T) {
		t.Parallel()

		assert.True(t, isAcquireConflict(pgx.ErrNoRows))
		assert.True(t, isAcquireConflict(errors.Join(errors.New("scan"), pgx.ErrNoRows)))
	})

	t.Run("unique violation from a reclaim race is a conflict", func(t *testing.T) {
		t.Parallel()

		dup := &pgconn.PgError{Code: "23505", ConstraintName: "idempotency_barriers_pkey"}
		assert.True(t, isAcquireConflict(dup))
		assert.True(t, isAcquireConflict(errors.Join(errors.New("exec"), dup)))
	})

	t.Run("other failures stay errors", func(t *testing.T) {
		t.Parallel()

		assert.False(t, isAcquireConflict(errors.New("connection reset")))
		assert.False(t, isAcquireConflict(&pgconn.PgError{Code: "23503"}))
		assert.False(t, isAcquireConflict(nil))
	})
}
