package idempotency_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/pkg/idempotency"
)

type receipt struct {
	ChargeID string `json:"charge_id"`
}

func TestRun(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("first run executes, retry reads recorded result", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t, newFakeClock(start))

		var executions atomic.Int32
		charge := func(ctx context.Context) (receipt, error) {
			executions.Add(1)
			return receipt{ChargeID: "ch_1"}, nil
		}

		got, err := idempotency.Run(ctx, store, "order-42", "charge", time.Minute, charge)
		require.NoError(t, err)
		assert.Equal(t, "ch_1", got.ChargeID)

		got, err = idempotency.Run(ctx, store, "order-42", "charge", time.Minute, charge)
		require.NoError(t, err)
		assert.Equal(t, "ch_1", got.ChargeID)

		assert.Equal(t, int32(1), executions.Load(), "side effect must run once")
	})

	t.Run("in-flight operation reported, not re-executed", func(t *testing.T) {
		t.Parallel()

		store := newTestStore(t, newFakeClock(start))

		// Simulate an in-flight first attempt: acquired, no result yet.
		acq, err := store.Acquire(ctx, "order-42", "charge", time.Minute)
		require.NoError(t, err)
		require.True(t, acq.Acquired)

		_, err = idempotency.Run(ctx, store, "order-42", "charge", time.Minute,
			func(ctx context.Context) (receipt, error) {
				t.Fatal("must not execute while barrier is held")
				return receipt{}, nil
			})
		assert.ErrorIs(t, err, idempotency.ErrOperationInProgress)
	})

	t.Run("failed execution records nothing", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock(start)
		store := newTestStore(t, clock)

		chargeErr := errors.New("gateway timeout")
		_, err := idempotency.Run(ctx, store, "order-42", "charge", time.Minute,
			func(ctx context.Context) (receipt, error) {
				return receipt{}, chargeErr
			})
		assert.ErrorIs(t, err, chargeErr)

		// The barrier blocks retries until the window closes; afterwards
		// the operation may run again.
		_, err = idempotency.Run(ctx, store, "order-42", "charge", time.Minute,
			func(ctx context.Context) (receipt, error) {
				return receipt{ChargeID: "ch_2"}, nil
			})
		assert.ErrorIs(t, err, idempotency.ErrOperationInProgress)

		clock.Advance(2 * time.Minute)

		got, err := idempotency.Run(ctx, store, "order-42", "charge", time.Minute,
			func(ctx context.Context) (receipt, error) {
				return receipt{ChargeID: "ch_2"}, nil
			})
		require.NoError(t, err)
		assert.Equal(t, "ch_2", got.ChargeID)
	})
}
