package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/pkg/pubsub"
)

func newTestMessage(name string, scheduledAt time.Time) *pubsub.Message {
	return &pubsub.Message{
		ID:          uuid.New(),
		Name:        name,
		Payload:     []byte(`{}`),
		ScheduledAt: scheduledAt,
		EnqueuedAt:  scheduledAt,
	}
}

func TestMemoryQueue_PushPop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pop due message", func(t *testing.T) {
		t.Parallel()

		q := pubsub.NewMemoryQueue()
		msg := newTestMessage("a", now)
		require.NoError(t, q.Push(ctx, msg))

		got, err := q.PopDue(ctx, now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, msg.ID, got.ID)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("nil message rejected", func(t *testing.T) {
		t.Parallel()

		q := pubsub.NewMemoryQueue()
		assert.ErrorIs(t, q.Push(ctx, nil), pubsub.ErrPayloadNil)
	})

	t.Run("not yet due message stays queued", func(t *testing.T) {
		t.Parallel()

		q := pubsub.NewMemoryQueue()
		require.NoError(t, q.Push(ctx, newTestMessage("a", now.Add(time.Minute))))

		got, err := q.PopDue(ctx, now)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 1, q.Len())

		// Becomes available once the clock passes the scheduled time.
		got, err = q.PopDue(ctx, now.Add(time.Minute))
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("empty queue pops nil", func(t *testing.T) {
		t.Parallel()

		q := pubsub.NewMemoryQueue()
		got, err := q.PopDue(ctx, now)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemoryQueue_Ordering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fifo among equally due messages", func(t *testing.T) {
		t.Parallel()

		q := pubsub.NewMemoryQueue()
		first := newTestMessage("a", now)
		second := newTestMessage("b", now)
		third := newTestMessage("c", now)
		for _, m := range []*pubsub.Message{first, second, third} {
			require.NoError(t, q.Push(ctx, m))
		}

		for _, want := range []*pubsub.Message{first, second, third} {
			got, err := q.PopDue(ctx, now)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, want.ID, got.ID)
		}
	})

	t.Run("scheduled time dominates enqueue order", func(t *testing.T) {
		t.Parallel()

		q := pubsub.NewMemoryQueue()
		future := newTestMessage("future", now.Add(time.Hour))
		due := newTestMessage("due", now)

		// The future message is enqueued first but must not delay the due one.
		require.NoError(t, q.Push(ctx, future))
		require.NoError(t, q.Push(ctx, due))

		got, err := q.PopDue(ctx, now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, due.ID, got.ID)

		got, err = q.PopDue(ctx, now)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = q.PopDue(ctx, now.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, future.ID, got.ID)
	})
}
