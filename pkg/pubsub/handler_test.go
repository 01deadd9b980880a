package pubsub_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatchkit/pkg/pubsub"
)

type greetPayload struct {
	Name string `json:"name"`
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("name derived from payload type", func(t *testing.T) {
		t.Parallel()

		h := pubsub.NewHandler(func(ctx context.Context, p greetPayload) error {
			return nil
		})
		assert.Equal(t, "pubsub_test.greetPayload", h.Name())
	})

	t.Run("payload decoded before invocation", func(t *testing.T) {
		t.Parallel()

		var got greetPayload
		h := pubsub.NewHandler(func(ctx context.Context, p greetPayload) error {
			got = p
			return nil
		})

		err := h.Handle(context.Background(), []byte(`{"name":"alice"}`))
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Name)
	})

	t.Run("invalid payload returns error", func(t *testing.T) {
		t.Parallel()

		h := pubsub.NewHandler(func(ctx context.Context, p greetPayload) error {
			t.Fatal("handler must not run on decode failure")
			return nil
		})

		err := h.Handle(context.Background(), []byte(`{not json`))
		assert.Error(t, err)
	})
}

func TestWithErrorHook(t *testing.T) {
	t.Parallel()

	t.Run("hook receives decoded payload and error", func(t *testing.T) {
		t.Parallel()

		handlerErr := errors.New("boom")
		var hookPayload greetPayload
		var hookErr error

		h := pubsub.NewHandler(
			func(ctx context.Context, p greetPayload) error {
				return handlerErr
			},
			pubsub.WithErrorHook(func(ctx context.Context, p greetPayload, err error) {
				hookPayload = p
				hookErr = err
			}),
		)

		eh, ok := h.(pubsub.ErrorHandler)
		require.True(t, ok, "handler with hook must implement ErrorHandler")

		err := h.Handle(context.Background(), []byte(`{"name":"bob"}`))
		require.ErrorIs(t, err, handlerErr)

		eh.HandleError(context.Background(), []byte(`{"name":"bob"}`), handlerErr)
		assert.Equal(t, "bob", hookPayload.Name)
		assert.ErrorIs(t, hookErr, handlerErr)
	})

	t.Run("handler without hook does not implement ErrorHandler", func(t *testing.T) {
		t.Parallel()

		h := pubsub.NewHandler(func(ctx context.Context, p greetPayload) error {
			return nil
		})

		_, ok := h.(pubsub.ErrorHandler)
		assert.False(t, ok)
	})
}
