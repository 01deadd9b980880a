package idempotency

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Barrier is the uniqueness-enforcing record guarding one logical
// operation attempt. At most one live (non-expired) barrier exists per
// key at any time.
type Barrier struct {
	Key       string          `json:"key"`
	Operation string          `json:"operation"`
	Token     uuid.UUID       `json:"token"`
	Result    json.RawMessage `json:"result,omitempty"`
	ExpiresAt time.Time       `json:"expires_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// Live reports whether the barrier still blocks acquisition at the given
// instant. An expired barrier is treated as absent even if it still
// physically exists.
func (b *Barrier) Live(now time.Time) bool {
	return b.ExpiresAt.After(now)
}

// Acquisition is the outcome of an Acquire call. A conflict is not an
// error: Acquired is false and Result carries the first execution's
// outcome when one was recorded.
type Acquisition struct {
	Acquired bool
	Result   json.RawMessage
}

// Store defines the barrier storage contract. Implementations must make
// Acquire atomic with respect to concurrent callers racing on the same
// key: exactly one of them may succeed while a live barrier is absent.
type Store interface {
	// Acquire atomically creates a barrier for the key unless a live one
	// already exists. With ttl zero the barrier is born expired, so it
	// records the attempt without blocking anyone.
	Acquire(ctx context.Context, key, operation string, ttl time.Duration) (Acquisition, error)

	// Complete records the operation's result on an acquired barrier so
	// later racers and retries can observe it instead of re-executing.
	// Returns ErrBarrierNotFound when no live barrier exists for the key.
	Complete(ctx context.Context, key string, result json.RawMessage) error
}

func validateAcquire(key, operation string, ttl time.Duration) error {
	if key == "" {
		return ErrKeyEmpty
	}
	if operation == "" {
		return ErrOperationEmpty
	}
	if ttl < 0 {
		return ErrInvalidTTL
	}
	return nil
}
