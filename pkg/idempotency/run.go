package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Run executes fn at most once per key within the ttl window. The first
// caller acquires the barrier, runs fn, and records its JSON-encoded
// result; concurrent callers and later retries receive that recorded
// result without re-executing fn.
//
// While the first execution is still in flight (acquired, no result yet)
// other callers get ErrOperationInProgress. If fn fails, no result is
// recorded and the barrier keeps blocking retries until it expires; pick
// the ttl as the longest window within which a duplicate execution must
// be suppressed.
func Run[T any](ctx context.Context, store Store, key, operation string, ttl time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	acq, err := store.Acquire(ctx, key, operation, ttl)
	if err != nil {
		return zero, err
	}

	if !acq.Acquired {
		if acq.Result == nil {
			return zero, ErrOperationInProgress
		}

		var stored T
		if err := json.Unmarshal(acq.Result, &stored); err != nil {
			return zero, errors.Join(ErrResultUnmarshal, err)
		}
		return stored, nil
	}

	out, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	payload, err := json.Marshal(out)
	if err != nil {
		return zero, errors.Join(ErrResultMarshal, err)
	}

	if err := store.Complete(ctx, key, payload); err != nil {
		return zero, err
	}

	return out, nil
}
