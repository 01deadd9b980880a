// Package idempotency provides a barrier store that lets callers execute
// an operation at most once per logical key within a validity window.
// Retries of an at-least-once operation observe the recorded outcome of
// the first successful execution instead of re-running its side effects.
//
// A barrier moves through three states:
//
//	absent → acquired (no result) → completed (result recorded)
//
// and implicitly back to absent once its expiry passes, whether or not it
// was completed. Expired barriers are treated as missing; physical
// cleanup is lazy and optional.
//
// Acquire is the correctness boundary: for any key, two concurrent
// acquisitions never both succeed. A failed acquisition is a normal
// negative outcome carrying the stored result when one exists, never an
// error.
//
// # Usage
//
//	store := idempotency.NewMemoryStore()
//	defer store.Close()
//
//	acq, err := store.Acquire(ctx, "order-42", "charge", time.Minute)
//	if err != nil {
//	    return err
//	}
//	if !acq.Acquired {
//	    // Already charged (or a charge is in flight); acq.Result holds
//	    // the recorded outcome when the first attempt completed.
//	    return nil
//	}
//
//	receipt := chargeCard(ctx, orderID)
//	payload, _ := json.Marshal(receipt)
//	if err := store.Complete(ctx, "order-42", payload); err != nil {
//	    return err
//	}
//
// The Run helper wraps this acquire/execute/complete sequence for typed
// results. Redis, PostgreSQL, and MongoDB backed stores are provided for
// processes that need the barrier to hold across instances.
package idempotency
