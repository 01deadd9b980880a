package idempotency

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store for single-process deployments and tests.
// Expired barriers are treated as absent on every read; an optional
// background sweep purges them to keep memory bounded.
type MemoryStore struct {
	mu       sync.RWMutex
	barriers map[string]*Barrier

	clock           Clock
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired barriers are physically
// purged. Set to 0 to disable the sweep; expiry is still honoured lazily.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithClock injects the time source used for expiry checks.
func WithClock(clock Clock) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if clock != nil {
			ms.clock = clock
		}
	}
}

// NewMemoryStore creates a new in-memory barrier store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		barriers:        make(map[string]*Barrier),
		clock:           systemClock{},
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// Close stops the background sweep. Safe to call multiple times.
func (ms *MemoryStore) Close() error {
	ms.closeOnce.Do(func() {
		close(ms.stopCleanup)
	})
	return nil
}

func (ms *MemoryStore) Acquire(_ context.Context, key, operation string, ttl time.Duration) (Acquisition, error) {
	if err := validateAcquire(key, operation, ttl); err != nil {
		return Acquisition{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	if existing, ok := ms.barriers[key]; ok && existing.Live(now) {
		return Acquisition{Acquired: false, Result: existing.Result}, nil
	}

	ms.barriers[key] = &Barrier{
		Key:       key,
		Operation: operation,
		Token:     uuid.New(),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	return Acquisition{Acquired: true}, nil
}

func (ms *MemoryStore) Complete(_ context.Context, key string, result json.RawMessage) error {
	if key == "" {
		return ErrKeyEmpty
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	barrier, ok := ms.barriers[key]
	if !ok || !barrier.Live(ms.clock.Now()) {
		return ErrBarrierNotFound
	}

	barrier.Result = result
	return nil
}

// cleanup runs periodically to purge expired barriers.
func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeExpired()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeExpired() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.clock.Now()
	for key, barrier := range ms.barriers {
		if !barrier.Live(now) {
			delete(ms.barriers, key)
		}
	}
}
