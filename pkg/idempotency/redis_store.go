package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a Redis backend, letting the barrier
// hold across process instances. Atomicity of Acquire rests on SET NX;
// expiry is enforced by Redis key TTLs.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces the barrier keys inside Redis.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		if prefix != "" {
			rs.keyPrefix = prefix
		}
	}
}

// NewRedisStore creates a barrier store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrClientNil
	}

	rs := &RedisStore{
		client:    client,
		keyPrefix: "idempotency:",
	}

	for _, opt := range opts {
		opt(rs)
	}

	return rs, nil
}

func (rs *RedisStore) Acquire(ctx context.Context, key, operation string, ttl time.Duration) (Acquisition, error) {
	if err := validateAcquire(key, operation, ttl); err != nil {
		return Acquisition{}, err
	}

	// Redis rejects non-positive expirations; a zero-ttl barrier is
	// specified to be born expired, so give it the shortest possible life.
	if ttl == 0 {
		ttl = time.Millisecond
	}

	token := uuid.New().String()
	ok, err := rs.client.SetNX(ctx, rs.barrierKey(key), token, ttl).Result()
	if err != nil {
		return Acquisition{}, err
	}
	if ok {
		return Acquisition{Acquired: true}, nil
	}

	// A live barrier exists; surface its recorded result when present.
	result, err := rs.client.Get(ctx, rs.resultKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Acquisition{Acquired: false}, nil
		}
		return Acquisition{}, err
	}

	return Acquisition{Acquired: false, Result: result}, nil
}

func (rs *RedisStore) Complete(ctx context.Context, key string, result json.RawMessage) error {
	if key == "" {
		return ErrKeyEmpty
	}

	// The result inherits the barrier's remaining lifetime so both
	// expire together.
	remaining, err := rs.client.PTTL(ctx, rs.barrierKey(key)).Result()
	if err != nil {
		return err
	}
	if remaining < 0 {
		return ErrBarrierNotFound
	}

	return rs.client.Set(ctx, rs.resultKey(key), []byte(result), remaining).Err()
}

func (rs *RedisStore) barrierKey(key string) string {
	return rs.keyPrefix + key
}

func (rs *RedisStore) resultKey(key string) string {
	return rs.keyPrefix + key + ":result"
}
