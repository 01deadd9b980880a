package idempotency

import "errors"

// Common errors
var (
	// ErrKeyEmpty is returned when an empty barrier key is provided
	ErrKeyEmpty = errors.New("barrier key cannot be empty")

	// ErrOperationEmpty is returned when an empty operation label is provided
	ErrOperationEmpty = errors.New("operation label cannot be empty")

	// ErrInvalidTTL is returned when a negative ttl is provided
	ErrInvalidTTL = errors.New("ttl cannot be negative")

	// ErrBarrierNotFound is returned by Complete when no live barrier exists for the key
	ErrBarrierNotFound = errors.New("no live barrier found for key")

	// ErrOperationInProgress is returned by Run when another caller holds
	// the barrier but has not recorded a result yet
	ErrOperationInProgress = errors.New("operation already in progress")

	// ErrClientNil is returned when a nil backend client is provided
	ErrClientNil = errors.New("client cannot be nil")

	// ErrResultUnmarshal is returned by Run when a stored result cannot be decoded
	ErrResultUnmarshal = errors.New("failed to unmarshal stored result")

	// ErrResultMarshal is returned by Run when an operation result cannot be encoded
	ErrResultMarshal = errors.New("failed to marshal operation result")
)
