package pubsub

import "errors"

// Common errors
var (
	// ErrQueueNil is returned when a nil queue is provided
	ErrQueueNil = errors.New("queue cannot be nil")

	// ErrPayloadNil is returned when attempting to publish a nil payload
	ErrPayloadNil = errors.New("payload cannot be nil")

	// ErrPayloadMarshal is returned when payload marshaling fails
	ErrPayloadMarshal = errors.New("failed to marshal payload to JSON")

	// ErrEnqueueFailed is returned when the queue rejects a message
	ErrEnqueueFailed = errors.New("failed to enqueue message")

	// ErrNothingToPublish is returned when batch publish is called with no payloads
	ErrNothingToPublish = errors.New("no payloads to publish")

	// ErrHandlerNil is returned when registering a nil handler
	ErrHandlerNil = errors.New("handler cannot be nil")

	// ErrNoHandlers is returned when the dispatcher is started without handlers
	ErrNoHandlers = errors.New("no message handlers registered")

	// ErrAlreadyStarted is returned when Start is called on a running dispatcher
	ErrAlreadyStarted = errors.New("dispatcher already started")

	// ErrNotStarted is returned when Stop is called on a stopped dispatcher
	ErrNotStarted = errors.New("dispatcher not started")

	// ErrShutdownTimeout is returned when Stop gives up waiting for the
	// in-flight delivery cycle
	ErrShutdownTimeout = errors.New("dispatcher shutdown timed out")
)
