package pubsub

import (
	"log/slog"
	"time"
)

// DispatcherOption configures the Dispatcher
type DispatcherOption func(*dispatcherOptions)

type dispatcherOptions struct {
	pollInterval    time.Duration
	handlerTimeout  time.Duration
	shutdownTimeout time.Duration
	clock           Clock
	logger          *slog.Logger
}

// WithPollInterval sets how often the loop re-checks the queue when it is
// empty or its head is not yet due. This bounds how late after its
// scheduled time a message can be delivered.
func WithPollInterval(interval time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if interval > 0 {
			o.pollInterval = interval
		}
	}
}

// WithHandlerTimeout bounds a single handler invocation. The timeout is
// independent of the loop context so graceful shutdown lets in-flight
// handlers finish.
func WithHandlerTimeout(timeout time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if timeout > 0 {
			o.handlerTimeout = timeout
		}
	}
}

// WithShutdownTimeout bounds how long Stop waits for the in-flight
// delivery cycle before giving up with ErrShutdownTimeout.
func WithShutdownTimeout(timeout time.Duration) DispatcherOption {
	return func(o *dispatcherOptions) {
		if timeout > 0 {
			o.shutdownTimeout = timeout
		}
	}
}

// WithClock injects the time source used for due checks.
func WithClock(clock Clock) DispatcherOption {
	return func(o *dispatcherOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger for dispatch lifecycle and failure events.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(o *dispatcherOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies every Config field.
func WithConfig(cfg Config) DispatcherOption {
	return func(o *dispatcherOptions) {
		WithPollInterval(cfg.PollInterval)(o)
		WithHandlerTimeout(cfg.HandlerTimeout)(o)
		WithShutdownTimeout(cfg.ShutdownTimeout)(o)
	}
}
