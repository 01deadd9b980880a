package pubsub

import (
	"context"
	"encoding/json"
)

type (
	// Handler consumes messages of a single type, identified by Name.
	// Multiple handlers may be registered for the same name; each is
	// invoked independently for every due message.
	Handler interface {
		Name() string
		Handle(ctx context.Context, payload json.RawMessage) error
	}

	// ErrorHandler is implemented by handlers that want failed
	// invocations routed to a dedicated hook instead of the dispatcher
	// log. A failure in one handler never affects the others.
	ErrorHandler interface {
		HandleError(ctx context.Context, payload json.RawMessage, err error)
	}

	// HandlerFunc processes a decoded payload of type T.
	HandlerFunc[T any] func(ctx context.Context, payload T) error

	// ErrorHook receives the decoded payload and the error (or recovered
	// panic) produced by the handler it is attached to.
	ErrorHook[T any] func(ctx context.Context, payload T, err error)
)

// HandlerOption configures a handler created by NewHandler.
type HandlerOption[T any] func(*handlerOptions[T])

type handlerOptions[T any] struct {
	errorHook ErrorHook[T]
}

// WithErrorHook attaches a per-handler error callback. Without it, handler
// failures are logged by the dispatcher.
func WithErrorHook[T any](hook ErrorHook[T]) HandlerOption[T] {
	return func(o *handlerOptions[T]) {
		o.errorHook = hook
	}
}

// NewHandler wraps a typed function into a Handler. The handler name is
// derived from T's qualified struct name, so a message published with a
// payload of type T routes here without any runtime signature lookup.
func NewHandler[T any](fn HandlerFunc[T], opts ...HandlerOption[T]) Handler {
	var zero T

	options := &handlerOptions[T]{}
	for _, opt := range opts {
		opt(options)
	}

	h := &typedHandler[T]{
		name:    qualifiedStructName(zero),
		handler: fn,
	}

	if options.errorHook != nil {
		return &hookedHandler[T]{
			typedHandler: h,
			hook:         options.errorHook,
		}
	}
	return h
}

type typedHandler[T any] struct {
	name    string
	handler HandlerFunc[T]
}

func (h *typedHandler[T]) Name() string {
	return h.name
}

func (h *typedHandler[T]) Handle(ctx context.Context, payload json.RawMessage) error {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return err
	}
	return h.handler(ctx, t)
}

type hookedHandler[T any] struct {
	*typedHandler[T]
	hook ErrorHook[T]
}

func (h *hookedHandler[T]) HandleError(ctx context.Context, payload json.RawMessage, err error) {
	// Best-effort decode: the hook still fires when the payload itself
	// was the problem, with the zero value of T.
	var t T
	_ = json.Unmarshal(payload, &t)
	h.hook(ctx, t, err)
}
