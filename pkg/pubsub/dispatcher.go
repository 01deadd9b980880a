package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatchkit/pkg/logger"
)

// Dispatcher drives the background delivery loop. It drains due messages
// from the queue and fans each one out to every handler registered for
// its name. A single goroutine performs all deliveries, so handlers for
// one message run sequentially; failures are isolated per handler.
type Dispatcher struct {
	queue        Queue
	handlers     map[string][]Handler
	dispatcherID uuid.UUID
	mu           sync.RWMutex

	// Configuration
	pollInterval    time.Duration
	handlerTimeout  time.Duration
	shutdownTimeout time.Duration
	clock           Clock
	logger          *slog.Logger

	// State management. Each run owns its context and done channel, so
	// a Stop racing a fresh Start only ever waits on the loop it
	// actually cancelled.
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDispatcher creates a dispatcher draining the given queue.
func NewDispatcher(queue Queue, opts ...DispatcherOption) (*Dispatcher, error) {
	if queue == nil {
		return nil, ErrQueueNil
	}

	// Default options
	options := &dispatcherOptions{
		pollInterval:    100 * time.Millisecond,
		handlerTimeout:  time.Minute,
		shutdownTimeout: 30 * time.Second,
		clock:           systemClock{},
		logger:          slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		opt(options)
	}

	return &Dispatcher{
		queue:           queue,
		handlers:        make(map[string][]Handler),
		dispatcherID:    uuid.New(),
		pollInterval:    options.pollInterval,
		handlerTimeout:  options.handlerTimeout,
		shutdownTimeout: options.shutdownTimeout,
		clock:           options.clock,
		logger:          options.logger.With(logger.Component("dispatcher")),
	}, nil
}

// RegisterHandler appends a handler to the list for its message name.
// Registration is normally a startup concern, but it is safe to call
// while the loop is running; the handler becomes visible to subsequent
// dispatch cycles.
func (d *Dispatcher) RegisterHandler(handler Handler) error {
	if handler == nil {
		return ErrHandlerNil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[handler.Name()] = append(d.handlers[handler.Name()], handler)
	return nil
}

// RegisterHandlers registers multiple handlers.
func (d *Dispatcher) RegisterHandlers(handlers ...Handler) error {
	for _, h := range handlers {
		if err := d.RegisterHandler(h); err != nil {
			return err
		}
	}
	return nil
}

// Start begins the background dispatch loop.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.cancel != nil {
		d.mu.Unlock()
		return ErrAlreadyStarted
	}

	if len(d.handlers) == 0 {
		d.mu.Unlock()
		return ErrNoHandlers
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.mu.Unlock()

	go d.run(loopCtx, done)

	d.logger.Info("dispatcher started",
		slog.String("dispatcher_id", d.dispatcherID.String()),
		slog.Duration("poll_interval", d.pollInterval))

	return nil
}

// Stop signals the loop to exit and waits for the in-flight delivery
// cycle to finish, up to the shutdown timeout. No new deliveries begin
// after Stop returns, and no handler invocation is interrupted mid-call;
// when a handler outlives the timeout the loop is abandoned and
// ErrShutdownTimeout is returned.
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	if d.cancel == nil {
		d.mu.Unlock()
		return ErrNotStarted
	}

	cancel := d.cancel
	done := d.done
	d.cancel = nil
	d.done = nil
	d.mu.Unlock()

	// Interrupts the idle wait, so shutdown never waits out a full poll interval.
	cancel()

	select {
	case <-done:
	case <-time.After(d.shutdownTimeout):
		d.logger.Error("dispatcher shutdown timed out",
			slog.String("dispatcher_id", d.dispatcherID.String()),
			slog.Duration("shutdown_timeout", d.shutdownTimeout))
		return ErrShutdownTimeout
	}

	d.logger.Info("dispatcher stopped",
		slog.String("dispatcher_id", d.dispatcherID.String()))

	return nil
}

// Run starts the dispatcher and returns a function suitable for errgroup.
func (d *Dispatcher) Run(ctx context.Context) func() error {
	return func() error {
		if err := d.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		return d.Stop()
	}
}

// run is the main dispatch loop. It drains everything that is due, then
// sleeps for one poll interval; the sleep is cut short by Stop.
func (d *Dispatcher) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		d.dispatchCycle(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// dispatchCycle is one pass over the queue. Queue bookkeeping errors and
// panics are logged and never terminate the loop.
func (d *Dispatcher) dispatchCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch cycle panicked",
				slog.String("dispatcher_id", d.dispatcherID.String()),
				slog.Any("panic", r))
		}
	}()

	for {
		// Re-check between messages so Stop takes effect after the
		// current delivery, not after the whole backlog.
		if ctx.Err() != nil {
			return
		}

		msg, err := d.queue.PopDue(ctx, d.clock.Now())
		if err != nil {
			d.logger.Error("failed to pop message from queue",
				slog.String("dispatcher_id", d.dispatcherID.String()),
				logger.Error(err))
			return
		}
		if msg == nil {
			return
		}

		d.deliver(msg)
	}
}

// deliver fans a due message out to every handler registered for its
// name. Handlers run on a context detached from the loop context so an
// invocation already in progress survives Stop.
func (d *Dispatcher) deliver(msg *Message) {
	handlers := d.resolve(msg.Name)
	if len(handlers) == 0 {
		d.logger.Warn("no handlers registered for message",
			slog.String("dispatcher_id", d.dispatcherID.String()),
			logger.MessageID(msg.ID),
			logger.EventType(msg.Name))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.handlerTimeout)
	defer cancel()

	for _, h := range handlers {
		d.invoke(ctx, h, msg)
	}
}

// invoke runs a single handler with panic recovery. An error or panic is
// routed to the handler's error hook when it has one, otherwise logged;
// it never reaches the other handlers or the loop.
func (d *Dispatcher) invoke(ctx context.Context, handler Handler, msg *Message) {
	start := d.clock.Now()

	defer func() {
		if r := recover(); r != nil {
			d.routeError(ctx, handler, msg, fmt.Errorf("panic in handler: %v", r))
		}
	}()

	if err := handler.Handle(ctx, msg.Payload); err != nil {
		d.routeError(ctx, handler, msg, err)
		return
	}

	d.logger.Debug("message delivered",
		slog.String("dispatcher_id", d.dispatcherID.String()),
		logger.MessageID(msg.ID),
		logger.EventType(msg.Name),
		logger.Duration(d.clock.Now().Sub(start)))
}

func (d *Dispatcher) routeError(ctx context.Context, handler Handler, msg *Message, err error) {
	d.logger.Error("handler failed",
		slog.String("dispatcher_id", d.dispatcherID.String()),
		logger.MessageID(msg.ID),
		logger.EventType(msg.Name),
		logger.Error(err))

	eh, ok := handler.(ErrorHandler)
	if !ok {
		return
	}

	// A panicking hook must not take the loop down either.
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("error hook panicked",
				slog.String("dispatcher_id", d.dispatcherID.String()),
				logger.MessageID(msg.ID),
				slog.Any("panic", r))
		}
	}()

	eh.HandleError(ctx, msg.Payload, err)
}

// resolve returns a snapshot of the handlers registered for a name, safe
// to iterate while registration continues concurrently.
func (d *Dispatcher) resolve(name string) []Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registered := d.handlers[name]
	if len(registered) == 0 {
		return nil
	}

	snapshot := make([]Handler, len(registered))
	copy(snapshot, registered)
	return snapshot
}
