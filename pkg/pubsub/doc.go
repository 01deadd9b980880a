// Package pubsub provides an in-process publish/subscribe queue with
// deferred delivery. Messages are fanned out to every handler registered
// for their type, no earlier than their scheduled time, by a single
// background dispatch loop.
//
// The package is organised around three main components:
//
//   - Publisher   — enqueues messages for immediate or scheduled delivery
//   - Queue       — holds messages until they are due (MemoryQueue by default)
//   - Dispatcher  — drains due messages and fans them out to registered handlers
//
// Components interact only through the Queue interface, so the Publisher
// and Dispatcher never share state directly and can be constructed and
// tested in isolation.
//
// Delivery is at-least-once and fire-and-forget from the publisher's
// perspective: a failing handler never propagates back to the caller.
// Handlers must therefore be idempotent; pair them with the idempotency
// package when a side effect must run at most once.
//
// # Usage
//
//	type InvitationSent struct {
//	    InvitationID string
//	}
//
//	queue := pubsub.NewMemoryQueue()
//
//	dispatcher, err := pubsub.NewDispatcher(queue)
//	if err != nil {
//	    return err
//	}
//	err = dispatcher.RegisterHandler(pubsub.NewHandler(
//	    func(ctx context.Context, payload InvitationSent) error {
//	        // deliver the invitation email
//	        return nil
//	    },
//	))
//	if err != nil {
//	    return err
//	}
//	if err := dispatcher.Start(context.Background()); err != nil {
//	    return err
//	}
//	defer dispatcher.Stop()
//
//	publisher, err := pubsub.NewPublisher(queue)
//	if err != nil {
//	    return err
//	}
//
//	// Deliver as soon as the next dispatch cycle runs.
//	_ = publisher.Publish(ctx, InvitationSent{InvitationID: "inv_123"})
//
//	// Defer delivery until tomorrow morning.
//	_ = publisher.PublishAt(ctx, InvitationSent{InvitationID: "inv_124"}, tomorrow)
//
// Scheduled times are honoured as "no earlier than": the dispatch loop
// re-checks the queue on a fixed poll interval, so delivery happens within
// one poll interval after the scheduled time, never before it.
package pubsub
