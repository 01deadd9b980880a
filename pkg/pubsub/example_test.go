package pubsub_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/dispatchkit/pkg/pubsub"
)

// Example demonstrates publishing a message and fanning it out to two
// independent handlers.
func Example() {
	queue := pubsub.NewMemoryQueue()

	type ReservationConfirmed struct {
		ReservationID string `json:"reservation_id"`
	}

	// Silent logger to keep example output deterministic
	dispatcher, err := pubsub.NewDispatcher(queue,
		pubsub.WithPollInterval(10*time.Millisecond),
		pubsub.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		panic(err)
	}

	delivered := make(chan string, 2)
	err = dispatcher.RegisterHandlers(
		pubsub.NewHandler(func(ctx context.Context, r ReservationConfirmed) error {
			delivered <- "email for " + r.ReservationID
			return nil
		}),
		pubsub.NewHandler(func(ctx context.Context, r ReservationConfirmed) error {
			delivered <- "audit for " + r.ReservationID
			return nil
		}),
	)
	if err != nil {
		panic(err)
	}

	if err := dispatcher.Start(context.Background()); err != nil {
		panic(err)
	}

	publisher, err := pubsub.NewPublisher(queue)
	if err != nil {
		panic(err)
	}
	if err := publisher.Publish(context.Background(), ReservationConfirmed{ReservationID: "res_7"}); err != nil {
		panic(err)
	}

	fmt.Println(<-delivered)
	fmt.Println(<-delivered)

	if err := dispatcher.Stop(); err != nil {
		panic(err)
	}

	// Output:
	// email for res_7
	// audit for res_7
}
