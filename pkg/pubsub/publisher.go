package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Publisher is the caller-facing entry point for producing messages.
// Publishing is fire-and-forget: it returns once the message is enqueued
// and never reports handler outcomes.
type Publisher struct {
	queue Queue
	clock Clock
}

// NewPublisher creates a Publisher writing into the given queue.
func NewPublisher(queue Queue, opts ...PublisherOption) (*Publisher, error) {
	if queue == nil {
		return nil, ErrQueueNil
	}

	options := &publisherOptions{
		clock: systemClock{},
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Publisher{
		queue: queue,
		clock: options.clock,
	}, nil
}

// Publish enqueues a message for delivery on the next dispatch cycle.
func (p *Publisher) Publish(ctx context.Context, payload any) error {
	return p.PublishAt(ctx, payload, p.clock.Now())
}

// PublishAt enqueues a message that must not be delivered before the
// given time. Delivery happens on the first dispatch cycle at or after
// it, so treat the time as a lower bound with bounded jitter.
func (p *Publisher) PublishAt(ctx context.Context, payload any, at time.Time) error {
	if payload == nil {
		return ErrPayloadNil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Join(ErrPayloadMarshal, err)
	}

	msg := &Message{
		ID:          uuid.New(),
		Name:        qualifiedStructName(payload),
		Payload:     data,
		ScheduledAt: at,
		EnqueuedAt:  p.clock.Now(),
	}

	if err := p.queue.Push(ctx, msg); err != nil {
		return errors.Join(ErrEnqueueFailed, err)
	}

	return nil
}

// PublishIn enqueues a message delayed by the given duration.
func (p *Publisher) PublishIn(ctx context.Context, payload any, delay time.Duration) error {
	return p.PublishAt(ctx, payload, p.clock.Now().Add(delay))
}

// PublishBatch enqueues each payload independently for immediate
// delivery. There is no atomicity across the batch: on error a prefix of
// the batch may already be enqueued. Callers needing an atomic batch
// should wrap it in a single message.
func (p *Publisher) PublishBatch(ctx context.Context, payloads ...any) error {
	if len(payloads) == 0 {
		return ErrNothingToPublish
	}

	for _, payload := range payloads {
		if err := p.Publish(ctx, payload); err != nil {
			return err
		}
	}

	return nil
}
