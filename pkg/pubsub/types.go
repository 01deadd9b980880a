package pubsub

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is the envelope travelling through the queue. The payload is
// serialized at publish time; the Name is derived from the payload's type
// and used as the routing key when resolving handlers.
type Message struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	ScheduledAt time.Time       `json:"scheduled_at"`
	EnqueuedAt  time.Time       `json:"enqueued_at"`
}

// Due reports whether the message may be delivered at the given instant.
func (m *Message) Due(now time.Time) bool {
	return !m.ScheduledAt.After(now)
}
