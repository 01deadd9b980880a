package pubsub

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// Queue holds messages until they are due for delivery. Implementations
// must be safe for concurrent use by publishers and the dispatch loop.
type Queue interface {
	// Push inserts a message. It must not block on delivery.
	Push(ctx context.Context, msg *Message) error

	// PopDue removes and returns the earliest due message at the given
	// instant, or nil when nothing is due yet.
	PopDue(ctx context.Context, now time.Time) (*Message, error)

	// Len reports how many messages are waiting, due or not.
	Len() int
}

// MemoryQueue is the default in-process Queue. Messages are kept in a
// min-heap ordered by scheduled time, with enqueue order breaking ties,
// so a message scheduled far in the future can never delay one that is
// already due.
type MemoryQueue struct {
	mu   sync.Mutex
	heap messageHeap
	seq  uint64
}

// NewMemoryQueue creates an empty in-memory queue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

func (q *MemoryQueue) Push(_ context.Context, msg *Message) error {
	if msg == nil {
		return ErrPayloadNil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	heap.Push(&q.heap, &queuedMessage{msg: msg, seq: q.seq})
	return nil
}

func (q *MemoryQueue) PopDue(_ context.Context, now time.Time) (*Message, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.heap) == 0 || !q.heap[0].msg.Due(now) {
		return nil, nil
	}

	item := heap.Pop(&q.heap).(*queuedMessage)
	return item.msg, nil
}

func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.heap)
}

// queuedMessage is one heap entry. The sequence number preserves FIFO
// order among messages with identical scheduled times.
type queuedMessage struct {
	msg *Message
	seq uint64
}

type messageHeap []*queuedMessage

func (h messageHeap) Len() int { return len(h) }

func (h messageHeap) Less(i, j int) bool {
	if h[i].msg.ScheduledAt.Equal(h[j].msg.ScheduledAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].msg.ScheduledAt.Before(h[j].msg.ScheduledAt)
}

func (h messageHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *messageHeap) Push(x any) {
	*h = append(*h, x.(*queuedMessage))
}

func (h *messageHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // allow GC
	*h = old[:n-1]
	return item
}
