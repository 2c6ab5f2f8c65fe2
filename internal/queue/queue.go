package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"closed-auction-metrics/utils"
)

// Delivery is one raw message handed to the ingestion consumer.
type Delivery struct {
	ID   string
	Body []byte
}

// Queue is a buffered in-process delivery queue with a background broker,
// standing in for the external broker binding that feeds auction-closed
// events. Intake and consumption run on independent goroutines.
type Queue struct {
	mu           sync.Mutex
	backlog      []Delivery
	notify       chan struct{}
	out          chan Delivery
	shuttingDown atomic.Bool

	enqueued  atomic.Uint64
	delivered atomic.Uint64
}

// New creates a Queue with a buffered output channel.
func New(outBuffer int) *Queue {
	if outBuffer <= 0 {
		outBuffer = 64
	}
	return &Queue{
		notify: make(chan struct{}, 1),
		out:    make(chan Delivery, outBuffer),
	}
}

// Start runs the broker loop until ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	go q.broker(ctx)
}

// broker moves backlog items to the output channel.
func (q *Queue) broker(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		q.flushOnce()
		select {
		case <-ctx.Done():
			return
		case <-q.notify:
		case <-ticker.C:
		}
	}
}

// flushOnce drains backlog into the output buffer.
func (q *Queue) flushOnce() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.backlog) > 0 && len(q.out) < cap(q.out) {
		item := q.backlog[0]
		q.backlog = q.backlog[1:]
		q.out <- item
		q.delivered.Add(1)
	}
}

// Enqueue appends a raw message to the backlog, assigning it a delivery id,
// and notifies the broker. It reports false once intake is closed.
func (q *Queue) Enqueue(body []byte) (string, bool) {
	if q.shuttingDown.Load() {
		return "", false
	}
	delivery := Delivery{ID: utils.GenerateID(), Body: body}
	q.enqueued.Add(1)
	q.mu.Lock()
	q.backlog = append(q.backlog, delivery)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
	return delivery.ID, true
}

// Out exposes the consumer-facing channel of deliveries.
func (q *Queue) Out() <-chan Delivery { return q.out }

// Depth returns backlog plus buffered but unconsumed deliveries.
func (q *Queue) Depth() int {
	q.mu.Lock()
	backlog := len(q.backlog)
	q.mu.Unlock()
	return backlog + len(q.out)
}

// Counts returns the enqueued and delivered totals.
func (q *Queue) Counts() (enqueued, delivered uint64) {
	return q.enqueued.Load(), q.delivered.Load()
}

// CloseIntake disallows future enqueues.
func (q *Queue) CloseIntake() { q.shuttingDown.Store(true) }
