// Package queue provides job queue functionality for background processing.
package queue

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Metric identifies which derived aggregate a job recomputes.
type Metric string

const (
	// MetricCost recomputes a bootcamp's average tuition.
	MetricCost Metric = "cost"
	// MetricRating recomputes a bootcamp's average review rating.
	MetricRating Metric = "rating"
)

// StatsJob represents a request to recompute one derived aggregate of a
// bootcamp after a child record changed.
type StatsJob struct {
	BootcampID primitive.ObjectID
	Metric     Metric
}

// MemoryQueue is an in-memory job queue for stats recomputation jobs.
type MemoryQueue struct {
	jobs     chan StatsJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan StatsJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns error if queue is full or closed.
// Lock is held during the entire operation to prevent race condition with Close().
func (q *MemoryQueue) Enqueue(job StatsJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (StatsJob, error) {
	select {
	case <-ctx.Done():
		return StatsJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return StatsJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
