package queue

import "errors"

var (
	// ErrQueueFull is returned when the queue has reached capacity.
	ErrQueueFull = errors.New("queue is full")
	// ErrQueueClosed is returned when enqueueing to a closed queue.
	ErrQueueClosed = errors.New("queue is closed")
)
