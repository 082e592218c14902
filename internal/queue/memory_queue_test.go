package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewMemoryQueue(t *testing.T) {
	t.Run("creates queue with specified capacity", func(t *testing.T) {
		q := NewMemoryQueue(10)

		assert.NotNil(t, q)
		assert.Equal(t, 10, q.Capacity())
		assert.Equal(t, 0, q.Len())
	})

	t.Run("creates queue with zero capacity", func(t *testing.T) {
		q := NewMemoryQueue(0)

		assert.NotNil(t, q)
		assert.Equal(t, 0, q.Capacity())
	})
}

func TestMemoryQueue_Enqueue(t *testing.T) {
	t.Run("successfully enqueues job", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job := StatsJob{
			BootcampID: primitive.NewObjectID(),
			Metric:     MetricCost,
		}

		err := q.Enqueue(job)

		assert.NoError(t, err)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("enqueues multiple jobs up to capacity", func(t *testing.T) {
		q := NewMemoryQueue(3)

		for i := 0; i < 3; i++ {
			err := q.Enqueue(StatsJob{
				BootcampID: primitive.NewObjectID(),
				Metric:     MetricRating,
			})
			assert.NoError(t, err)
		}

		assert.Equal(t, 3, q.Len())
	})

	t.Run("returns error when queue is full", func(t *testing.T) {
		q := NewMemoryQueue(2)

		// Fill the queue
		_ = q.Enqueue(StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost})
		_ = q.Enqueue(StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost})

		// Try to enqueue when full
		err := q.Enqueue(StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost})

		assert.Equal(t, ErrQueueFull, err)
		assert.Equal(t, 2, q.Len())
	})

	t.Run("returns error when queue is closed", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		err := q.Enqueue(StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost})

		assert.Equal(t, ErrQueueClosed, err)
	})
}

func TestMemoryQueue_Dequeue(t *testing.T) {
	t.Run("successfully dequeues job", func(t *testing.T) {
		q := NewMemoryQueue(10)
		expectedJob := StatsJob{
			BootcampID: primitive.NewObjectID(),
			Metric:     MetricRating,
		}
		_ = q.Enqueue(expectedJob)

		ctx := context.Background()
		job, err := q.Dequeue(ctx)

		require.NoError(t, err)
		assert.Equal(t, expectedJob.BootcampID, job.BootcampID)
		assert.Equal(t, expectedJob.Metric, job.Metric)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("dequeues jobs in FIFO order", func(t *testing.T) {
		q := NewMemoryQueue(10)
		first := StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost}
		second := StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricRating}
		_ = q.Enqueue(first)
		_ = q.Enqueue(second)

		ctx := context.Background()

		job, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, first.BootcampID, job.BootcampID)

		job, err = q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, second.BootcampID, job.BootcampID)
	})

	t.Run("returns error when context is cancelled", func(t *testing.T) {
		q := NewMemoryQueue(10)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := q.Dequeue(ctx)

		assert.Equal(t, context.Canceled, err)
	})

	t.Run("returns error when queue is closed and drained", func(t *testing.T) {
		q := NewMemoryQueue(10)
		q.Close()

		_, err := q.Dequeue(context.Background())

		assert.Equal(t, ErrQueueClosed, err)
	})

	t.Run("blocks until a job arrives", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job := StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost}

		go func() {
			time.Sleep(50 * time.Millisecond)
			_ = q.Enqueue(job)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		dequeued, err := q.Dequeue(ctx)

		require.NoError(t, err)
		assert.Equal(t, job.BootcampID, dequeued.BootcampID)
	})
}

func TestMemoryQueue_Close(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		q := NewMemoryQueue(10)

		q.Close()
		q.Close()

		err := q.Enqueue(StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricCost})
		assert.Equal(t, ErrQueueClosed, err)
	})

	t.Run("pending jobs remain dequeuable after close", func(t *testing.T) {
		q := NewMemoryQueue(10)
		job := StatsJob{BootcampID: primitive.NewObjectID(), Metric: MetricRating}
		_ = q.Enqueue(job)

		q.Close()

		dequeued, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, job.BootcampID, dequeued.BootcampID)

		_, err = q.Dequeue(context.Background())
		assert.Equal(t, ErrQueueClosed, err)
	})
}
