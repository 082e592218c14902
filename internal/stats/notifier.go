package stats

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/queue"
)

// Notifier signals that a bootcamp's child records changed and its
// aggregates need recomputing.
type Notifier interface {
	CourseChanged(ctx context.Context, bootcampID primitive.ObjectID)
	ReviewChanged(ctx context.Context, bootcampID primitive.ObjectID)
}

// QueueNotifier hands recompute work to the background processor. A full
// queue drops the job with a log line; the stale aggregate self-heals on
// the next change to the same bootcamp.
type QueueNotifier struct {
	queue queue.Queue
}

// NewQueueNotifier creates a Notifier backed by the given queue.
func NewQueueNotifier(q queue.Queue) *QueueNotifier {
	return &QueueNotifier{queue: q}
}

func (n *QueueNotifier) CourseChanged(_ context.Context, bootcampID primitive.ObjectID) {
	n.enqueue(queue.StatsJob{BootcampID: bootcampID, Metric: queue.MetricCost})
}

func (n *QueueNotifier) ReviewChanged(_ context.Context, bootcampID primitive.ObjectID) {
	n.enqueue(queue.StatsJob{BootcampID: bootcampID, Metric: queue.MetricRating})
}

func (n *QueueNotifier) enqueue(job queue.StatsJob) {
	if err := n.queue.Enqueue(job); err != nil {
		log.Printf("Failed to enqueue stats job for bootcamp %s (%s): %v", job.BootcampID.Hex(), job.Metric, err)
	}
}

// SyncNotifier recomputes aggregates inline instead of queueing. Used where
// the caller needs the aggregate up to date before the request returns.
type SyncNotifier struct {
	recalculator queue.Recalculator
}

// NewSyncNotifier creates a Notifier that recomputes synchronously.
func NewSyncNotifier(r queue.Recalculator) *SyncNotifier {
	return &SyncNotifier{recalculator: r}
}

func (n *SyncNotifier) CourseChanged(ctx context.Context, bootcampID primitive.ObjectID) {
	if err := n.recalculator.RecalculateAverageCost(ctx, bootcampID); err != nil {
		log.Printf("Failed to recalculate average cost for bootcamp %s: %v", bootcampID.Hex(), err)
	}
}

func (n *SyncNotifier) ReviewChanged(ctx context.Context, bootcampID primitive.ObjectID) {
	if err := n.recalculator.RecalculateAverageRating(ctx, bootcampID); err != nil {
		log.Printf("Failed to recalculate average rating for bootcamp %s: %v", bootcampID.Hex(), err)
	}
}
