package queue

import (
	"context"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recalculator defines the interface for recomputing a bootcamp's derived
// aggregates. Implemented by the stats service.
type Recalculator interface {
	RecalculateAverageCost(ctx context.Context, bootcampID primitive.ObjectID) error
	RecalculateAverageRating(ctx context.Context, bootcampID primitive.ObjectID) error
}

// Processor processes stats jobs from the queue. A recomputation failure is
// logged and swallowed: the course/review write that triggered the job has
// already committed and must not be failed retroactively.
type Processor struct {
	queue        *MemoryQueue
	recalculator Recalculator
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewProcessor creates a new stats job processor.
func NewProcessor(queue *MemoryQueue, recalculator Recalculator, workerCount int) *Processor {
	return &Processor{
		queue:        queue,
		recalculator: recalculator,
		workerCount:  workerCount,
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Stats processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Stats processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Stats worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job StatsJob) {
	var err error
	switch job.Metric {
	case MetricCost:
		err = p.recalculator.RecalculateAverageCost(ctx, job.BootcampID)
	case MetricRating:
		err = p.recalculator.RecalculateAverageRating(ctx, job.BootcampID)
	default:
		log.Printf("Unknown stats metric %q for bootcamp %s", job.Metric, job.BootcampID.Hex())
		return
	}

	if err != nil {
		log.Printf("Stats recomputation (%s) failed for bootcamp %s: %v", job.Metric, job.BootcampID.Hex(), err)
	}
}
