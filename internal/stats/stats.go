// Package stats maintains the derived aggregates (average cost, average
// rating) a bootcamp carries for its child records.
package stats

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseAverager supplies the mean tuition of a bootcamp's courses.
// ok is false when the bootcamp has no courses.
type CourseAverager interface {
	AverageTuition(ctx context.Context, bootcampID primitive.ObjectID) (mean float64, ok bool, err error)
}

// ReviewAverager supplies the mean rating of a bootcamp's reviews.
type ReviewAverager interface {
	AverageRating(ctx context.Context, bootcampID primitive.ObjectID) (mean float64, ok bool, err error)
}

// AggregateWriter persists a recomputed aggregate with a direct field update
// on the bootcamp. A nil value clears the field entirely.
type AggregateWriter interface {
	SetAverageCost(ctx context.Context, bootcampID primitive.ObjectID, value *int) error
	SetAverageRating(ctx context.Context, bootcampID primitive.ObjectID, value *float64) error
}

// Service recomputes a bootcamp's derived aggregates.
type Service struct {
	courses   CourseAverager
	reviews   ReviewAverager
	bootcamps AggregateWriter
}

// NewService creates a new stats Service.
func NewService(courses CourseAverager, reviews ReviewAverager, bootcamps AggregateWriter) *Service {
	return &Service{
		courses:   courses,
		reviews:   reviews,
		bootcamps: bootcamps,
	}
}

// RecalculateAverageCost recomputes the mean tuition of a bootcamp's courses,
// rounded up to the nearest multiple of 10. With zero courses remaining the
// field is cleared, not zeroed.
func (s *Service) RecalculateAverageCost(ctx context.Context, bootcampID primitive.ObjectID) error {
	mean, ok, err := s.courses.AverageTuition(ctx, bootcampID)
	if err != nil {
		return err
	}

	if !ok {
		return s.bootcamps.SetAverageCost(ctx, bootcampID, nil)
	}

	rounded := RoundCost(mean)
	return s.bootcamps.SetAverageCost(ctx, bootcampID, &rounded)
}

// RecalculateAverageRating recomputes the mean rating of a bootcamp's
// reviews. No rounding is applied; zero reviews clears the field.
func (s *Service) RecalculateAverageRating(ctx context.Context, bootcampID primitive.ObjectID) error {
	mean, ok, err := s.reviews.AverageRating(ctx, bootcampID)
	if err != nil {
		return err
	}

	if !ok {
		return s.bootcamps.SetAverageRating(ctx, bootcampID, nil)
	}

	return s.bootcamps.SetAverageRating(ctx, bootcampID, &mean)
}

// RoundCost rounds a mean tuition up to the nearest multiple of 10.
func RoundCost(mean float64) int {
	return int(math.Ceil(mean/10) * 10)
}
