package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCourseAverager struct {
	mean float64
	ok   bool
	err  error
}

func (f *fakeCourseAverager) AverageTuition(ctx context.Context, bootcampID primitive.ObjectID) (float64, bool, error) {
	return f.mean, f.ok, f.err
}

type fakeReviewAverager struct {
	mean float64
	ok   bool
	err  error
}

func (f *fakeReviewAverager) AverageRating(ctx context.Context, bootcampID primitive.ObjectID) (float64, bool, error) {
	return f.mean, f.ok, f.err
}

type fakeAggregateWriter struct {
	cost       *int
	costSet    bool
	rating     *float64
	ratingSet  bool
	writeError error
}

func (f *fakeAggregateWriter) SetAverageCost(ctx context.Context, bootcampID primitive.ObjectID, value *int) error {
	f.cost = value
	f.costSet = true
	return f.writeError
}

func (f *fakeAggregateWriter) SetAverageRating(ctx context.Context, bootcampID primitive.ObjectID, value *float64) error {
	f.rating = value
	f.ratingSet = true
	return f.writeError
}

func TestRecalculateAverageCost(t *testing.T) {
	bootcampID := primitive.NewObjectID()

	t.Run("rounds mean up to nearest ten", func(t *testing.T) {
		writer := &fakeAggregateWriter{}
		svc := NewService(&fakeCourseAverager{mean: 9250.0 / 3, ok: true}, &fakeReviewAverager{}, writer)

		err := svc.RecalculateAverageCost(context.Background(), bootcampID)

		require.NoError(t, err)
		require.NotNil(t, writer.cost)
		assert.Equal(t, 3090, *writer.cost)
	})

	t.Run("exact multiple is unchanged", func(t *testing.T) {
		writer := &fakeAggregateWriter{}
		svc := NewService(&fakeCourseAverager{mean: 8000, ok: true}, &fakeReviewAverager{}, writer)

		err := svc.RecalculateAverageCost(context.Background(), bootcampID)

		require.NoError(t, err)
		require.NotNil(t, writer.cost)
		assert.Equal(t, 8000, *writer.cost)
	})

	t.Run("clears field when no courses remain", func(t *testing.T) {
		writer := &fakeAggregateWriter{}
		svc := NewService(&fakeCourseAverager{ok: false}, &fakeReviewAverager{}, writer)

		err := svc.RecalculateAverageCost(context.Background(), bootcampID)

		require.NoError(t, err)
		assert.True(t, writer.costSet)
		assert.Nil(t, writer.cost)
	})

	t.Run("propagates aggregation error", func(t *testing.T) {
		writer := &fakeAggregateWriter{}
		svc := NewService(&fakeCourseAverager{err: errors.New("aggregation failed")}, &fakeReviewAverager{}, writer)

		err := svc.RecalculateAverageCost(context.Background(), bootcampID)

		assert.Error(t, err)
		assert.False(t, writer.costSet)
	})
}

func TestRecalculateAverageRating(t *testing.T) {
	bootcampID := primitive.NewObjectID()

	t.Run("stores unrounded mean", func(t *testing.T) {
		writer := &fakeAggregateWriter{}
		svc := NewService(&fakeCourseAverager{}, &fakeReviewAverager{mean: 7.5, ok: true}, writer)

		err := svc.RecalculateAverageRating(context.Background(), bootcampID)

		require.NoError(t, err)
		require.NotNil(t, writer.rating)
		assert.Equal(t, 7.5, *writer.rating)
	})

	t.Run("clears field when no reviews remain", func(t *testing.T) {
		writer := &fakeAggregateWriter{}
		svc := NewService(&fakeCourseAverager{}, &fakeReviewAverager{ok: false}, writer)

		err := svc.RecalculateAverageRating(context.Background(), bootcampID)

		require.NoError(t, err)
		assert.True(t, writer.ratingSet)
		assert.Nil(t, writer.rating)
	})
}

func TestRoundCost(t *testing.T) {
	tests := []struct {
		name string
		mean float64
		want int
	}{
		{"rounds up", 6333.33, 6340},
		{"exact multiple", 10000, 10000},
		{"just over multiple", 10000.01, 10010},
		{"small value", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundCost(tt.mean))
		})
	}
}
