package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/authz"
	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
	"bootcamp-api/internal/repository"
	"bootcamp-api/internal/stats"
)

// reviewService implements ReviewServicer.
type reviewService struct {
	reviewRepo   repository.ReviewRepository
	bootcampRepo repository.BootcampRepository
	stats        stats.Notifier
}

// NewReviewService creates a new ReviewServicer.
func NewReviewService(reviewRepo repository.ReviewRepository, bootcampRepo repository.BootcampRepository, statsNotifier stats.Notifier) ReviewServicer {
	return &reviewService{
		reviewRepo:   reviewRepo,
		bootcampRepo: bootcampRepo,
		stats:        statsNotifier,
	}
}

// List returns a page of reviews, scoped to a bootcamp when bootcampID is
// non-nil. The global listing expands each review's bootcamp summary.
func (s *reviewService) List(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Review, *query.Pagination, error) {
	var base bson.M
	if bootcampID != nil {
		if _, err := s.bootcampRepo.FindByID(ctx, *bootcampID); err != nil {
			return nil, nil, err
		}
		base = bson.M{"bootcamp": *bootcampID}
	}

	reviews, pagination, err := s.reviewRepo.List(ctx, q, base)
	if err != nil {
		return nil, nil, err
	}

	if bootcampID == nil {
		if err := s.expandBootcamps(ctx, reviews); err != nil {
			return nil, nil, err
		}
	}

	return reviews, pagination, nil
}

// Get returns a single review with its bootcamp summary expanded.
func (s *reviewService) Get(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{*review}
	if err := s.expandBootcamps(ctx, reviews); err != nil {
		return nil, err
	}

	return &reviews[0], nil
}

// Create adds the caller's review of a bootcamp and schedules an average
// rating recompute. The unique index keeps it to one review per user.
func (s *reviewService) Create(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.bootcampRepo.FindByID(ctx, bootcampID); err != nil {
		return nil, err
	}

	review := &models.Review{
		Title:      req.Title,
		Text:       req.Text,
		Rating:     req.Rating,
		BootcampID: bootcampID,
		UserID:     user.ID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.stats.ReviewChanged(ctx, bootcampID)

	return review, nil
}

// Update applies a partial update after the ownership check.
func (s *reviewService) Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModify(user, review.UserID) {
		return nil, apperrors.ErrUnauthorized
	}

	return s.reviewRepo.Update(ctx, id, req)
}

// Delete removes a review after the ownership check and schedules an
// average rating recompute for its bootcamp.
func (s *reviewService) Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanModify(user, review.UserID) {
		return apperrors.ErrUnauthorized
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.stats.ReviewChanged(ctx, review.BootcampID)

	return nil
}

// expandBootcamps attaches the reviewed bootcamp's summary to each review.
func (s *reviewService) expandBootcamps(ctx context.Context, reviews []models.Review) error {
	ids := make([]primitive.ObjectID, 0, len(reviews))
	seen := make(map[primitive.ObjectID]bool, len(reviews))
	for _, review := range reviews {
		if !seen[review.BootcampID] {
			seen[review.BootcampID] = true
			ids = append(ids, review.BootcampID)
		}
	}

	summaries, err := s.bootcampRepo.FindSummaries(ctx, ids)
	if err != nil {
		return err
	}

	for i := range reviews {
		if summary, ok := summaries[reviews[i].BootcampID]; ok {
			reviews[i].Bootcamp = &summary
		}
	}

	return nil
}
