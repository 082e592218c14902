package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
)

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	List(ctx context.Context, q *query.ListQuery, base bson.M) ([]models.Review, *query.Pagination, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AverageRating(ctx context.Context, bootcampID primitive.ObjectID) (float64, bool, error)
}

// reviewRepository implements ReviewRepository using MongoDB.
type reviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{
		collection: db.Collection("reviews"),
	}
}

// Create inserts a new review. The unique (bootcamp, user) index caps each
// user at one review per bootcamp.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	review.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateReview
		}
		return err
	}

	review.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a review by its ID.
func (r *reviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var review models.Review

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}

	return &review, nil
}

// List returns a filtered page of reviews, optionally scoped to a bootcamp.
func (r *reviewRepository) List(ctx context.Context, q *query.ListQuery, base bson.M) ([]models.Review, *query.Pagination, error) {
	reviews := []models.Review{}
	pagination, err := query.Find(ctx, r.collection, q, base, &reviews)
	if err != nil {
		return nil, nil, err
	}
	return reviews, pagination, nil
}

// Update applies a partial update to a review.
func (r *reviewRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateReviewRequest) (*models.Review, error) {
	updateDoc := bson.M{}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Text != nil {
		updateDoc["text"] = *update.Text
	}
	if update.Rating != nil {
		updateDoc["rating"] = *update.Rating
	}

	if len(updateDoc) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a review from the database.
func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// AverageRating computes the mean rating of a bootcamp's reviews.
// ok is false when the bootcamp has no reviews.
func (r *reviewRepository) AverageRating(ctx context.Context, bootcampID primitive.ObjectID) (float64, bool, error) {
	return average(ctx, r.collection, bootcampID, "$rating")
}
