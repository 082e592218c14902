package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
)

// BootcampRepository defines the interface for bootcamp data operations.
type BootcampRepository interface {
	Create(ctx context.Context, bootcamp *models.Bootcamp) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Bootcamp, error)
	ExistsForUser(ctx context.Context, userID primitive.ObjectID) (bool, error)
	List(ctx context.Context, q *query.ListQuery) ([]models.Bootcamp, *query.Pagination, error)
	FindWithinRadius(ctx context.Context, lng, lat, radiusRadians float64) ([]models.Bootcamp, error)
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.BootcampSummary, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBootcampRequest, location *models.Location) (*models.Bootcamp, error)
	UpdatePhoto(ctx context.Context, id primitive.ObjectID, filename string) error
	SetAverageCost(ctx context.Context, id primitive.ObjectID, value *int) error
	SetAverageRating(ctx context.Context, id primitive.ObjectID, value *float64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// bootcampRepository implements BootcampRepository using MongoDB.
type bootcampRepository struct {
	collection *mongo.Collection
}

// NewBootcampRepository creates a new BootcampRepository.
func NewBootcampRepository(db *mongo.Database) BootcampRepository {
	return &bootcampRepository{
		collection: db.Collection("bootcamps"),
	}
}

// Create inserts a new bootcamp, deriving its slug from the name.
func (r *bootcampRepository) Create(ctx context.Context, bootcamp *models.Bootcamp) error {
	bootcamp.Slug = slug.Make(bootcamp.Name)
	bootcamp.CreatedAt = time.Now()
	if bootcamp.Photo == "" {
		bootcamp.Photo = models.DefaultPhoto
	}

	result, err := r.collection.InsertOne(ctx, bootcamp)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicateBootcamp
		}
		return err
	}

	bootcamp.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a bootcamp by its ID.
func (r *bootcampRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Bootcamp, error) {
	var bootcamp models.Bootcamp

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bootcamp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, err
	}

	return &bootcamp, nil
}

// ExistsForUser reports whether the user already published a bootcamp.
func (r *bootcampRepository) ExistsForUser(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"user": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns a filtered, sorted, paginated page of bootcamps.
func (r *bootcampRepository) List(ctx context.Context, q *query.ListQuery) ([]models.Bootcamp, *query.Pagination, error) {
	bootcamps := []models.Bootcamp{}
	pagination, err := query.Find(ctx, r.collection, q, nil, &bootcamps)
	if err != nil {
		return nil, nil, err
	}
	return bootcamps, pagination, nil
}

// FindWithinRadius returns bootcamps whose location falls inside a sphere
// cap centered on the given point. The radius is in radians.
func (r *bootcampRepository) FindWithinRadius(ctx context.Context, lng, lat, radiusRadians float64) ([]models.Bootcamp, error) {
	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, radiusRadians},
			},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bootcamps := []models.Bootcamp{}
	if err := cursor.All(ctx, &bootcamps); err != nil {
		return nil, err
	}

	return bootcamps, nil
}

// FindSummaries returns the name/description summaries for a set of
// bootcamp IDs, keyed by ID. Used to expand the bootcamp relation on
// courses and reviews.
func (r *bootcampRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.BootcampSummary, error) {
	summaries := make(map[primitive.ObjectID]models.BootcampSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.BootcampSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	for _, summary := range results {
		summaries[summary.ID] = summary
	}

	return summaries, nil
}

// Update applies a partial update. A name change re-derives the slug; a
// non-nil location replaces the geocoded point.
func (r *bootcampRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBootcampRequest, location *models.Location) (*models.Bootcamp, error) {
	updateDoc := bson.M{}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
		updateDoc["slug"] = slug.Make(*update.Name)
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Website != nil {
		updateDoc["website"] = *update.Website
	}
	if update.Phone != nil {
		updateDoc["phone"] = *update.Phone
	}
	if update.Email != nil {
		updateDoc["email"] = *update.Email
	}
	if update.Careers != nil {
		updateDoc["careers"] = update.Careers
	}
	if update.Housing != nil {
		updateDoc["housing"] = *update.Housing
	}
	if update.JobAssistance != nil {
		updateDoc["jobAssistance"] = *update.JobAssistance
	}
	if update.JobGuarantee != nil {
		updateDoc["jobGuarantee"] = *update.JobGuarantee
	}
	if update.AcceptGi != nil {
		updateDoc["acceptGi"] = *update.AcceptGi
	}
	if location != nil {
		updateDoc["location"] = location
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
			return nil, apperrors.ErrBootcampNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrDuplicateBootcamp
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// UpdatePhoto records the stored photo filename on the bootcamp.
func (r *bootcampRepository) UpdatePhoto(ctx context.Context, id primitive.ObjectID, filename string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"photo": filename}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrBootcampNotFound
	}

	return nil
}

// SetAverageCost writes a recomputed average cost. A nil value removes the
// field so a bootcamp with no courses carries no aggregate at all.
func (r *bootcampRepository) SetAverageCost(ctx context.Context, id primitive.ObjectID, value *int) error {
	return r.setAggregate(ctx, id, "averageCost", value == nil, value)
}

// SetAverageRating writes a recomputed average rating, clearing the field
// when nil.
func (r *bootcampRepository) SetAverageRating(ctx context.Context, id primitive.ObjectID, value *float64) error {
	return r.setAggregate(ctx, id, "averageRating", value == nil, value)
}

func (r *bootcampRepository) setAggregate(ctx context.Context, id primitive.ObjectID, field string, clear bool, value interface{}) error {
	update := bson.M{"$set": bson.M{field: value}}
	if clear {
		update = bson.M{"$unset": bson.M{field: ""}}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Delete removes a bootcamp from the database.
func (r *bootcampRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrBootcampNotFound
	}

	return nil
}
