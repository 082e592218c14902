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

// CourseRepository defines the interface for course data operations.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	List(ctx context.Context, q *query.ListQuery, base bson.M) ([]models.Course, *query.Pagination, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) error
	AverageTuition(ctx context.Context, bootcampID primitive.ObjectID) (float64, bool, error)
}

// courseRepository implements CourseRepository using MongoDB.
type courseRepository struct {
	collection *mongo.Collection
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *mongo.Database) CourseRepository {
	return &courseRepository{
		collection: db.Collection("courses"),
	}
}

// Create inserts a new course into the database.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	course.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return err
	}

	course.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a course by its ID.
func (r *courseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}

	return &course, nil
}

// List returns a filtered page of courses. The base filter scopes the page
// to a bootcamp when listing through the nested route.
func (r *courseRepository) List(ctx context.Context, q *query.ListQuery, base bson.M) ([]models.Course, *query.Pagination, error) {
	courses := []models.Course{}
	pagination, err := query.Find(ctx, r.collection, q, base, &courses)
	if err != nil {
		return nil, nil, err
	}
	return courses, pagination, nil
}

// Update applies a partial update to a course.
func (r *courseRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateCourseRequest) (*models.Course, error) {
	updateDoc := bson.M{}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Weeks != nil {
		updateDoc["weeks"] = *update.Weeks
	}
	if update.Tuition != nil {
		updateDoc["tuition"] = *update.Tuition
	}
	if update.MinimumSkill != nil {
		updateDoc["minimumSkill"] = *update.MinimumSkill
	}
	if update.ScholarshipAvailable != nil {
		updateDoc["scholarshipAvailable"] = *update.ScholarshipAvailable
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
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a course from the database.
func (r *courseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteByBootcamp removes every course belonging to a bootcamp.
func (r *courseRepository) DeleteByBootcamp(ctx context.Context, bootcampID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"bootcamp": bootcampID})
	return err
}

// AverageTuition computes the mean tuition of a bootcamp's courses.
// ok is false when the bootcamp has no courses.
func (r *courseRepository) AverageTuition(ctx context.Context, bootcampID primitive.ObjectID) (float64, bool, error) {
	return average(ctx, r.collection, bootcampID, "$tuition")
}

// average runs a $match/$group mean over one field of a bootcamp's children.
func average(ctx context.Context, coll *mongo.Collection, bootcampID primitive.ObjectID, field string) (float64, bool, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"bootcamp": bootcampID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$bootcamp",
			"average": bson.M{"$avg": field},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, false, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, false, err
	}

	if len(results) == 0 {
		return 0, false, nil
	}

	return results[0].Average, true, nil
}
