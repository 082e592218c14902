// Package service contains business logic for the application.
package service

import (
	"context"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (string, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	UpdateDetails(ctx context.Context, userID primitive.ObjectID, req *models.UpdateDetailsRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) (string, error)
}

// BootcampServicer defines the interface for bootcamp operations.
type BootcampServicer interface {
	List(ctx context.Context, q *query.ListQuery) ([]models.Bootcamp, *query.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Bootcamp, error)
	Create(ctx context.Context, user *models.User, req *models.CreateBootcampRequest) (*models.Bootcamp, error)
	Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateBootcampRequest) (*models.Bootcamp, error)
	Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error
	WithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Bootcamp, error)
	UploadPhoto(ctx context.Context, user *models.User, id primitive.ObjectID, file *multipart.FileHeader) (string, error)
}

// CourseServicer defines the interface for course operations.
type CourseServicer interface {
	List(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Course, *query.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Create(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error
}

// ReviewServicer defines the interface for review operations.
type ReviewServicer interface {
	List(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Review, *query.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Create(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error
}

// UserServicer defines the interface for admin user management.
type UserServicer interface {
	List(ctx context.Context, q *query.ListQuery) ([]models.User, *query.Pagination, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
