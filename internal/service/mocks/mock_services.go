// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"mime/multipart"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, req *models.RegisterRequest) (string, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (string, error)
	UpdateDetailsFunc  func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateDetailsRequest) (*models.User, error)
	UpdatePasswordFunc func(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (string, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token string, req *models.ResetPasswordRequest) (string, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return "", nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return "", nil
}

func (m *MockAuthService) UpdateDetails(ctx context.Context, userID primitive.ObjectID, req *models.UpdateDetailsRequest) (*models.User, error) {
	if m.UpdateDetailsFunc != nil {
		return m.UpdateDetailsFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (string, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, req)
	}
	return "", nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) (string, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, req)
	}
	return "", nil
}

// MockBootcampService is a mock implementation of BootcampServicer.
type MockBootcampService struct {
	ListFunc         func(ctx context.Context, q *query.ListQuery) ([]models.Bootcamp, *query.Pagination, error)
	GetFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Bootcamp, error)
	CreateFunc       func(ctx context.Context, user *models.User, req *models.CreateBootcampRequest) (*models.Bootcamp, error)
	UpdateFunc       func(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateBootcampRequest) (*models.Bootcamp, error)
	DeleteFunc       func(ctx context.Context, user *models.User, id primitive.ObjectID) error
	WithinRadiusFunc func(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Bootcamp, error)
	UploadPhotoFunc  func(ctx context.Context, user *models.User, id primitive.ObjectID, file *multipart.FileHeader) (string, error)
}

func (m *MockBootcampService) List(ctx context.Context, q *query.ListQuery) ([]models.Bootcamp, *query.Pagination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil, nil
}

func (m *MockBootcampService) Get(ctx context.Context, id primitive.ObjectID) (*models.Bootcamp, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBootcampService) Create(ctx context.Context, user *models.User, req *models.CreateBootcampRequest) (*models.Bootcamp, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user, req)
	}
	return nil, nil
}

func (m *MockBootcampService) Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateBootcampRequest) (*models.Bootcamp, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user, id, req)
	}
	return nil, nil
}

func (m *MockBootcampService) Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, user, id)
	}
	return nil
}

func (m *MockBootcampService) WithinRadius(ctx context.Context, zipcode string, distanceMiles float64) ([]models.Bootcamp, error) {
	if m.WithinRadiusFunc != nil {
		return m.WithinRadiusFunc(ctx, zipcode, distanceMiles)
	}
	return nil, nil
}

func (m *MockBootcampService) UploadPhoto(ctx context.Context, user *models.User, id primitive.ObjectID, file *multipart.FileHeader) (string, error) {
	if m.UploadPhotoFunc != nil {
		return m.UploadPhotoFunc(ctx, user, id, file)
	}
	return "", nil
}

// MockCourseService is a mock implementation of CourseServicer.
type MockCourseService struct {
	ListFunc   func(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Course, *query.Pagination, error)
	GetFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	CreateFunc func(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateCourseRequest) (*models.Course, error)
	UpdateFunc func(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateCourseRequest) (*models.Course, error)
	DeleteFunc func(ctx context.Context, user *models.User, id primitive.ObjectID) error
}

func (m *MockCourseService) List(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Course, *query.Pagination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q, bootcampID)
	}
	return nil, nil, nil
}

func (m *MockCourseService) Get(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCourseService) Create(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateCourseRequest) (*models.Course, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user, bootcampID, req)
	}
	return nil, nil
}

func (m *MockCourseService) Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateCourseRequest) (*models.Course, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user, id, req)
	}
	return nil, nil
}

func (m *MockCourseService) Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, user, id)
	}
	return nil
}

// MockReviewService is a mock implementation of ReviewServicer.
type MockReviewService struct {
	ListFunc   func(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Review, *query.Pagination, error)
	GetFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	CreateFunc func(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateReviewRequest) (*models.Review, error)
	UpdateFunc func(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateReviewRequest) (*models.Review, error)
	DeleteFunc func(ctx context.Context, user *models.User, id primitive.ObjectID) error
}

func (m *MockReviewService) List(ctx context.Context, q *query.ListQuery, bootcampID *primitive.ObjectID) ([]models.Review, *query.Pagination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q, bootcampID)
	}
	return nil, nil, nil
}

func (m *MockReviewService) Get(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewService) Create(ctx context.Context, user *models.User, bootcampID primitive.ObjectID, req *models.CreateReviewRequest) (*models.Review, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user, bootcampID, req)
	}
	return nil, nil
}

func (m *MockReviewService) Update(ctx context.Context, user *models.User, id primitive.ObjectID, req *models.UpdateReviewRequest) (*models.Review, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user, id, req)
	}
	return nil, nil
}

func (m *MockReviewService) Delete(ctx context.Context, user *models.User, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, user, id)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	ListFunc   func(ctx context.Context, q *query.ListQuery) ([]models.User, *query.Pagination, error)
	GetFunc    func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CreateFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserService) List(ctx context.Context, q *query.ListQuery) ([]models.User, *query.Pagination, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return nil, nil, nil
}

func (m *MockUserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
