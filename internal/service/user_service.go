package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
	"bootcamp-api/internal/repository"
	"bootcamp-api/pkg/auth"
)

// userService implements UserServicer. All operations are admin-only,
// enforced by the route middleware.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserServicer.
func NewUserService(userRepo repository.UserRepository) UserServicer {
	return &userService{
		userRepo: userRepo,
	}
}

// List returns a filtered, sorted, paginated page of users.
func (s *userService) List(ctx context.Context, q *query.ListQuery) ([]models.User, *query.Pagination, error) {
	return s.userRepo.List(ctx, q)
}

// Get returns a single user by ID.
func (s *userService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Create adds a user with any role, including admin.
func (s *userService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update applies a partial update to a user's profile and role.
func (s *userService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	return s.userRepo.UpdateUser(ctx, id, req)
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.userRepo.Delete(ctx, id)
}
