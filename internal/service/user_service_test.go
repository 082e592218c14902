package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	repomocks "bootcamp-api/internal/repository/mocks"
	"bootcamp-api/pkg/auth"
)

func TestUserService_Create(t *testing.T) {
	t.Run("hashes password and stores the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var created *models.User
		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				user.ID = primitive.NewObjectID()
				created = user
				return nil
			})
		svc := NewUserService(userRepo)

		user, err := svc.Create(context.Background(), &models.CreateUserRequest{
			Name:     "Sasha Ryan",
			Email:    "sasha@devcentral.io",
			Password: "hunter2hunter2",
			Role:     models.RolePublisher,
		})

		require.NoError(t, err)
		assert.Equal(t, models.RolePublisher, user.Role)
		require.NotNil(t, created)
		assert.NotEqual(t, "hunter2hunter2", created.Password)
		assert.NoError(t, auth.CheckPassword("hunter2hunter2", created.Password))
	})

	t.Run("defaults role to user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)
		svc := NewUserService(userRepo)

		user, err := svc.Create(context.Background(), &models.CreateUserRequest{
			Name:     "No Role",
			Email:    "norole@devcentral.io",
			Password: "hunter2hunter2",
		})

		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, user.Role)
	})

	t.Run("duplicate email surfaces repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrUserAlreadyExists)
		svc := NewUserService(userRepo)

		_, err := svc.Create(context.Background(), &models.CreateUserRequest{
			Name:     "Dup",
			Email:    "sasha@devcentral.io",
			Password: "hunter2hunter2",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Update(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("passes update through to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		role := models.RoleAdmin
		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			UpdateUser(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
				return &models.User{ID: id, Role: *update.Role}, nil
			})
		svc := NewUserService(userRepo)

		user, err := svc.Update(context.Background(), userID, &models.UpdateUserRequest{Role: &role})

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			UpdateUser(gomock.Any(), userID, gomock.Any()).
			Return(nil, apperrors.ErrUserNotFound)
		svc := NewUserService(userRepo)

		_, err := svc.Update(context.Background(), userID, &models.UpdateUserRequest{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("deletes by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			Delete(gomock.Any(), userID).
			Return(nil)
		svc := NewUserService(userRepo)

		require.NoError(t, svc.Delete(context.Background(), userID))
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := repomocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().
			Delete(gomock.Any(), userID).
			Return(apperrors.ErrUserNotFound)
		svc := NewUserService(userRepo)

		assert.ErrorIs(t, svc.Delete(context.Background(), userID), apperrors.ErrUserNotFound)
	})
}
