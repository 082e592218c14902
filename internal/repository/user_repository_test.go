package repository

import (
	"context"
	"testing"
	"time"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)

	assert.NotNil(t, repo)
}

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Name:     "Test User",
			Email:    "test@example.com",
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user1 := &models.User{
			Name:     "User 1",
			Email:    "duplicate@example.com",
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}
		err := repo.Create(ctx, user1)
		require.NoError(t, err)

		user2 := &models.User{
			Name:     "User 2",
			Email:    "duplicate@example.com",
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}
		err = repo.Create(ctx, user2)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Name:     "Find By ID User",
			Email:    "findbyid@example.com",
			Role:     models.RolePublisher,
			Password: "hashedpassword",
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, user.Role, found.Role)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Name:     "Find By Email User",
			Email:    "findbyemail@example.com",
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindByEmail(ctx, "findbyemail@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("returns error for unknown email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindByResetToken(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	createUser := func(t *testing.T, email string) *models.User {
		t.Helper()
		user := &models.User{
			Name:     "Reset User",
			Email:    email,
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}
		require.NoError(t, repo.Create(ctx, user))
		return user
	}

	t.Run("finds user with unexpired token", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "reset@example.com")
		err := repo.SetResetToken(ctx, user.ID, "tokenhash", time.Now().Add(10*time.Minute))
		require.NoError(t, err)

		found, err := repo.FindByResetToken(ctx, "tokenhash")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "expired@example.com")
		err := repo.SetResetToken(ctx, user.ID, "expiredhash", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		found, err := repo.FindByResetToken(ctx, "expiredhash")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrInvalidResetToken, err)
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByResetToken(ctx, "nosuchhash")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrInvalidResetToken, err)
	})

	t.Run("token is unusable after clearing", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "cleared@example.com")
		err := repo.SetResetToken(ctx, user.ID, "clearedhash", time.Now().Add(10*time.Minute))
		require.NoError(t, err)

		err = repo.ClearResetToken(ctx, user.ID)
		require.NoError(t, err)

		found, err := repo.FindByResetToken(ctx, "clearedhash")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrInvalidResetToken, err)
	})
}

func TestUserRepository_List(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("filters and paginates", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		for _, u := range []*models.User{
			{Name: "Alice", Email: "alice@example.com", Role: models.RoleUser, Password: "x"},
			{Name: "Bob", Email: "bob@example.com", Role: models.RolePublisher, Password: "x"},
			{Name: "Carol", Email: "carol@example.com", Role: models.RoleUser, Password: "x"},
		} {
			require.NoError(t, repo.Create(ctx, u))
		}

		q := &query.ListQuery{
			Filter: bson.M{"role": models.RoleUser},
			Page:   1,
			Limit:  1,
		}
		users, pagination, err := repo.List(ctx, q)

		require.NoError(t, err)
		assert.Len(t, users, 1)
		require.NotNil(t, pagination.Next)
		assert.Equal(t, 2, pagination.Next.Page)
		assert.Nil(t, pagination.Prev)
	})
}

func TestUserRepository_Updates(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	createUser := func(t *testing.T, email string) *models.User {
		t.Helper()
		user := &models.User{
			Name:     "Update User",
			Email:    email,
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}
		require.NoError(t, repo.Create(ctx, user))
		return user
	}

	t.Run("updates name and email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "details@example.com")
		newName := "Renamed User"
		newEmail := "renamed@example.com"

		updated, err := repo.UpdateDetails(ctx, user.ID, &models.UpdateDetailsRequest{
			Name:  &newName,
			Email: &newEmail,
		})

		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
		assert.Equal(t, newEmail, updated.Email)
	})

	t.Run("empty update returns user unchanged", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "noop@example.com")

		updated, err := repo.UpdateDetails(ctx, user.ID, &models.UpdateDetailsRequest{})

		require.NoError(t, err)
		assert.Equal(t, user.Name, updated.Name)
		assert.Equal(t, user.Email, updated.Email)
	})

	t.Run("admin update can change role", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "promote@example.com")
		newRole := models.RolePublisher

		updated, err := repo.UpdateUser(ctx, user.ID, &models.UpdateUserRequest{Role: &newRole})

		require.NoError(t, err)
		assert.Equal(t, models.RolePublisher, updated.Role)
	})

	t.Run("updates password hash", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := createUser(t, "password@example.com")

		err := repo.UpdatePassword(ctx, user.ID, "newhash")
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "newhash", found.Password)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		newName := "Ghost"
		updated, err := repo.UpdateDetails(ctx, primitive.NewObjectID(), &models.UpdateDetailsRequest{Name: &newName})

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes existing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Name:     "Delete User",
			Email:    "delete@example.com",
			Role:     models.RoleUser,
			Password: "hashedpassword",
		}
		require.NoError(t, repo.Create(ctx, user))

		err := repo.Delete(ctx, user.ID)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, user.ID)
		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
