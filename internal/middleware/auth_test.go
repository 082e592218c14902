package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	repomocks "bootcamp-api/internal/repository/mocks"
	"bootcamp-api/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(jwtManager *auth.JWTManager, userRepo *repomocks.MockUserRepository, roles ...string) *gin.Engine {
	router := gin.New()
	handlers := []gin.HandlerFunc{Protect(jwtManager, userRepo)}
	if len(roles) > 0 {
		handlers = append(handlers, Authorize(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestProtect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "test@example.com",
		Role:  models.RoleUser,
	}
	userRepo := repomocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		FindByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, apperrors.ErrUserNotFound
		}).
		AnyTimes()

	token, err := jwtManager.GenerateToken(user.ID.Hex())
	require.NoError(t, err)

	t.Run("accepts bearer token", func(t *testing.T) {
		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "test@example.com")
	})

	t.Run("falls back to session cookie", func(t *testing.T) {
		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects request without token", func(t *testing.T) {
		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed authorization header", func(t *testing.T) {
		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token "+token)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header still falls back to session cookie", func(t *testing.T) {
		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token "+token)
		req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := auth.NewJWTManager("other-secret", time.Hour)
		forged, err := other.GenerateToken(user.ID.Hex())
		require.NoError(t, err)

		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+forged)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects token for deleted user", func(t *testing.T) {
		deletedToken, err := jwtManager.GenerateToken(primitive.NewObjectID().Hex())
		require.NoError(t, err)

		router := protectedRouter(jwtManager, userRepo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+deletedToken)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	makeUserRepo := func(role string) (*repomocks.MockUserRepository, string) {
		user := &models.User{
			ID:    primitive.NewObjectID(),
			Email: "test@example.com",
			Role:  role,
		}
		token, err := jwtManager.GenerateToken(user.ID.Hex())
		require.NoError(t, err)
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().
			FindByID(gomock.Any(), user.ID).
			Return(user, nil).
			AnyTimes()
		return repo, token
	}

	t.Run("allows listed role", func(t *testing.T) {
		userRepo, token := makeUserRepo(models.RolePublisher)
		router := protectedRouter(jwtManager, userRepo, models.RolePublisher, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbids unlisted role", func(t *testing.T) {
		userRepo, token := makeUserRepo(models.RoleUser)
		router := protectedRouter(jwtManager, userRepo, models.RolePublisher, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "role 'user' is not authorized")
	})
}
