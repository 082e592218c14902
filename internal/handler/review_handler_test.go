package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/service/mocks"
)

func TestReviewHandler_Create(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}
	bootcampID := primitive.NewObjectID()

	reviewBody := func(rating float64) []byte {
		body, _ := json.Marshal(gin.H{
			"title":  "Learned a ton",
			"text":   "Best decision I made",
			"rating": rating,
		})
		return body
	}

	t.Run("creates review", func(t *testing.T) {
		mockService := &mocks.MockReviewService{
			CreateFunc: func(ctx context.Context, u *models.User, id primitive.ObjectID, req *models.CreateReviewRequest) (*models.Review, error) {
				return &models.Review{ID: primitive.NewObjectID(), Title: req.Title, BootcampID: id, UserID: u.ID}, nil
			},
		}
		handler := NewReviewHandler(mockService)

		router := gin.New()
		router.POST("/api/bootcamps/:id/reviews", asUser(user), handler.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bootcamps/"+bootcampID.Hex()+"/reviews", bytes.NewReader(reviewBody(8)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("second review is a bad request", func(t *testing.T) {
		mockService := &mocks.MockReviewService{
			CreateFunc: func(ctx context.Context, u *models.User, id primitive.ObjectID, req *models.CreateReviewRequest) (*models.Review, error) {
				return nil, apperrors.ErrDuplicateReview
			},
		}
		handler := NewReviewHandler(mockService)

		router := gin.New()
		router.POST("/api/bootcamps/:id/reviews", asUser(user), handler.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bootcamps/"+bootcampID.Hex()+"/reviews", bytes.NewReader(reviewBody(8)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rating outside range fails validation", func(t *testing.T) {
		handler := NewReviewHandler(&mocks.MockReviewService{})

		router := gin.New()
		router.POST("/api/bootcamps/:id/reviews", asUser(user), handler.Create)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bootcamps/"+bootcampID.Hex()+"/reviews", bytes.NewReader(reviewBody(11)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	t.Run("author deletion succeeds", func(t *testing.T) {
		mockService := &mocks.MockReviewService{
			DeleteFunc: func(ctx context.Context, u *models.User, id primitive.ObjectID) error {
				return nil
			},
		}
		handler := NewReviewHandler(mockService)

		router := gin.New()
		router.DELETE("/api/reviews/:id", asUser(&models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}), handler.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/reviews/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign review is forbidden", func(t *testing.T) {
		mockService := &mocks.MockReviewService{
			DeleteFunc: func(ctx context.Context, u *models.User, id primitive.ObjectID) error {
				return apperrors.ErrUnauthorized
			},
		}
		handler := NewReviewHandler(mockService)

		router := gin.New()
		router.DELETE("/api/reviews/:id", asUser(&models.User{ID: primitive.NewObjectID(), Role: models.RoleUser}), handler.Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/reviews/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
