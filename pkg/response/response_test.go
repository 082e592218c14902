package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := testContext()

	Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)
}

func TestList(t *testing.T) {
	c, w := testContext()

	List(c, 2, query.Paginate(1, 15, 2), []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])

	// Single page: pagination is present but empty.
	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, pagination)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found sentinel", apperrors.ErrBootcampNotFound, http.StatusNotFound},
		{"forbidden sentinel", apperrors.ErrUnauthorized, http.StatusForbidden},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"publisher limit", apperrors.ErrBootcampLimitReached, http.StatusBadRequest},
		{"upstream geocoder", apperrors.ErrGeocodingFailed, http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext()

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
			// Field detail never appears for 404/401/500.
			if tt.wantStatus != http.StatusBadRequest {
				assert.Empty(t, resp.Errors)
			}
		})
	}
}

func TestDuplicateKeyField(t *testing.T) {
	err := errors.New(`write exception: write errors: [E11000 duplicate key error collection: bootcamp.users index: email_1 dup key: { email: "a@b.com" }]`)

	assert.Equal(t, "email", duplicateKeyField(err))
}
