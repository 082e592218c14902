//go:build api

package api

import (
	"net/http"
	"testing"

	"bootcamp-api/internal/models"
	"bootcamp-api/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUserManagementAccess verifies only admins reach the /api/users routes.
func TestUserManagementAccess(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("error - unauthenticated", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/users", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - regular user is forbidden", func(t *testing.T) {
		userToken := testServer.CreateUser(t, "notadmin@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users", userToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - publisher is forbidden", func(t *testing.T) {
		publisherToken := testServer.CreatePublisher(t, "notadminpublisher@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users", publisherToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestAdminUserCRUD exercises the admin user-management endpoints.
func TestAdminUserCRUD(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	adminToken := testServer.CreateAdmin(t, "useradmin@example.com")

	t.Run("success - creates a user", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/users", adminToken, models.CreateUserRequest{
			Name:     "Managed User",
			Email:    "managed@example.com",
			Password: "password123",
			Role:     models.RolePublisher,
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "managed@example.com", resp.Data["email"])
		assert.Equal(t, models.RolePublisher, resp.Data["role"])
		assert.Nil(t, resp.Data["password"], "password must never appear in responses")

		// The created account can log in
		token := testServer.LoginUser(t, "managed@example.com", "password123")
		assert.NotEmpty(t, token)
	})

	t.Run("success - lists users with pagination", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users?limit=1&page=1", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		assert.Len(t, resp.Data, 1)
		require.NotNil(t, resp.Pagination)
		require.NotNil(t, resp.Pagination.Next)
		assert.Equal(t, 2, resp.Pagination.Next.Page)
	})

	t.Run("success - filters by role", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users?role=publisher", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "managed@example.com", resp.Data[0]["email"])
	})

	t.Run("success - gets a single user", func(t *testing.T) {
		id := lookupUserID(t, adminToken, "managed@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/"+id, adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Managed User", resp.Data["name"])
	})

	t.Run("success - promotes a user to admin", func(t *testing.T) {
		id := lookupUserID(t, adminToken, "managed@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/users/"+id, adminToken, map[string]string{
			"role": models.RoleAdmin,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, models.RoleAdmin, resp.Data["role"])
		assert.Equal(t, "Managed User", resp.Data["name"], "untouched fields survive")
	})

	t.Run("error - invalid role is rejected", func(t *testing.T) {
		id := lookupUserID(t, adminToken, "managed@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/users/"+id, adminToken, map[string]string{
			"role": "superuser",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success - deletes a user", func(t *testing.T) {
		id := lookupUserID(t, adminToken, "managed@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/users/"+id, adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		wGet := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/"+id, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, wGet.Code)

		// The deleted account cannot log in anymore
		wLogin := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/auth/login", models.LoginRequest{
			Email:    "managed@example.com",
			Password: "password123",
		})
		assert.Equal(t, http.StatusUnauthorized, wLogin.Code)
	})

	t.Run("error - unknown user id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users/507f1f77bcf86cd799439011", adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - duplicate email on create", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/users", adminToken, models.CreateUserRequest{
			Name:     "Copycat",
			Email:    "useradmin@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// lookupUserID finds a user's id by email through the admin list endpoint.
func lookupUserID(t *testing.T, adminToken, email string) string {
	t.Helper()

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/users?email="+email, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := testutil.ParseAPIListResponse(t, w)
	require.NotEmpty(t, resp.Data, "no user found for %s", email)

	id, _ := resp.Data[0]["id"].(string)
	require.NotEmpty(t, id)
	return id
}
