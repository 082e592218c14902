//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bootcamp-api/internal/models"
	"bootcamp-api/test/testutil"
)

// DefaultPassword is the password used for all test accounts.
const DefaultPassword = "password123"

// RegisterUser registers a user through the API and returns the session
// token. Role must be "user" or "publisher"; admins are created with
// CreateAdmin.
func (ts *TestServer) RegisterUser(t *testing.T, name, email, role string) string {
	t.Helper()

	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/auth/register", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: DefaultPassword,
		Role:     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())

	return ts.parseToken(t, w.Body.Bytes())
}

// LoginUser logs in through the API and returns the session token.
func (ts *TestServer) LoginUser(t *testing.T, email, password string) string {
	t.Helper()

	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	return ts.parseToken(t, w.Body.Bytes())
}

// CreateUser registers a regular user and returns the session token.
func (ts *TestServer) CreateUser(t *testing.T, email string) string {
	t.Helper()
	return ts.RegisterUser(t, "Test User", email, models.RoleUser)
}

// CreatePublisher registers a publisher and returns the session token.
func (ts *TestServer) CreatePublisher(t *testing.T, email string) string {
	t.Helper()
	return ts.RegisterUser(t, "Test Publisher", email, models.RolePublisher)
}

// CreateAdmin inserts an admin directly into the database (registration
// does not allow the admin role) and returns the session token.
func (ts *TestServer) CreateAdmin(t *testing.T, email string) string {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &models.User{
		Name:     "Test Admin",
		Email:    email,
		Role:     models.RoleAdmin,
		Password: string(hash),
	}
	require.NoError(t, ts.UserRepo.Create(ctx, admin))

	return ts.LoginUser(t, email, DefaultPassword)
}

// CreateBootcamp creates a bootcamp through the API as the tokened user
// and returns it.
func (ts *TestServer) CreateBootcamp(t *testing.T, token, name string) *models.Bootcamp {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ts.Router, http.MethodPost, "/api/bootcamps", token, models.CreateBootcampRequest{
		Name:        name,
		Description: "A test bootcamp",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []string{"Web Development"},
	})
	require.Equal(t, http.StatusCreated, w.Code, "create bootcamp failed: %s", w.Body.String())

	var bootcamp models.Bootcamp
	ts.parseData(t, w.Body.Bytes(), &bootcamp)
	return &bootcamp
}

// CreateCourse creates a course under a bootcamp through the API and
// returns it.
func (ts *TestServer) CreateCourse(t *testing.T, token, bootcampID, title string, tuition float64) *models.Course {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ts.Router, http.MethodPost, "/api/bootcamps/"+bootcampID+"/courses", token, models.CreateCourseRequest{
		Title:        title,
		Description:  "A test course",
		Weeks:        8,
		Tuition:      tuition,
		MinimumSkill: "beginner",
	})
	require.Equal(t, http.StatusCreated, w.Code, "create course failed: %s", w.Body.String())

	var course models.Course
	ts.parseData(t, w.Body.Bytes(), &course)
	return &course
}

// CreateReview creates a review under a bootcamp through the API and
// returns it.
func (ts *TestServer) CreateReview(t *testing.T, token, bootcampID, title string, rating float64) *models.Review {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ts.Router, http.MethodPost, "/api/bootcamps/"+bootcampID+"/reviews", token, models.CreateReviewRequest{
		Title:  title,
		Text:   "A test review",
		Rating: rating,
	})
	require.Equal(t, http.StatusCreated, w.Code, "create review failed: %s", w.Body.String())

	var review models.Review
	ts.parseData(t, w.Body.Bytes(), &review)
	return &review
}

// parseToken extracts the session token from a token response body.
func (ts *TestServer) parseToken(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Success bool                 `json:"success"`
		Data    models.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

// parseData unmarshals the data field of a response envelope into target.
func (ts *TestServer) parseData(t *testing.T, body []byte, target interface{}) {
	t.Helper()

	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NoError(t, json.Unmarshal(resp.Data, target))
}
