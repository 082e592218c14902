//go:build api

package api

import (
	"net/http"
	"testing"

	"bootcamp-api/internal/models"
	"bootcamp-api/test/testutil"

	"github.com/stretchr/testify/assert"
)

// TestCreateReview tests the POST /api/bootcamps/:id/reviews endpoint.
func TestCreateReview(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	publisherToken := testServer.CreatePublisher(t, "reviewpublisher@example.com")
	bootcamp := testServer.CreateBootcamp(t, publisherToken, "Reviewed Bootcamp")

	reviewerToken := testServer.CreateUser(t, "reviewer@example.com")

	t.Run("success - user reviews a bootcamp", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/bootcamps/"+bootcamp.ID.Hex()+"/reviews", reviewerToken, models.CreateReviewRequest{
			Title:  "Learned a ton",
			Text:   "Highly recommended",
			Rating: 8,
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Learned a ton", resp.Data["title"])
		assert.Equal(t, float64(8), resp.Data["rating"])
	})

	t.Run("success - review creation updates the average rating", func(t *testing.T) {
		otherReviewer := testServer.CreateUser(t, "otherreviewer@example.com")
		testServer.CreateReview(t, otherReviewer, bootcamp.ID.Hex(), "Decent", 6)

		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/bootcamps/"+bootcamp.ID.Hex(), nil)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(7), resp.Data["averageRating"], "(8 + 6) / 2")
	})

	t.Run("error - one review per user per bootcamp", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/bootcamps/"+bootcamp.ID.Hex()+"/reviews", reviewerToken, models.CreateReviewRequest{
			Title:  "Second thoughts",
			Text:   "Trying to review twice",
			Rating: 3,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - publishers cannot review", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/bootcamps/"+bootcamp.ID.Hex()+"/reviews", publisherToken, models.CreateReviewRequest{
			Title:  "My own bootcamp is great",
			Text:   "Totally unbiased",
			Rating: 10,
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - rating out of range", func(t *testing.T) {
		freshReviewer := testServer.CreateUser(t, "rangereviewer@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/bootcamps/"+bootcamp.ID.Hex()+"/reviews", freshReviewer, models.CreateReviewRequest{
			Title:  "Off the scale",
			Text:   "Eleven out of ten",
			Rating: 11,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - unknown bootcamp", func(t *testing.T) {
		freshReviewer := testServer.CreateUser(t, "lostreviewer@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/bootcamps/507f1f77bcf86cd799439011/reviews", freshReviewer, models.CreateReviewRequest{
			Title:  "Ghost bootcamp",
			Text:   "Nothing here",
			Rating: 5,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestGetReviews tests the review list endpoints, both global and nested.
func TestGetReviews(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	adminToken := testServer.CreateAdmin(t, "reviewsadmin@example.com")
	first := testServer.CreateBootcamp(t, adminToken, "First Reviewed Bootcamp")
	second := testServer.CreateBootcamp(t, adminToken, "Second Reviewed Bootcamp")

	reviewerA := testServer.CreateUser(t, "reviewera@example.com")
	reviewerB := testServer.CreateUser(t, "reviewerb@example.com")
	testServer.CreateReview(t, reviewerA, first.ID.Hex(), "Great", 9)
	testServer.CreateReview(t, reviewerB, first.ID.Hex(), "Good", 7)
	review := testServer.CreateReview(t, reviewerA, second.ID.Hex(), "Fine", 6)

	t.Run("success - global list returns all reviews", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/reviews", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		assert.Equal(t, 3, resp.Count)
	})

	t.Run("success - nested list is scoped to the bootcamp", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/bootcamps/"+first.ID.Hex()+"/reviews", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("success - get single review", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/reviews/"+review.ID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Fine", resp.Data["title"])
	})

	t.Run("error - unknown review id", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/reviews/507f1f77bcf86cd799439011", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestUpdateReview tests the PUT /api/reviews/:id endpoint.
func TestUpdateReview(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	publisherToken := testServer.CreatePublisher(t, "updatereviewpublisher@example.com")
	bootcamp := testServer.CreateBootcamp(t, publisherToken, "Update Review Bootcamp")

	authorToken := testServer.CreateUser(t, "reviewauthor@example.com")
	review := testServer.CreateReview(t, authorToken, bootcamp.ID.Hex(), "First impression", 6)

	t.Run("success - author updates the review", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/reviews/"+review.ID.Hex(), authorToken, map[string]interface{}{
			"title":  "Second impression",
			"rating": 8,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Second impression", resp.Data["title"])
		assert.Equal(t, float64(8), resp.Data["rating"])
	})

	t.Run("error - another user cannot touch it", func(t *testing.T) {
		strangerToken := testServer.CreateUser(t, "reviewstranger@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/reviews/"+review.ID.Hex(), strangerToken, map[string]interface{}{
			"rating": 1,
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - admin can moderate any review", func(t *testing.T) {
		adminToken := testServer.CreateAdmin(t, "updatereviewadmin@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/reviews/"+review.ID.Hex(), adminToken, map[string]interface{}{
			"text": "Moderated",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error - unknown review id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/reviews/507f1f77bcf86cd799439011", authorToken, map[string]interface{}{
			"rating": 5,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestDeleteReview tests the DELETE /api/reviews/:id endpoint and the
// average rating bookkeeping.
func TestDeleteReview(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	publisherToken := testServer.CreatePublisher(t, "deletereviewpublisher@example.com")
	bootcamp := testServer.CreateBootcamp(t, publisherToken, "Delete Review Bootcamp")

	reviewerA := testServer.CreateUser(t, "deletereviewera@example.com")
	reviewerB := testServer.CreateUser(t, "deletereviewerb@example.com")
	reviewA := testServer.CreateReview(t, reviewerA, bootcamp.ID.Hex(), "Loved it", 9)
	reviewB := testServer.CreateReview(t, reviewerB, bootcamp.ID.Hex(), "Meh", 5)

	t.Run("error - another user cannot delete", func(t *testing.T) {
		strangerToken := testServer.CreateUser(t, "deletereviewstranger@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/reviews/"+reviewA.ID.Hex(), strangerToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - delete recomputes the average rating", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/reviews/"+reviewB.ID.Hex(), reviewerB, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		wGet := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/bootcamps/"+bootcamp.ID.Hex(), nil)
		resp := testutil.ParseAPIResponse(t, wGet)
		assert.Equal(t, float64(9), resp.Data["averageRating"], "only the surviving review counts")
	})

	t.Run("success - deleting the last review clears the average", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/reviews/"+reviewA.ID.Hex(), reviewerA, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		wGet := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/bootcamps/"+bootcamp.ID.Hex(), nil)
		resp := testutil.ParseAPIResponse(t, wGet)
		_, present := resp.Data["averageRating"]
		assert.False(t, present, "averageRating should be unset with no reviews")
	})

	t.Run("error - deleting twice reports not found", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/reviews/"+reviewA.ID.Hex(), reviewerA, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
