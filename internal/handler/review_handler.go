package handler

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/internal/middleware"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
	"bootcamp-api/internal/service"
	"bootcamp-api/pkg/response"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service service.ReviewServicer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service service.ReviewServicer) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List godoc
// @Summary      List reviews
// @Description  List all reviews, or a bootcamp's reviews via the nested route
// @Tags         reviews
// @Produce      json
// @Param        bootcampId  path      string  false  "Bootcamp ID (nested route)"
// @Success      200         {object}  response.Response{data=[]models.Review}
// @Failure      404         {object}  response.Response
// @Router       /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var bootcampID *primitive.ObjectID
	if c.Param("id") != "" {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}
		bootcampID = &id
	}

	q := query.ParseListQuery(c.Request.URL.Query())

	reviews, pagination, err := h.service.List(c.Request.Context(), q, bootcampID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.List(c, len(reviews), pagination, reviews)
}

// Get godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  response.Response{data=models.Review}
// @Failure      404  {object}  response.Response
// @Router       /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	review, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, review)
}

// Create godoc
// @Summary      Review a bootcamp
// @Description  Add the caller's review; one review per user per bootcamp
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bootcampId  path      string                      true  "Bootcamp ID"
// @Param        request     body      models.CreateReviewRequest  true  "Review details"
// @Success      201         {object}  response.Response{data=models.Review}
// @Failure      400         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /bootcamps/{bootcampId}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	bootcampID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	review, err := h.service.Create(c.Request.Context(), user, bootcampID, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, review)
}

// Update godoc
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                      true  "Review ID"
// @Param        request  body      models.UpdateReviewRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Review}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	review, err := h.service.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, review)
}

// Delete godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	user := middleware.GetCurrentUser(c)
	if err := h.service.Delete(c.Request.Context(), user, id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, gin.H{})
}
