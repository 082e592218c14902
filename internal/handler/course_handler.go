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

// CourseHandler handles HTTP requests for course operations.
type CourseHandler struct {
	service service.CourseServicer
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(service service.CourseServicer) *CourseHandler {
	return &CourseHandler{service: service}
}

// List godoc
// @Summary      List courses
// @Description  List all courses, or a bootcamp's courses via the nested route
// @Tags         courses
// @Produce      json
// @Param        bootcampId  path      string  false  "Bootcamp ID (nested route)"
// @Success      200         {object}  response.Response{data=[]models.Course}
// @Failure      404         {object}  response.Response
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	var bootcampID *primitive.ObjectID
	if c.Param("id") != "" {
		id, ok := objectIDParam(c, "id")
		if !ok {
			return
		}
		bootcampID = &id
	}

	q := query.ParseListQuery(c.Request.URL.Query())

	courses, pagination, err := h.service.List(c.Request.Context(), q, bootcampID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.List(c, len(courses), pagination, courses)
}

// Get godoc
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response{data=models.Course}
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, course)
}

// Create godoc
// @Summary      Add a course to a bootcamp
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bootcampId  path      string                      true  "Bootcamp ID"
// @Param        request     body      models.CreateCourseRequest  true  "Course details"
// @Success      201         {object}  response.Response{data=models.Course}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /bootcamps/{bootcampId}/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	bootcampID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	course, err := h.service.Create(c.Request.Context(), user, bootcampID, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, course)
}

// Update godoc
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                      true  "Course ID"
// @Param        request  body      models.UpdateCourseRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Course}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	course, err := h.service.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, course)
}

// Delete godoc
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
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
