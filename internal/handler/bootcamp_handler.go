package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/middleware"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/query"
	"bootcamp-api/internal/service"
	"bootcamp-api/pkg/response"
)

// BootcampHandler handles HTTP requests for bootcamp operations.
type BootcampHandler struct {
	service service.BootcampServicer
}

// NewBootcampHandler creates a new BootcampHandler.
func NewBootcampHandler(service service.BootcampServicer) *BootcampHandler {
	return &BootcampHandler{service: service}
}

// List godoc
// @Summary      List bootcamps
// @Description  List bootcamps with filtering, field selection, sorting, and pagination
// @Tags         bootcamps
// @Produce      json
// @Param        select  query     string  false  "Comma-separated fields to include"
// @Param        sort    query     string  false  "Sort field, prefix with - for descending"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.Response{data=[]models.Bootcamp}
// @Failure      500     {object}  response.Response
// @Router       /bootcamps [get]
func (h *BootcampHandler) List(c *gin.Context) {
	q := query.ParseListQuery(c.Request.URL.Query())

	bootcamps, pagination, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.List(c, len(bootcamps), pagination, bootcamps)
}

// Get godoc
// @Summary      Get a bootcamp
// @Tags         bootcamps
// @Produce      json
// @Param        id   path      string  true  "Bootcamp ID"
// @Success      200  {object}  response.Response{data=models.Bootcamp}
// @Failure      404  {object}  response.Response
// @Router       /bootcamps/{id} [get]
func (h *BootcampHandler) Get(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	bootcamp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, bootcamp)
}

// Create godoc
// @Summary      Create a bootcamp
// @Description  Publish a bootcamp owned by the caller; non-admins may publish one
// @Tags         bootcamps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateBootcampRequest  true  "Bootcamp details"
// @Success      201      {object}  response.Response{data=models.Bootcamp}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /bootcamps [post]
func (h *BootcampHandler) Create(c *gin.Context) {
	var req models.CreateBootcampRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	bootcamp, err := h.service.Create(c.Request.Context(), user, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, bootcamp)
}

// Update godoc
// @Summary      Update a bootcamp
// @Tags         bootcamps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Bootcamp ID"
// @Param        request  body      models.UpdateBootcampRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Bootcamp}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /bootcamps/{id} [put]
func (h *BootcampHandler) Update(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	user := middleware.GetCurrentUser(c)
	bootcamp, err := h.service.Update(c.Request.Context(), user, id, &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, bootcamp)
}

// Delete godoc
// @Summary      Delete a bootcamp
// @Description  Delete a bootcamp and all of its courses
// @Tags         bootcamps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Bootcamp ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /bootcamps/{id} [delete]
func (h *BootcampHandler) Delete(c *gin.Context) {
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

// WithinRadius godoc
// @Summary      Find bootcamps near a zipcode
// @Tags         bootcamps
// @Produce      json
// @Param        zipcode   path      string  true  "Center zipcode"
// @Param        distance  path      number  true  "Radius in miles"
// @Success      200       {object}  response.Response{data=[]models.Bootcamp}
// @Failure      400       {object}  response.Response
// @Router       /bootcamps/radius/{zipcode}/{distance} [get]
func (h *BootcampHandler) WithinRadius(c *gin.Context) {
	distance, ok := floatParam(c, "distance")
	if !ok {
		return
	}

	bootcamps, err := h.service.WithinRadius(c.Request.Context(), c.Param("zipcode"), distance)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.List(c, len(bootcamps), nil, bootcamps)
}

// UploadPhoto godoc
// @Summary      Upload a bootcamp photo
// @Tags         bootcamps
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Bootcamp ID"
// @Param        file  formData  file    true  "Image file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /bootcamps/{id}/photo [put]
func (h *BootcampHandler) UploadPhoto(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.HandleError(c, apperrors.ErrInvalidFileType)
		return
	}

	user := middleware.GetCurrentUser(c)
	filename, err := h.service.UploadPhoto(c.Request.Context(), user, id, file)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, gin.H{"photo": filename})
}
