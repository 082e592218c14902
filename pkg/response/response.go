// Package response provides the standard API response envelope and the
// boundary that classifies errors onto it.
package response

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	apperrors "bootcamp-api/internal/errors"
	"bootcamp-api/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// Response is the standard API response format.
type Response struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Data       interface{}       `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// Success sends a successful response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// List sends a list response with count and pagination. The count is the
// number of records in the returned page, not the grand total.
func List(c *gin.Context, count int, pagination *query.Pagination, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Count:      &count,
		Pagination: pagination,
		Data:       data,
	})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
	})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "server error")
}

// statusByError maps the application's sentinel errors onto the taxonomy.
var statusByError = map[error]int{
	apperrors.ErrMissingCredentials:   http.StatusBadRequest,
	apperrors.ErrBootcampLimitReached: http.StatusBadRequest,
	apperrors.ErrDuplicateReview:      http.StatusBadRequest,
	apperrors.ErrDuplicateBootcamp:    http.StatusBadRequest,
	apperrors.ErrUserAlreadyExists:    http.StatusBadRequest,
	apperrors.ErrIncorrectPassword:    http.StatusBadRequest,
	apperrors.ErrInvalidResetToken:    http.StatusBadRequest,
	apperrors.ErrInvalidFileType:      http.StatusBadRequest,
	apperrors.ErrFileTooLarge:         http.StatusBadRequest,
	apperrors.ErrInvalidCredentials:   http.StatusUnauthorized,
	apperrors.ErrUnauthenticated:      http.StatusUnauthorized,
	apperrors.ErrUnauthorized:         http.StatusForbidden,
	apperrors.ErrUserNotFound:         http.StatusNotFound,
	apperrors.ErrBootcampNotFound:     http.StatusNotFound,
	apperrors.ErrCourseNotFound:       http.StatusNotFound,
	apperrors.ErrReviewNotFound:       http.StatusNotFound,
	apperrors.ErrGeocodingFailed:      http.StatusInternalServerError,
	apperrors.ErrEmailSendFailed:      http.StatusInternalServerError,
	apperrors.ErrUploadFailed:         http.StatusInternalServerError,
}

// HandleError classifies an error and serializes the envelope. Sentinel and
// store-driver errors map onto the taxonomy; anything unclassified is logged
// with full detail and reported as a 500.
func HandleError(c *gin.Context, err error) {
	for sentinel, status := range statusByError {
		if errors.Is(err, sentinel) {
			Error(c, status, sentinel.Error())
			return
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		field := duplicateKeyField(err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "duplicate field value entered",
			Errors:  map[string]string{field: fmt.Sprintf("the %s has already been taken", field)},
		})
		return
	}

	log.Printf("Unhandled error: %v", err)
	InternalError(c)
}

// ValidationFailed serializes a 400 with one message per offending field.
// Non-validator binding failures (malformed JSON) get a bare 400.
func ValidationFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		BadRequest(c, err.Error())
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldName(fe)] = validationMessage(fe)
	}

	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "the given data was invalid",
		Errors:  fields,
	})
}

// duplicateKeyField pulls the offending index name out of a Mongo duplicate
// key error message ("... index: name_1 dup key ...").
func duplicateKeyField(err error) string {
	msg := err.Error()
	marker := "index: "
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return "field"
	}

	rest := msg[idx+len(marker):]
	if end := strings.IndexByte(rest, ' '); end > 0 {
		rest = rest[:end]
	}
	// Strip the direction suffixes mongo appends to index names.
	rest = strings.ReplaceAll(rest, "_1", "")
	rest = strings.ReplaceAll(rest, "_-1", "")
	if rest == "" {
		return "field"
	}
	return rest
}

// fieldName lowercases the struct field to match its JSON name.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "field"
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func validationMessage(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("the %s field is required", field)
	case "email":
		return fmt.Sprintf("the %s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("the %s must be a valid URL", field)
	case "max":
		return fmt.Sprintf("the %s may not be greater than %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("the %s must be at least %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("the %s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("the %s may not be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("the %s must be one of: %s", field, fe.Param())
	case "career":
		return fmt.Sprintf("the %s contains an unknown career", field)
	default:
		return fmt.Sprintf("the %s field is invalid", field)
	}
}
