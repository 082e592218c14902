package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bootcamp-api/pkg/response"
)

// objectIDParam parses an ObjectID path parameter. A malformed ID cannot
// name any resource, so it reports not found and aborts.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.NotFound(c, "resource not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// floatParam parses a numeric path parameter.
func floatParam(c *gin.Context, name string) (float64, bool) {
	value, err := strconv.ParseFloat(c.Param(name), 64)
	if err != nil {
		response.BadRequest(c, "the "+name+" must be a number")
		return 0, false
	}
	return value, true
}
