package validator

import (
	"bootcamp-api/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateCareer validates that a string is one of the fixed career tracks.
func validateCareer(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, career := range models.Careers {
		if value == career {
			return true
		}
	}
	return false
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("career", validateCareer)
	}
}
