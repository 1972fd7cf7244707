package middleware

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"meetscribe/internal/api/errors"
)

// ValidateJSON binds the JSON body into req and maps binding failures
// to a validation error whose details name the offending fields.
func ValidateJSON(c *gin.Context, req interface{}) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var fields []string
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field()[:1]) + fieldError.Field()[1:]

			switch fieldError.Tag() {
			case "required":
				fields = append(fields, field+" is required")
			default:
				fields = append(fields, field+" is invalid")
			}
		}
		sort.Strings(fields)

		apiErr := errors.NewValidationError("Validation failed")
		apiErr.Details = strings.Join(fields, "; ")
		return apiErr
	}

	apiErr := errors.NewValidationError("Request body is not valid JSON")
	apiErr.Details = err.Error()
	return apiErr
}
