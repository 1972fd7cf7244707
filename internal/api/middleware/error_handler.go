package middleware

import (
	goerrors "errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"meetscribe/internal/api/errors"
)

// ErrorHandler turns panics into JSON error responses so a misbehaving
// provider response can never take the process down.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				"error", err.Error(),
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			apiErr = errors.NewInternalError("Internal server error", nil)
		default:
			logger.Error("Unknown panic occurred",
				"recovered", recovered,
				"request_id", requestID,
			)
			apiErr = errors.NewInternalError("Internal server error", nil)
		}

		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError translates an error into the {error, details} response
// body at the request boundary. Errors outside the taxonomy become
// internal errors.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *errors.APIError
	if !goerrors.As(err, &apiErr) {
		apiErr = errors.NewInternalError("Internal server error", err)
	}

	// Attach to the gin context so the logging middleware picks it up.
	_ = c.Error(apiErr)

	c.Header("Content-Type", "application/json")
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
