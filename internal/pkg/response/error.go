package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poolpass/pool-booking-gateway/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
// The field is named "detail" because the browser clients of this API read
// exactly that key when a POST fails.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Detail: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
}

// AbortError behaves like Error but also aborts the gin handler chain.
// Intended for middleware.
func AbortError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.Code, ErrorResponse{Detail: appErr.Message})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
}
