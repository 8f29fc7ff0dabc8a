package handler

import (
	"github.com/gin-gonic/gin"

	pkgerrors "blog-service/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// respondError converts application errors to HTTP responses using the
// pkg/errors status mapping. Internal errors never leak details.
func respondError(c *gin.Context, err error) {
	status, code := pkgerrors.HTTPStatus(err)

	message := err.Error()
	if code == "internal_error" {
		message = "An internal error occurred"
	}

	c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
