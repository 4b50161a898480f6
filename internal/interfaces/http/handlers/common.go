// Package handlers implements the HTTP API endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthewstachyra/virtual-assistant-utterance-generator/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps an application error to its HTTP status and writes the
// standard error body.  Raw internal errors are masked.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := err.Error()
	if status == http.StatusInternalServerError && code == errors.CodeUnknown {
		message = "internal server error"
		code = errors.ErrCodeInternal
	}

	c.JSON(status, ErrorResponse{Code: code.String(), Message: message})
}
