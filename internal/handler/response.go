package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/clinickit/agenda-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps the application error taxonomy onto HTTP status codes.
// Store failures are recoverable; nothing here is fatal to the process.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.CodeOf(err) {
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrValidation:
		status = http.StatusBadRequest
	case apperrors.ErrStoreUnavailable:
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
