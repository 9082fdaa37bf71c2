package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"patient-portal/internal/service"
	"patient-portal/internal/validation"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

func writeError(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

func writeValidationError(c *gin.Context, verr *validation.Error) {
	writeError(c, http.StatusBadRequest, CodeValidationError, "validation failed", verr.Fields)
}

// respondError maps a service-layer error onto the HTTP error contract. Anything
// unrecognized is logged and reported as an opaque 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeValidationError(c, verr)
	case errors.Is(err, service.ErrUserAlreadyExists):
		writeError(c, http.StatusBadRequest, CodeDuplicateEmail, "user already exists", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(c, http.StatusBadRequest, CodeInvalidCredentials, "invalid credentials", nil)
	case errors.Is(err, service.ErrPatientNotFound):
		writeError(c, http.StatusNotFound, CodeNotFound, "patient not found", nil)
	case errors.Is(err, service.ErrUserNotFound):
		writeError(c, http.StatusNotFound, CodeNotFound, "user not found", nil)
	case errors.Is(err, service.ErrStorageDisabled):
		writeError(c, http.StatusServiceUnavailable, CodeStorageUnavailable, "document storage is not configured", nil)
	default:
		_ = c.Error(err)
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		writeError(c, http.StatusInternalServerError, CodeInternalError, "internal server error", nil)
	}
}
