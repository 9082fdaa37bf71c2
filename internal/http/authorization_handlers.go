package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"patient-portal/internal/domain"
	"patient-portal/internal/validation"
)

func (h *Handler) createAuthorization(c *gin.Context) {
	var in validation.AuthorizationInput
	if !h.decodeJSON(c, &in) {
		return
	}

	req, err := h.authorizations.CreateRequest(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authorizationToResponse(*req))
}

func (h *Handler) listAuthorizations(c *gin.Context) {
	filter := domain.AuthorizationFilter{
		PatientID: strings.TrimSpace(c.Query("patientId")),
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status := domain.RequestStatus(strings.ToUpper(raw))
		if !status.Valid() {
			writeValidationError(c, validation.NewError(validation.FieldError{
				Field:   "status",
				Message: "must be one of: APPROVED, PENDING, DENIED",
			}))
			return
		}
		filter.Status = status
	}

	requests, err := h.authorizations.ListRequests(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]AuthorizationResponse, len(requests))
	for i := range requests {
		resp[i] = authorizationToResponse(requests[i])
	}
	c.JSON(http.StatusOK, resp)
}
