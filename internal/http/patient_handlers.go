package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"patient-portal/internal/domain"
	"patient-portal/internal/validation"
)

func (h *Handler) createPatient(c *gin.Context) {
	var in validation.PatientInput
	if !h.decodeJSON(c, &in) {
		return
	}

	patient, err := h.patients.CreatePatient(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patientToResponse(*patient))
}

func (h *Handler) listPatients(c *gin.Context) {
	filter, verr := patientFilterFromQuery(c)
	if verr != nil {
		writeValidationError(c, verr)
		return
	}

	patients, err := h.patients.ListPatients(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]PatientResponse, len(patients))
	for i := range patients {
		resp[i] = patientToResponse(patients[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPatient(c *gin.Context) {
	patient, err := h.patients.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patientToResponse(*patient))
}

func patientFilterFromQuery(c *gin.Context) (domain.PatientFilter, *validation.Error) {
	filter := domain.PatientFilter{Search: strings.TrimSpace(c.Query("search"))}
	verr := &validation.Error{}

	parseAge := func(name string) *int {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			return nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			verr.Fields = append(verr.Fields, validation.FieldError{Field: name, Message: "must be a non-negative integer"})
			return nil
		}
		return &v
	}
	filter.MinAge = parseAge("minAge")
	filter.MaxAge = parseAge("maxAge")

	if filter.MinAge != nil && filter.MaxAge != nil && *filter.MinAge > *filter.MaxAge {
		verr.Fields = append(verr.Fields, validation.FieldError{Field: "maxAge", Message: "must not be less than minAge"})
	}
	if len(verr.Fields) > 0 {
		return domain.PatientFilter{}, verr
	}
	return filter, nil
}
