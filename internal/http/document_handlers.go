package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"patient-portal/internal/validation"
)

func (h *Handler) uploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			writeValidationError(c, validation.NewError(validation.FieldError{Field: "file", Message: "is required"}))
			return
		}
		writeValidationError(c, validation.NewError(validation.FieldError{Field: validation.BodyField, Message: "malformed multipart form"}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, documentToResponse(*doc))
}

func (h *Handler) listDocuments(c *gin.Context) {
	docs, err := h.documents.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]DocumentResponse, len(docs))
	for i := range docs {
		resp[i] = documentToResponse(docs[i])
	}
	c.JSON(http.StatusOK, resp)
}
