package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patient-portal/internal/domain"
	"patient-portal/internal/validation"
)

func (h *Handler) signup(c *gin.Context) {
	var in validation.SignupInput
	if !h.decodeJSON(c, &in) {
		return
	}

	user, err := h.users.Register(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondSession(c, http.StatusCreated, user)
}

func (h *Handler) login(c *gin.Context) {
	var in validation.LoginInput
	if !h.decodeJSON(c, &in) {
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondSession(c, http.StatusOK, user)
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) respondSession(c *gin.Context, status int, user *domain.User) {
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(status, SessionResponse{
		Token: token,
		User:  userToResponse(user),
	})
}

// decodeJSON binds and validates the request body into dst. On failure it writes the
// error response and returns false.
func (h *Handler) decodeJSON(c *gin.Context, dst any) bool {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBody)
	if err := validation.Decode(body, dst); err != nil {
		h.respondError(c, err)
		return false
	}
	return true
}
