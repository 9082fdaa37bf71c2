package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"patient-portal/internal/service"
)

// maxJSONBody caps request payloads decoded as JSON.
const maxJSONBody = 1 << 20

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Dependencies are the collaborators a Handler serves requests with.
type Dependencies struct {
	Users          service.UserService
	Patients       service.PatientService
	Authorizations service.AuthorizationService
	Documents      service.DocumentService
	Tokens         TokenService
	DB             Pinger
	Logger         *logrus.Logger
	AllowedOrigins []string
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users          service.UserService
	patients       service.PatientService
	authorizations service.AuthorizationService
	documents      service.DocumentService
	tokens         TokenService
	db             Pinger
	logger         *logrus.Logger
	allowedOrigins []string
}

func NewHandler(deps Dependencies) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Handler{
		users:          deps.Users,
		patients:       deps.Patients,
		authorizations: deps.Authorizations,
		documents:      deps.Documents,
		tokens:         deps.Tokens,
		db:             deps.DB,
		logger:         logger,
		allowedOrigins: deps.AllowedOrigins,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(corsMiddleware(h.allowedOrigins))

	api := router.Group("/api")
	{
		api.GET("/health", h.health)

		authRoutes := api.Group("/auth")
		authRoutes.POST("/signup", h.signup)
		authRoutes.POST("/login", h.login)
		authRoutes.GET("/me", h.requireAuth, h.me)

		patients := api.Group("/patients", h.requireAuth)
		patients.GET("/all", h.listPatients)
		patients.GET("/:id", h.getPatient)
		patients.POST("/create", h.createPatient)
		patients.GET("/:id/documents", h.listDocuments)
		patients.POST("/:id/documents", h.uploadDocument)

		authorizations := api.Group("/authorization", h.requireAuth)
		authorizations.POST("/create", h.createAuthorization)
		authorizations.GET("/all", h.listAuthorizations)
	}
}

func (h *Handler) health(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.WithError(err).Warn("database ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUserID returns the id set by requireAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
