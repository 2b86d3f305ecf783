package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/domain"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/dto"
	"github.com/lohithabandirala/vmedha-2026-sudhee/internal/service"
)

type Handler struct {
	registrationService service.RegistrationServicer
	router              *gin.Engine
	log                 *zap.Logger
}

// NewHandler creates the HTTP handler. allowedOrigins feeds the CORS
// middleware; the registration form is served from a different origin
// than this API.
func NewHandler(registrationService service.RegistrationServicer, allowedOrigins []string, log *zap.Logger) *Handler {
	h := &Handler{
		registrationService: registrationService,
		router:              gin.Default(),
		log:                 log,
	}

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	h.router.Use(cors.New(corsConfig))

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/register", h.submitRegistration)
	h.router.GET("/stats", h.getStats)
	h.router.GET("/events", h.listEvents)
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	// TODO: add a more sophisticated health check
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// submitRegistration handles POST /register
func (h *Handler) submitRegistration(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid registration request",
			zap.Error(err),
			zap.String("event", req.Event))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	result := h.registrationService.SubmitRegistration(c.Request.Context(), &req)

	c.JSON(statusFor(result), dto.RegisterResponse{
		Success: result.Success,
		Message: result.Message,
		Error:   string(result.ErrorKind),
	})
}

// statusFor maps a submission result to an HTTP status code. Duplicate
// and already-registered are client-resolvable conflicts; only store
// faults surface as 500.
func statusFor(result *domain.SubmissionResult) int {
	switch result.ErrorKind {
	case "":
		return http.StatusCreated
	case domain.ErrorDuplicateEntry, domain.ErrorAlreadyRegistered:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getStats handles GET /stats
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.registrationService.GetStats(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// listEvents handles GET /events
func (h *Handler) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, dto.EventsResponse{
		Events: h.registrationService.ListEvents(),
	})
}
