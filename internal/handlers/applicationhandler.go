package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobhub/jobhub-api/internal/auth"
	"github.com/jobhub/jobhub-api/internal/dtos"
	"github.com/jobhub/jobhub-api/internal/services"
)

// ApplicationHandler serves the job-application endpoints.
type ApplicationHandler struct {
	Applications *services.ApplicationService
	Logger       *zap.SugaredLogger
}

// NewApplicationHandler creates the handler with dependencies.
func NewApplicationHandler(apps *services.ApplicationService, logger *zap.SugaredLogger) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: apps,
		Logger:       logger,
	}
}

// Applied is the GET /applied endpoint, behind the session gate and
// ownership check. An omitted email filter falls back to the authenticated
// identity.
func (h *ApplicationHandler) Applied(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = auth.ClaimsFromContext(c).Email
	}

	apps, err := h.Applications.ListByEmail(email)
	if err != nil {
		h.Logger.Errorw("failed to list applications", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Apply is the POST /applied endpoint. A second application for the same
// (email, job) pair gets a 409 and leaves the store untouched.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Apply(&req)
	if errors.Is(err, services.ErrAlreadyApplied) {
		c.JSON(http.StatusConflict, gin.H{"error": "Already Applied"})
		return
	}
	if err != nil {
		h.Logger.Errorw("failed to submit application", "job_id", req.JobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit application"})
		return
	}
	c.JSON(http.StatusCreated, app)
}
