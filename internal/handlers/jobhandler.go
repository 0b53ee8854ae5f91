package handlers

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobhub/jobhub-api/internal/auth"
	"github.com/jobhub/jobhub-api/internal/dtos"
	"github.com/jobhub/jobhub-api/internal/services"
)

// JobHandler serves the job-posting CRUD endpoints.
// Dependency injection: the service owns all store access.
type JobHandler struct {
	Jobs   *services.JobService
	Logger *zap.SugaredLogger
}

// NewJobHandler creates the handler with dependencies.
func NewJobHandler(jobs *services.JobService, logger *zap.SugaredLogger) *JobHandler {
	return &JobHandler{
		Jobs:   jobs,
		Logger: logger,
	}
}

// ListJobs is the GET /jobs endpoint.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListJobs()
	if err != nil {
		h.Logger.Errorw("failed to list jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/:id endpoint. Absent ids are a 404, not an empty
// 200 body.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	job, err := h.Jobs.GetJob(id)
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "job not found"})
		return
	}
	if err != nil {
		h.Logger.Errorw("failed to fetch job", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// MyJobs is the GET /myJob endpoint, behind the session gate and ownership
// check. When the email filter is omitted, the authenticated identity is the
// filter; the route never exposes other owners' postings.
func (h *JobHandler) MyJobs(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = auth.ClaimsFromContext(c).Email
	}

	jobs, err := h.Jobs.ListJobsByOwner(email)
	if err != nil {
		h.Logger.Errorw("failed to list owned jobs", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is the POST /jobs endpoint.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.CreateJob(&req)
	if err != nil {
		h.Logger.Errorw("failed to create job", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpsertJob is the PUT /jobs/:id endpoint: a full-document replace that
// creates the record when the id does not exist yet.
func (h *JobHandler) UpsertJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpsertJob(id, &req)
	if err != nil {
		h.Logger.Errorw("failed to upsert job", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upsert job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob serves DELETE /jobs/:id and its legacy alias DELETE /myJob/:id.
// Deleting an absent id succeeds with a zero count.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}

	deleted, err := h.Jobs.DeleteJob(id)
	if err != nil {
		h.Logger.Errorw("failed to delete job", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": deleted})
}

func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return 0, false
	}
	return uint(id), true
}
