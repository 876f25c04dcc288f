package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/usecase"
)

// JobHandler handles HTTP requests for the job interview collection.
type JobHandler struct {
	svc    *usecase.JobService
	logger *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc *usecase.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{svc: svc, logger: logger}
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	spec := parseListSpec(c)
	result := h.svc.List(c.Request.Context(), spec)
	c.JSON(http.StatusOK, gin.H{
		"items": result.Items,
		"total": result.Total,
		"page":  spec.Page,
		"limit": spec.Limit,
	})
}

// Stats handles GET /api/v1/stats/jobs
func (h *JobHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	job, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetByID handles GET /api/v1/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	job, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update handles PATCH /api/v1/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	job, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateStatus handles PATCH /api/v1/jobs/:id/status
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var body struct {
		Status domain.JobStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	job, err := h.svc.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/v1/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
