package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/domain"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/usecase"
)

// CandidateHandler handles HTTP requests for the candidate collection.
type CandidateHandler struct {
	svc    *usecase.CandidateService
	logger *zap.Logger
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(svc *usecase.CandidateService, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{svc: svc, logger: logger}
}

// List handles GET /api/v1/candidates
func (h *CandidateHandler) List(c *gin.Context) {
	spec := parseListSpec(c)
	result := h.svc.List(c.Request.Context(), spec)
	c.JSON(http.StatusOK, gin.H{
		"items": result.Items,
		"total": result.Total,
		"page":  spec.Page,
		"limit": spec.Limit,
	})
}

// Stats handles GET /api/v1/stats/candidates
func (h *CandidateHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context(), c.Query("job_id")))
}

// Create handles POST /api/v1/candidates
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	cand, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cand)
}

// GetByID handles GET /api/v1/candidates/:id
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	cand, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// Update handles PATCH /api/v1/candidates/:id
func (h *CandidateHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	cand, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// UpdateStatus handles PATCH /api/v1/candidates/:id/status
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var body struct {
		Status domain.CandidateStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	cand, err := h.svc.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// Delete handles DELETE /api/v1/candidates/:id
func (h *CandidateHandler) Delete(c *gin.Context) {
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

// GetRound handles GET /api/v1/candidates/:id/rounds/:round
// The response pairs the round with its display policy so detail views render
// exactly what the round's status allows.
func (h *CandidateHandler) GetRound(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}
	roundNumber, ok := parseRound(c)
	if !ok {
		return
	}

	cand, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	for _, round := range cand.Rounds {
		if round.RoundNumber == roundNumber {
			c.JSON(http.StatusOK, gin.H{
				"round":      round,
				"visibility": domain.VisibilityFor(round.Status),
			})
			return
		}
	}
	writeError(c, domain.ErrRoundNotFound)
}

// UpdateRoundStatus handles PATCH /api/v1/candidates/:id/rounds/:round/status
func (h *CandidateHandler) UpdateRoundStatus(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}
	roundNumber, ok := parseRound(c)
	if !ok {
		return
	}

	var body struct {
		Status domain.RoundStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	cand, err := h.svc.UpdateRoundStatus(c.Request.Context(), id, roundNumber, body.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// SubmitFeedback handles POST /api/v1/candidates/:id/rounds/:round/feedback
func (h *CandidateHandler) SubmitFeedback(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}
	roundNumber, ok := parseRound(c)
	if !ok {
		return
	}

	var body struct {
		Feedback string  `json:"feedback"`
		Rating   float64 `json:"rating"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	cand, err := h.svc.SubmitFeedback(c.Request.Context(), id, roundNumber, body.Feedback, body.Rating)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// RoundStats handles GET /api/v1/candidates/:id/round-stats
func (h *CandidateHandler) RoundStats(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	s, err := h.svc.RoundStats(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func recordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID format"})
		return uuid.Nil, false
	}
	return id, true
}

func parseRound(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("round"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round number"})
		return 0, false
	}
	return n, true
}
