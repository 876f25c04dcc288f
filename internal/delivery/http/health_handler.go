package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger *zap.Logger
	driver string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(logger *zap.Logger, driver string) *HealthHandler {
	return &HealthHandler{logger: logger, driver: driver}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store":  h.driver,
	})
}
