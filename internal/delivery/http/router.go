package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/delivery/http/middleware"
	"github.com/Infanjebasurya/Hiring-form-sub001/internal/usecase"
)

const maxBodyBytes = 1 << 20 // 1 MB

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Candidates      *usecase.CandidateService
	Jobs            *usecase.JobService
	Logger          *zap.Logger
	RateLimitPerMin int
	StoreDriver     string
}

// NewRouter creates and configures the Gin router with all routes and middleware.
func NewRouter(deps *RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.BodySizeLimit(maxBodyBytes))

	// Metrics endpoint (no rate limiting)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := router.Group("/api/v1")
	if deps.RateLimitPerMin > 0 {
		v1.Use(middleware.RateLimiter(deps.RateLimitPerMin))
	}

	healthHandler := NewHealthHandler(deps.Logger, deps.StoreDriver)
	v1.GET("/health", healthHandler.Health)

	candHandler := NewCandidateHandler(deps.Candidates, deps.Logger)
	wsHandler := NewWebSocketHandler(deps.Candidates, deps.Logger)
	candidates := v1.Group("/candidates")
	{
		candidates.GET("", candHandler.List)
		candidates.POST("", candHandler.Create)
		candidates.GET("/:id", candHandler.GetByID)
		candidates.PATCH("/:id", candHandler.Update)
		candidates.PATCH("/:id/status", candHandler.UpdateStatus)
		candidates.DELETE("/:id", candHandler.Delete)
		candidates.GET("/:id/rounds/:round", candHandler.GetRound)
		candidates.PATCH("/:id/rounds/:round/status", candHandler.UpdateRoundStatus)
		candidates.POST("/:id/rounds/:round/feedback", candHandler.SubmitFeedback)
		candidates.GET("/:id/round-stats", candHandler.RoundStats)

		// WebSocket for real-time updates
		candidates.GET("/:id/stream", wsHandler.Stream)
	}

	jobHandler := NewJobHandler(deps.Jobs, deps.Logger)
	jobs := v1.Group("/jobs")
	{
		jobs.GET("", jobHandler.List)
		jobs.POST("", jobHandler.Create)
		jobs.GET("/:id", jobHandler.GetByID)
		jobs.PATCH("/:id", jobHandler.Update)
		jobs.PATCH("/:id/status", jobHandler.UpdateStatus)
		jobs.DELETE("/:id", jobHandler.Delete)
	}

	// Summary cards live beside the lists, not under a record ID
	statsGroup := v1.Group("/stats")
	{
		statsGroup.GET("/candidates", candHandler.Stats)
		statsGroup.GET("/jobs", jobHandler.Stats)
	}

	return router
}
