package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Infanjebasurya/Hiring-form-sub001/internal/usecase"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development; restrict in production
	},
}

// WebSocketHandler streams candidate record updates to list and detail views.
type WebSocketHandler struct {
	svc    *usecase.CandidateService
	logger *zap.Logger
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(svc *usecase.CandidateService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{svc: svc, logger: logger}
}

// Stream handles GET /api/v1/candidates/:id/stream (WebSocket upgrade).
// The candidate is re-read and pushed on an interval until its status
// reaches a terminal state or the client disconnects.
func (h *WebSocketHandler) Stream(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.logger.Debug("WebSocket connection opened", zap.String("record_id", id.String()))

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		cand, err := h.svc.Get(c.Request.Context(), id)
		if err != nil {
			conn.WriteJSON(gin.H{"error": "Record not found"})
			return
		}

		if err := conn.WriteJSON(cand); err != nil {
			h.logger.Debug("WebSocket write failed (client disconnected)", zap.Error(err))
			return
		}

		// Stop streaming once the candidate reaches a terminal state
		if cand.Status.IsTerminal() {
			h.logger.Debug("Candidate reached terminal state, closing WebSocket",
				zap.String("record_id", id.String()))
			return
		}
	}
}
