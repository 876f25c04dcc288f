package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, echoed in the response header and
// attached to the request log line. A caller-supplied id is kept so the
// tracker's requests can be correlated with frontend traces; otherwise a
// time-ordered UUID is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			id, _ := uuid.NewV7()
			requestID = id.String()
		}

		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}
