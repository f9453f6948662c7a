package middleware

import (
	"context"

	"assignment-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed on every response
const RequestIDHeader = "X-Request-ID"

// RequestID reuses an incoming request or correlation id, or generates one, and
// stores it on the gin context and the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := extractRequestID(c)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(logger.RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID))
		c.Next()
	}
}

func extractRequestID(c *gin.Context) string {
	for _, header := range []string{RequestIDHeader, "X-Correlation-ID", "X-Trace-ID"} {
		if id := c.GetHeader(header); id != "" {
			return id
		}
	}
	return ""
}
