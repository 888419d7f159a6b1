package middleware

import (
	"bytes"
	"context"
	"time"

	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
)

// responseWriter wraps gin.ResponseWriter to capture response data
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		blw := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = blw
		c.Next()

		latency := time.Since(start)

		requestID := ""
		if id, exists := c.Get("request_id"); exists {
			requestID = id.(string)
		}

		ctx := c.Request.Context()
		if requestID != "" {
			ctx = context.WithValue(ctx, "request_id", requestID)
		}

		log.WithRequest(
			ctx,
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			latency.String(),
			blw.body.Len(),
		).Info("HTTP Request Processed")
	}
}
