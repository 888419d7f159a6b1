package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: log,
	}
}

// ErrorHandlerMiddleware provides centralized error handling for all requests
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		h.handlePanic(c, recovered)
	})
}

// handlePanic handles panic recovery
func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	requestID := h.getRequestID(c)
	userID := h.getUserID(c)

	h.logger.Error("Panic recovered",
		zap.String("requestID", requestID),
		zap.String("userID", userID),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.String("stack", string(debug.Stack())))

	err := domain.NewInternalError("Internal server error", fmt.Errorf("panic: %v", recovered))
	err.RequestID = requestID
	err.UserID = userID
	err.Path = c.Request.URL.Path
	err.Method = c.Request.Method

	c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(err))
}

// getRequestID gets or generates a request ID
func (h *ErrorHandler) getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		return requestID.(string)
	}
	return h.generateRequestID()
}

// getUserID gets the user ID from context
func (h *ErrorHandler) getUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(string)
	}
	return ""
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = h.generateRequestID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// TimeoutMiddleware adds timeout context to requests
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			c.Next()
			done <- struct{}{}
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			requestID := h.getRequestID(c)
			userID := h.getUserID(c)

			err := domain.NewAppError("TIMEOUT", "Request timeout", http.StatusRequestTimeout, ctx.Err())
			err.RequestID = requestID
			err.UserID = userID
			err.Path = c.Request.URL.Path
			err.Method = c.Request.Method

			h.logger.Warn("Request timed out",
				zap.String("requestID", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))

			c.Abort()
			c.JSON(http.StatusRequestTimeout, domain.NewErrorResponse(err))
			return
		}
	}
}

// RespondError writes an error as the standard envelope, mapping AppError
// codes to their HTTP status and everything else to 500.
func (h *ErrorHandler) RespondError(c *gin.Context, err error) {
	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("Internal server error", err)
	}
	appErr.RequestID = h.getRequestID(c)
	appErr.Path = c.Request.URL.Path
	appErr.Method = c.Request.Method

	c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
}

// generateRequestID generates a unique request ID
func (h *ErrorHandler) generateRequestID() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
