package middleware

import (
	"net/http"
	"strings"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

// JWTMiddleware creates JWT authentication middleware
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenMissing, "Authorization header required", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", http.StatusUnauthorized, nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", http.StatusUnauthorized, err))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
