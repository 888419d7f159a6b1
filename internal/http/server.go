package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dkazmin/casinobot/internal/infrastructure/auth"

	"github.com/dkazmin/casinobot/internal/http/handlers"
	"github.com/dkazmin/casinobot/internal/http/middleware"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	accountHandler *handlers.AccountHandler
	killsHandler   *handlers.KillsHandler
	errorHandler   *middleware.ErrorHandler
	port           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	accountHandler *handlers.AccountHandler,
	killsHandler *handlers.KillsHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		accountHandler: accountHandler,
		killsHandler:   killsHandler,
		errorHandler:   errorHandler,
		port:           port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		accountRoutes := v1.Group("/accounts")
		{
			accountRoutes.GET("/:id", s.accountHandler.GetAccount)
		}

		leaderboardRoutes := v1.Group("/leaderboard")
		{
			leaderboardRoutes.GET("/:month", s.killsHandler.Leaderboard)
			leaderboardRoutes.GET("/:month/:player", s.killsHandler.PlayerStats)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			killRoutes := protected.Group("/kills")
			{
				killRoutes.POST("", s.killsHandler.AddKills)
				killRoutes.POST("/reset/:month", s.killsHandler.ResetMonth)
			}

			protected.POST("/accounts/:id/daily", s.accountHandler.ClaimDaily)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
