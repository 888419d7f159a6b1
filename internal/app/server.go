package app

import (
	"context"

	"github.com/dkazmin/casinobot/internal/http"
	"github.com/dkazmin/casinobot/internal/http/handlers"
	"github.com/dkazmin/casinobot/internal/http/middleware"
	"github.com/dkazmin/casinobot/internal/infrastructure/auth"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	accountHandler *handlers.AccountHandler,
	killsHandler *handlers.KillsHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, accountHandler, killsHandler, errorHandler, log, port)
}

// RegisterHTTPServer starts the server when the fx app starts
func (a *application) RegisterHTTPServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
	})
}
