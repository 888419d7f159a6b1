package app

import (
	"github.com/dkazmin/casinobot/internal/http/middleware"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
