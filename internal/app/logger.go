package app

import (
	"github.com/dkazmin/casinobot/internal/config"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
