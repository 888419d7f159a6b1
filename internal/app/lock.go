package app

import (
	"github.com/dkazmin/casinobot/internal/infrastructure/lock"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
)

func (a *application) InitUserLockManager(log *logger.Logger) *lock.UserLockManager {
	return lock.NewUserLockManager(log)
}
