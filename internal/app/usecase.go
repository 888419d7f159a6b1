package app

import (
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/lock"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/dkazmin/casinobot/internal/usecase/account"
	"github.com/dkazmin/casinobot/internal/usecase/casino"
	"github.com/dkazmin/casinobot/internal/usecase/kills"
)

const defaultSessionTimeout = 10 * time.Minute

func (a *application) InitAccountUseCase(
	ar domain.AccountRepository,
	lm *lock.UserLockManager,
	log *logger.Logger,
) domain.AccountUseCase {
	return account.NewAccountUseCase(ar, lm, log)
}

func (a *application) InitCasinoUseCase(
	ar domain.AccountRepository,
	sr domain.SessionRepository,
	lm *lock.UserLockManager,
	log *logger.Logger,
) *casino.CasinoUseCase {
	timeout := a.config.Game.SessionTimeout
	if timeout <= 0 {
		timeout = defaultSessionTimeout
	}
	return casino.NewCasinoUseCase(ar, sr, lm, log, casino.NewRand(), timeout)
}

func (a *application) InitKillUseCase(
	kr domain.KillRepository,
	log *logger.Logger,
) domain.KillUseCase {
	return kills.NewKillUseCase(kr, log, a.config.Authorized)
}
