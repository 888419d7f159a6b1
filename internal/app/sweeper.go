package app

import (
	"context"
	"time"

	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/dkazmin/casinobot/internal/infrastructure/sweeper"
	"github.com/dkazmin/casinobot/internal/usecase/casino"
	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

func (a *application) InitSweeper(uc *casino.CasinoUseCase, log *logger.Logger) *sweeper.Sweeper {
	interval := a.config.Game.SweepInterval
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return sweeper.NewSweeper(uc, log, interval)
}

// RegisterSweeper binds the session sweeper to the fx lifecycle
func (a *application) RegisterSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			s.Stop()
			return nil
		},
	})
}
