package app

import (
	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/http/handlers"
	"github.com/dkazmin/casinobot/internal/http/middleware"
)

func (a *application) InitAccountHandler(uc domain.AccountUseCase, eh *middleware.ErrorHandler) *handlers.AccountHandler {
	return handlers.NewAccountHandler(uc, eh)
}

func (a *application) InitKillsHandler(uc domain.KillUseCase, eh *middleware.ErrorHandler) *handlers.KillsHandler {
	return handlers.NewKillsHandler(uc, eh)
}
