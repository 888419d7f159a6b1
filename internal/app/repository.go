package app

import (
	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/repository"
)

func (a *application) InitRepository(ledger domain.LedgerStore) (domain.AccountRepository, domain.KillRepository, domain.SessionRepository) {
	return repository.NewAccountRepository(ledger),
		repository.NewKillRepository(ledger),
		repository.NewSessionRepository()
}
