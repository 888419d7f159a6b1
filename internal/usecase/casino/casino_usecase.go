package casino

import (
	"context"
	"fmt"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/lock"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
)

// CasinoUseCase implements domain.CasinoUseCase and domain.SessionSweeper.
// Every balance-mutating operation runs under the owning user's lock so
// the read-validate-deduct-persist sequence stays atomic across
// goroutines.
type CasinoUseCase struct {
	accountRepo     domain.AccountRepository
	sessionRepo     domain.SessionRepository
	userLockManager *lock.UserLockManager
	logger          *logger.Logger
	rng             Rand
	sessionTimeout  time.Duration
}

// NewCasinoUseCase creates a new casino use case
func NewCasinoUseCase(
	accountRepo domain.AccountRepository,
	sessionRepo domain.SessionRepository,
	userLockManager *lock.UserLockManager,
	log *logger.Logger,
	rng Rand,
	sessionTimeout time.Duration,
) *CasinoUseCase {
	return &CasinoUseCase{
		accountRepo:     accountRepo,
		sessionRepo:     sessionRepo,
		userLockManager: userLockManager,
		logger:          log,
		rng:             rng,
		sessionTimeout:  sessionTimeout,
	}
}

// validateBet checks bet bounds. maxBet differs between the roulette
// table and everything else.
func (uc *CasinoUseCase) validateBet(bet, maxBet int64) error {
	if bet < domain.MinBet || bet > maxBet {
		return domain.NewValidationError("bet", fmt.Sprintf("must be between %d and %d", domain.MinBet, maxBet))
	}
	return nil
}

// getAccountWithBalance fetches (or creates) the account and re-validates
// that it covers the bet; callers never trust the boundary's check.
func (uc *CasinoUseCase) getAccountWithBalance(userID string, bet int64) (*domain.Account, error) {
	account, err := uc.accountRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if account.Balance < bet {
		return nil, domain.NewInsufficientFundsError(account.Balance, bet)
	}
	return account, nil
}

// lockUser acquires the user's lock with a background context
func (uc *CasinoUseCase) lockUser(userID string) error {
	if err := uc.userLockManager.Lock(context.Background(), userID); err != nil {
		return domain.NewInternalError("failed to acquire user lock", err)
	}
	return nil
}

// settleWin credits the payout and records it as won. The stake was
// deducted when the bet was taken, so the balance delta is the payout.
func settleWin(account *domain.Account, payout int64) {
	account.ApplyDelta(payout, payout, 0)
}

// settleLoss records a forfeited stake that was already deducted
func settleLoss(account *domain.Account, stake int64) {
	account.ApplyDelta(0, 0, stake)
}
