package account

import (
	"context"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/lock"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const dailyClaimInterval = 24 * time.Hour

// AccountUseCase implements domain.AccountUseCase
type AccountUseCase struct {
	accountRepo     domain.AccountRepository
	userLockManager *lock.UserLockManager
	logger          *logger.Logger
}

// NewAccountUseCase creates a new account use case
func NewAccountUseCase(
	accountRepo domain.AccountRepository,
	userLockManager *lock.UserLockManager,
	log *logger.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:     accountRepo,
		userLockManager: userLockManager,
		logger:          log,
	}
}

// GetAccount returns the user's account, creating it with the starting
// balance on first sight.
func (uc *AccountUseCase) GetAccount(userID string) (*domain.Account, error) {
	return uc.accountRepo.GetOrCreate(userID)
}

// ClaimDaily grants the daily reward, at most once per 24 hours
func (uc *AccountUseCase) ClaimDaily(userID string) (*domain.DailyClaimResult, error) {
	if err := uc.userLockManager.Lock(context.Background(), userID); err != nil {
		return nil, domain.NewInternalError("failed to acquire user lock", err)
	}
	defer uc.userLockManager.Unlock(userID)

	account, err := uc.accountRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if elapsed := now.Sub(account.LastDailyClaim); elapsed < dailyClaimInterval {
		next := account.LastDailyClaim.Add(dailyClaimInterval)
		return nil, domain.NewValidationError("daily",
			"already claimed, next claim at "+next.UTC().Format(time.RFC3339))
	}

	account.ApplyDelta(domain.DailyReward, 0, 0)
	account.LastDailyClaim = now
	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}

	uc.logger.Info("Daily reward claimed",
		zap.String("userID", userID),
		zap.Int64("reward", domain.DailyReward),
		zap.Int64("balance", account.Balance))

	return &domain.DailyClaimResult{
		UserID:     userID,
		Reward:     domain.DailyReward,
		NewBalance: account.Balance,
		NextClaim:  now.Add(dailyClaimInterval),
	}, nil
}
