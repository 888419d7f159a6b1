package casino

import (
	"github.com/dkazmin/casinobot/internal/domain"
	"go.uber.org/zap"
)

// Coinflip resolves a single biased coinflip against the house. The coin
// is not fair: the house wins with probability CoinflipHouseEdge.
func (uc *CasinoUseCase) Coinflip(userID string, bet int64) (*domain.CoinflipResult, error) {
	if err := uc.validateBet(bet, domain.MaxBet); err != nil {
		return nil, err
	}

	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	account, err := uc.getAccountWithBalance(userID, bet)
	if err != nil {
		return nil, err
	}

	won := uc.rng.Float64() >= domain.CoinflipHouseEdge

	var payout int64
	if won {
		payout = bet * 2
		account.ApplyDelta(payout-bet, payout, 0)
	} else {
		account.ApplyDelta(-bet, 0, bet)
	}

	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}

	uc.logger.Info("Coinflip resolved",
		zap.String("userID", userID),
		zap.Int64("bet", bet),
		zap.Bool("won", won),
		zap.Int64("balance", account.Balance))

	return &domain.CoinflipResult{
		UserID:     userID,
		Bet:        bet,
		Won:        won,
		Payout:     payout,
		NewBalance: account.Balance,
	}, nil
}
