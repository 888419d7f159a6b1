package casino

import (
	"github.com/dkazmin/casinobot/internal/domain"
	"go.uber.org/zap"
)

// slotsMultiplier grades three reels: three of a kind pays 5x, exactly
// two matching symbols pay 2x, three distinct symbols lose.
func slotsMultiplier(reels []string) int64 {
	distinct := make(map[string]bool, 3)
	for _, symbol := range reels {
		distinct[symbol] = true
	}
	switch len(distinct) {
	case 1:
		return domain.SlotsTripleMultiplier
	case 2:
		return domain.SlotsPairMultiplier
	default:
		return 0
	}
}

// Slots resolves a slot-machine spin: three independent draws from the
// 5-symbol alphabet.
func (uc *CasinoUseCase) Slots(userID string, bet int64) (*domain.SlotsResult, error) {
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

	reels := make([]string, 3)
	for i := range reels {
		reels[i] = domain.SlotSymbols[uc.rng.Intn(len(domain.SlotSymbols))]
	}

	multiplier := slotsMultiplier(reels)

	var payout int64
	if multiplier > 0 {
		payout = bet * multiplier
		account.ApplyDelta(payout-bet, payout, 0)
	} else {
		account.ApplyDelta(-bet, 0, bet)
	}

	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}

	uc.logger.Info("Slots resolved",
		zap.String("userID", userID),
		zap.Strings("reels", reels),
		zap.Int64("multiplier", multiplier),
		zap.Int64("payout", payout))

	return &domain.SlotsResult{
		UserID:     userID,
		Bet:        bet,
		Reels:      reels,
		Multiplier: multiplier,
		Won:        multiplier > 0,
		Payout:     payout,
		NewBalance: account.Balance,
	}, nil
}
