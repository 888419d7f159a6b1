package casino

import (
	"context"

	"github.com/dkazmin/casinobot/internal/domain"
	"go.uber.org/zap"
)

// rollDie draws a single die face 1..6
func (uc *CasinoUseCase) rollDie() int {
	return uc.rng.Intn(6) + 1
}

// Dice resolves a dice roll against the house. On a tie the house
// re-rolls until the tie breaks; the house never loses a tie.
func (uc *CasinoUseCase) Dice(userID string, bet int64) (*domain.DiceResult, error) {
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

	playerRoll := uc.rollDie()
	houseRoll := uc.rollDie()
	for houseRoll == playerRoll {
		houseRoll = uc.rollDie()
	}

	won := playerRoll > houseRoll

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

	uc.logger.Info("Dice resolved",
		zap.String("userID", userID),
		zap.Int("playerRoll", playerRoll),
		zap.Int("houseRoll", houseRoll),
		zap.Bool("won", won))

	return &domain.DiceResult{
		UserID:     userID,
		Bet:        bet,
		PlayerRoll: playerRoll,
		HouseRoll:  houseRoll,
		Won:        won,
		Payout:     payout,
		NewBalance: account.Balance,
	}, nil
}

// DiceDuel resolves a dice duel between two users. Both balances are
// validated before either is touched, and the settlement is written as
// one batch so a duel is never left half-applied. A tie moves nothing.
func (uc *CasinoUseCase) DiceDuel(userID, opponentID string, bet int64) (*domain.DiceDuelResult, error) {
	if err := uc.validateBet(bet, domain.MaxBet); err != nil {
		return nil, err
	}
	if userID == opponentID {
		return nil, domain.NewValidationError("opponent", "cannot duel yourself")
	}

	if err := uc.userLockManager.LockPair(context.Background(), userID, opponentID); err != nil {
		return nil, domain.NewInternalError("failed to acquire duel locks", err)
	}
	defer uc.userLockManager.UnlockPair(userID, opponentID)

	account, err := uc.getAccountWithBalance(userID, bet)
	if err != nil {
		return nil, err
	}
	opponent, err := uc.getAccountWithBalance(opponentID, bet)
	if err != nil {
		return nil, err
	}

	userRoll := uc.rollDie()
	opponentRoll := uc.rollDie()

	result := &domain.DiceDuelResult{
		UserID:       userID,
		OpponentID:   opponentID,
		Bet:          bet,
		UserRoll:     userRoll,
		OpponentRoll: opponentRoll,
	}

	switch {
	case userRoll == opponentRoll:
		result.Tie = true
	case userRoll > opponentRoll:
		result.WinnerID = userID
		account.ApplyDelta(bet, bet, 0)
		opponent.ApplyDelta(-bet, 0, bet)
	default:
		result.WinnerID = opponentID
		opponent.ApplyDelta(bet, bet, 0)
		account.ApplyDelta(-bet, 0, bet)
	}

	if !result.Tie {
		if err := uc.accountRepo.SaveAll(account, opponent); err != nil {
			return nil, err
		}
	}

	result.UserBalance = account.Balance
	result.OpponentBalance = opponent.Balance

	uc.logger.Info("Dice duel resolved",
		zap.String("userID", userID),
		zap.String("opponentID", opponentID),
		zap.String("winnerID", result.WinnerID),
		zap.Bool("tie", result.Tie))

	return result, nil
}
