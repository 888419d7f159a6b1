package casino

import (
	"fmt"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"go.uber.org/zap"
)

// JoinRouletteTable opens a table session for the user. A second session
// while one is active is a conflict.
func (uc *CasinoUseCase) JoinRouletteTable(userID string) (*domain.RouletteSession, error) {
	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	now := time.Now()
	session := &domain.RouletteSession{
		UserID:     userID,
		CreatedAt:  now,
		LastAction: now,
	}
	if err := uc.sessionRepo.CreateRoulette(session); err != nil {
		return nil, err
	}

	uc.logger.Info("Roulette table joined", zap.String("userID", userID))
	return session, nil
}

// PlaceRouletteBet validates and takes a bet: the stake is deducted up
// front and the bet is held pending until the next spin. Placing a second
// bet before spinning is a conflict.
func (uc *CasinoUseCase) PlaceRouletteBet(userID string, betType domain.RouletteBetType, selection domain.BetSelection, amount int64) (*domain.RouletteSession, error) {
	if err := uc.validateBet(amount, domain.MaxRouletteBet); err != nil {
		return nil, err
	}
	if err := validateSelection(betType, selection); err != nil {
		return nil, err
	}

	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	session, ok := uc.sessionRepo.GetRoulette(userID)
	if !ok {
		return nil, domain.NewSessionNotFoundError("Join the roulette table before betting")
	}
	if session.PendingBet != nil {
		return nil, domain.NewSessionConflictError("You already have a bet waiting for the spin")
	}

	account, err := uc.getAccountWithBalance(userID, amount)
	if err != nil {
		return nil, err
	}

	// Stake comes off the balance now; whether it counts as lost is
	// decided at spin time.
	account.ApplyDelta(-amount, 0, 0)
	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}

	session.PendingBet = &domain.RouletteBet{
		Type:      betType,
		Selection: selection,
		Amount:    amount,
		PlacedAt:  time.Now(),
	}
	session.Touch()

	uc.logger.Info("Roulette bet placed",
		zap.String("userID", userID),
		zap.String("betType", string(betType)),
		zap.Int64("amount", amount))

	return session, nil
}

// SpinRoulette spins the wheel and settles the pending bet
func (uc *CasinoUseCase) SpinRoulette(userID string) (*domain.RouletteSpinResult, error) {
	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	session, ok := uc.sessionRepo.GetRoulette(userID)
	if !ok {
		return nil, domain.NewSessionNotFoundError("You are not at the roulette table")
	}
	bet := session.PendingBet
	if bet == nil {
		return nil, domain.NewValidationError("bet", "place a bet before spinning")
	}

	wheel := domain.Wheel()
	slot := wheel[uc.rng.Intn(len(wheel))]
	won := betWins(bet, slot)

	account, err := uc.accountRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	var payout int64
	if won {
		payout = bet.Amount * domain.RouletteMultipliers[bet.Type]
		settleWin(account, payout)
	} else {
		settleLoss(account, bet.Amount)
	}

	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}

	session.PendingBet = nil
	session.Touch()

	uc.logger.Info("Roulette spin resolved",
		zap.String("userID", userID),
		zap.String("slot", slot.Label()),
		zap.Bool("won", won),
		zap.Int64("payout", payout))

	return &domain.RouletteSpinResult{
		UserID:     userID,
		Slot:       slot,
		Color:      slot.Color(),
		BetType:    bet.Type,
		Selection:  bet.Selection,
		Amount:     bet.Amount,
		Won:        won,
		Payout:     payout,
		NewBalance: account.Balance,
	}, nil
}

// StayAtTable resets the idle counter without betting
func (uc *CasinoUseCase) StayAtTable(userID string) error {
	if err := uc.lockUser(userID); err != nil {
		return err
	}
	defer uc.userLockManager.Unlock(userID)

	session, ok := uc.sessionRepo.GetRoulette(userID)
	if !ok {
		return domain.NewSessionNotFoundError("You are not at the roulette table")
	}
	session.Touch()
	return nil
}

// LeaveRouletteTable tears down the session. An unresolved pending bet
// was never spun, so its stake is refunded.
func (uc *CasinoUseCase) LeaveRouletteTable(userID string) error {
	if err := uc.lockUser(userID); err != nil {
		return err
	}
	defer uc.userLockManager.Unlock(userID)

	session, ok := uc.sessionRepo.GetRoulette(userID)
	if !ok {
		return domain.NewSessionNotFoundError("You are not at the roulette table")
	}

	if err := uc.refundPendingBet(session); err != nil {
		return err
	}
	uc.sessionRepo.DeleteRoulette(userID)

	uc.logger.Info("Roulette table left", zap.String("userID", userID))
	return nil
}

// refundPendingBet returns an unresolved stake to the balance. Caller
// holds the user lock.
func (uc *CasinoUseCase) refundPendingBet(session *domain.RouletteSession) error {
	if session.PendingBet == nil {
		return nil
	}

	account, err := uc.accountRepo.GetOrCreate(session.UserID)
	if err != nil {
		return err
	}
	account.ApplyDelta(session.PendingBet.Amount, 0, 0)
	if err := uc.accountRepo.Save(account); err != nil {
		return err
	}
	session.PendingBet = nil
	return nil
}

// validateSelection checks the bet's selection against its type: inside
// bets need the right count of distinct numbers, category bets need a
// recognised choice.
func validateSelection(betType domain.RouletteBetType, selection domain.BetSelection) error {
	if wanted := betType.NumbersWanted(); wanted > 0 {
		if len(selection.Numbers) != wanted {
			return domain.NewValidationError("selection", fmt.Sprintf("%s bet requires exactly %d numbers", betType, wanted))
		}
		seen := make(map[int]bool, wanted)
		for _, n := range selection.Numbers {
			if n < 0 || n > 36 {
				return domain.NewValidationError("selection", "numbers must be between 0 and 36")
			}
			if seen[n] {
				return domain.NewValidationError("selection", "numbers must be distinct")
			}
			seen[n] = true
		}
		return nil
	}

	choice := selection.Category
	switch betType {
	case domain.BetColumn, domain.BetDozen:
		if choice != "1" && choice != "2" && choice != "3" {
			return domain.NewValidationError("selection", fmt.Sprintf("%s bet requires choice 1, 2 or 3", betType))
		}
	case domain.BetRedBlack:
		if choice != "red" && choice != "black" {
			return domain.NewValidationError("selection", "red_black bet requires red or black")
		}
	case domain.BetEvenOdd:
		if choice != "even" && choice != "odd" {
			return domain.NewValidationError("selection", "even_odd bet requires even or odd")
		}
	case domain.BetLowHigh:
		if choice != "low" && choice != "high" {
			return domain.NewValidationError("selection", "low_high bet requires low or high")
		}
	default:
		return domain.NewValidationError("bet_type", fmt.Sprintf("unknown bet type %q", betType))
	}
	return nil
}

// betWins decides a settled bet against the wheel result. The green slots
// 0 and 00 defeat every category bet; inside bets cover 0 but have no way
// to select 00.
func betWins(bet *domain.RouletteBet, slot domain.WheelSlot) bool {
	if wanted := bet.Type.NumbersWanted(); wanted > 0 {
		if slot.DoubleZero {
			return false
		}
		for _, n := range bet.Selection.Numbers {
			if n == slot.Number {
				return true
			}
		}
		return false
	}

	if slot.IsZero() {
		return false
	}

	n := slot.Number
	choice := bet.Selection.Category
	switch bet.Type {
	case domain.BetColumn:
		return (n-1)%3+1 == int(choice[0]-'0')
	case domain.BetDozen:
		return (n-1)/12+1 == int(choice[0]-'0')
	case domain.BetRedBlack:
		return string(slot.Color()) == choice
	case domain.BetEvenOdd:
		if choice == "even" {
			return n%2 == 0
		}
		return n%2 == 1
	case domain.BetLowHigh:
		if choice == "low" {
			return n <= 18
		}
		return n >= 19
	default:
		return false
	}
}
