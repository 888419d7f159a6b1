package casino

import (
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dealerStandScore = 17

// StartBlackjack deals a new hand. The stake is deducted up front; a
// natural 21 on the opening deal auto-stands into the dealer's turn.
func (uc *CasinoUseCase) StartBlackjack(userID string, bet int64) (*domain.BlackjackResult, error) {
	if err := uc.validateBet(bet, domain.MaxBet); err != nil {
		return nil, err
	}

	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	if existing, ok := uc.sessionRepo.GetBlackjack(userID); ok && !existing.Finished {
		return nil, domain.NewSessionConflictError("You already have a blackjack game in progress")
	}

	account, err := uc.getAccountWithBalance(userID, bet)
	if err != nil {
		return nil, err
	}

	account.ApplyDelta(-bet, 0, 0)
	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}

	deck := domain.NewDeck()
	uc.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	now := time.Now()
	game := &domain.BlackjackGame{
		ID:         uuid.New().String(),
		UserID:     userID,
		Bet:        bet,
		Deck:       deck,
		State:      domain.BlackjackPlayerTurn,
		CreatedAt:  now,
		LastAction: now,
	}

	// Deal order matches a live table: player, dealer, player, dealer.
	game.PlayerCards = append(game.PlayerCards, game.Draw())
	game.DealerCards = append(game.DealerCards, game.Draw())
	game.PlayerCards = append(game.PlayerCards, game.Draw())
	game.DealerCards = append(game.DealerCards, game.Draw())

	if game.PlayerScore() == 21 {
		// Auto-stand. The dealer still plays the hand out, so a dealer 21
		// pushes instead of paying the natural premium.
		game.Natural = true
		return uc.playDealer(game)
	}

	if err := uc.sessionRepo.CreateBlackjack(game); err != nil {
		// Conflict was checked above under the lock; a failure here is a
		// repository fault and the stake must come back.
		account.ApplyDelta(bet, 0, 0)
		if saveErr := uc.accountRepo.Save(account); saveErr != nil {
			uc.logger.Error("Failed to refund stake after session create failure",
				zap.String("userID", userID), zap.Error(saveErr))
		}
		return nil, err
	}

	uc.logger.Info("Blackjack game started",
		zap.String("userID", userID),
		zap.String("gameID", game.ID),
		zap.Int64("bet", bet))

	return uc.blackjackResult(game, account.Balance), nil
}

// HitBlackjack draws one card for the player. A bust resolves the game,
// hitting to exactly 21 stands automatically.
func (uc *CasinoUseCase) HitBlackjack(userID string) (*domain.BlackjackResult, error) {
	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	game, err := uc.activeGame(userID)
	if err != nil {
		return nil, err
	}

	game.PlayerCards = append(game.PlayerCards, game.Draw())
	game.Touch()

	score := game.PlayerScore()
	switch {
	case score > 21:
		game.State = domain.BlackjackResolved
		game.Outcome = domain.OutcomeBust
		return uc.settleBlackjack(game)
	case score == 21:
		return uc.playDealer(game)
	}

	account, err := uc.accountRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return uc.blackjackResult(game, account.Balance), nil
}

// StandBlackjack ends the player's turn and plays out the dealer hand
func (uc *CasinoUseCase) StandBlackjack(userID string) (*domain.BlackjackResult, error) {
	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	game, err := uc.activeGame(userID)
	if err != nil {
		return nil, err
	}

	return uc.playDealer(game)
}

// ForfeitBlackjack abandons the hand. The stake is already gone; nothing
// is returned.
func (uc *CasinoUseCase) ForfeitBlackjack(userID string) (*domain.BlackjackResult, error) {
	if err := uc.lockUser(userID); err != nil {
		return nil, err
	}
	defer uc.userLockManager.Unlock(userID)

	game, err := uc.activeGame(userID)
	if err != nil {
		return nil, err
	}

	return uc.forfeitGame(game)
}

// forfeitGame resolves a game as abandoned. Caller holds the user lock.
// The sweeper uses this for expired games as well as explicit forfeits.
func (uc *CasinoUseCase) forfeitGame(game *domain.BlackjackGame) (*domain.BlackjackResult, error) {
	game.State = domain.BlackjackResolved
	game.Outcome = domain.OutcomeForfeit
	return uc.settleBlackjack(game)
}

// activeGame fetches the caller's unresolved game. A resolved game still
// sitting in the registry is awaiting the sweep and no longer playable.
func (uc *CasinoUseCase) activeGame(userID string) (*domain.BlackjackGame, error) {
	game, ok := uc.sessionRepo.GetBlackjack(userID)
	if !ok {
		return nil, domain.NewSessionNotFoundError("You have no blackjack game in progress")
	}
	if game.Finished {
		return nil, domain.NewSessionExpiredError("Your blackjack game has already ended")
	}
	return game, nil
}

// playDealer runs the dealer hand to completion and settles. The dealer
// draws to 16 and stands on 17, including soft 17.
func (uc *CasinoUseCase) playDealer(game *domain.BlackjackGame) (*domain.BlackjackResult, error) {
	game.State = domain.BlackjackDealerTurn
	for game.DealerScore() < dealerStandScore {
		game.DealerCards = append(game.DealerCards, game.Draw())
	}

	playerScore := game.PlayerScore()
	dealerScore := game.DealerScore()

	game.State = domain.BlackjackResolved
	switch {
	case dealerScore > 21 || playerScore > dealerScore:
		if game.Natural {
			game.Outcome = domain.OutcomeBlackjack
		} else {
			game.Outcome = domain.OutcomeWin
		}
	case playerScore == dealerScore:
		game.Outcome = domain.OutcomePush
	default:
		game.Outcome = domain.OutcomeLoss
	}

	return uc.settleBlackjack(game)
}

// settleBlackjack applies the resolved outcome to the account and removes
// the game from the registry. The stake was deducted at the deal, so the
// payout here is the full amount credited back.
func (uc *CasinoUseCase) settleBlackjack(game *domain.BlackjackGame) (*domain.BlackjackResult, error) {
	account, err := uc.accountRepo.GetOrCreate(game.UserID)
	if err != nil {
		return nil, err
	}
	return uc.resolveBlackjack(game, account)
}

func (uc *CasinoUseCase) resolveBlackjack(game *domain.BlackjackGame, account *domain.Account) (*domain.BlackjackResult, error) {
	switch game.Outcome {
	case domain.OutcomeBlackjack:
		game.Payout = game.Bet * 5 / 2
		settleWin(account, game.Payout)
	case domain.OutcomeWin:
		game.Payout = game.Bet * 2
		settleWin(account, game.Payout)
	case domain.OutcomePush:
		game.Payout = game.Bet
		account.ApplyDelta(game.Payout, 0, 0)
	default:
		game.Payout = 0
		settleLoss(account, game.Bet)
	}

	game.Finished = true
	game.Touch()

	if err := uc.accountRepo.Save(account); err != nil {
		return nil, err
	}
	uc.sessionRepo.DeleteBlackjack(game.UserID)

	uc.logger.Info("Blackjack game resolved",
		zap.String("userID", game.UserID),
		zap.String("gameID", game.ID),
		zap.String("outcome", string(game.Outcome)),
		zap.Int64("payout", game.Payout))

	return uc.blackjackResult(game, account.Balance), nil
}

// blackjackResult snapshots the game for the caller. While the hand is
// live only the dealer's up card is visible.
func (uc *CasinoUseCase) blackjackResult(game *domain.BlackjackGame, balance int64) *domain.BlackjackResult {
	result := &domain.BlackjackResult{
		GameID:      game.ID,
		UserID:      game.UserID,
		Bet:         game.Bet,
		PlayerCards: append([]domain.Card(nil), game.PlayerCards...),
		PlayerScore: game.PlayerScore(),
		State:       game.State,
		Finished:    game.Finished,
		Outcome:     game.Outcome,
		Payout:      game.Payout,
		NewBalance:  balance,
	}

	if game.Finished {
		result.DealerCards = append([]domain.Card(nil), game.DealerCards...)
		result.DealerScore = game.DealerScore()
	} else if len(game.DealerCards) > 0 {
		result.DealerCards = []domain.Card{game.DealerCards[0]}
		result.DealerScore = domain.Score(result.DealerCards)
	}

	return result
}
