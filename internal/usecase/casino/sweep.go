package casino

import (
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"go.uber.org/zap"
)

// SweepSessions runs one pass over the session registry.
//
// Roulette sessions age by one idle round per pass; a session that sits
// through MaxIdleRounds consecutive passes without any action is torn
// down, refunding any bet still waiting for a spin. Blackjack games idle
// past the session timeout are forfeited, and finished games that somehow
// linger in the registry are purged.
func (uc *CasinoUseCase) SweepSessions() (domain.SweepReport, error) {
	var report domain.SweepReport

	for _, session := range uc.sessionRepo.ListRoulette() {
		if err := uc.sweepRoulette(session, &report); err != nil {
			return report, err
		}
	}
	for _, game := range uc.sessionRepo.ListBlackjack() {
		if err := uc.sweepBlackjack(game, &report); err != nil {
			return report, err
		}
	}

	if !report.Empty() {
		uc.logger.Info("Session sweep complete",
			zap.Int("rouletteIdled", report.RouletteIdled),
			zap.Int("rouletteExpired", report.RouletteExpired),
			zap.Int("blackjackExpired", report.BlackjackExpired),
			zap.Int("blackjackFinished", report.BlackjackFinished))
	}
	return report, nil
}

func (uc *CasinoUseCase) sweepRoulette(session *domain.RouletteSession, report *domain.SweepReport) error {
	if err := uc.lockUser(session.UserID); err != nil {
		return err
	}
	defer uc.userLockManager.Unlock(session.UserID)

	// Re-fetch under the lock; the player may have left between the
	// listing and now.
	session, ok := uc.sessionRepo.GetRoulette(session.UserID)
	if !ok {
		return nil
	}

	session.IdleRounds++
	if session.IdleRounds < domain.MaxIdleRounds {
		report.RouletteIdled++
		return nil
	}

	if err := uc.refundPendingBet(session); err != nil {
		return err
	}
	uc.sessionRepo.DeleteRoulette(session.UserID)
	report.RouletteExpired++

	uc.logger.Info("Roulette session expired",
		zap.String("userID", session.UserID))
	return nil
}

func (uc *CasinoUseCase) sweepBlackjack(game *domain.BlackjackGame, report *domain.SweepReport) error {
	if err := uc.lockUser(game.UserID); err != nil {
		return err
	}
	defer uc.userLockManager.Unlock(game.UserID)

	game, ok := uc.sessionRepo.GetBlackjack(game.UserID)
	if !ok {
		return nil
	}

	if game.Finished {
		uc.sessionRepo.DeleteBlackjack(game.UserID)
		report.BlackjackFinished++
		return nil
	}

	if time.Since(game.LastAction) < uc.sessionTimeout {
		return nil
	}

	if _, err := uc.forfeitGame(game); err != nil {
		return err
	}
	report.BlackjackExpired++

	uc.logger.Info("Blackjack game expired",
		zap.String("userID", game.UserID),
		zap.String("gameID", game.ID))
	return nil
}
