package kills

import (
	"sort"
	"sync"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// KillUseCase implements domain.KillUseCase. A plain mutex guards the
// read-modify-write of a month board; kill updates are rare enough that
// per-player locking would buy nothing.
type KillUseCase struct {
	killRepo   domain.KillRepository
	logger     *logger.Logger
	authorized map[string]bool
	mu         sync.Mutex
}

// NewKillUseCase creates a new kill-board use case. authorizedUsers are
// the only actors allowed to record or reset kills.
func NewKillUseCase(killRepo domain.KillRepository, log *logger.Logger, authorizedUsers []string) *KillUseCase {
	authorized := make(map[string]bool, len(authorizedUsers))
	for _, id := range authorizedUsers {
		authorized[id] = true
	}
	return &KillUseCase{
		killRepo:   killRepo,
		logger:     log,
		authorized: authorized,
	}
}

// AddKills records kills for a player in the given month (current month
// when empty). Team kills count half, rounded up.
func (uc *KillUseCase) AddKills(actorID, player string, regular, team int64, month string) (*domain.KillStats, error) {
	if err := uc.authorize(actorID); err != nil {
		return nil, err
	}
	if player == "" {
		return nil, domain.NewValidationError("player", "player name is required")
	}
	if regular < 0 || team < 0 {
		return nil, domain.NewValidationError("kills", "kill counts cannot be negative")
	}
	if regular == 0 && team == 0 {
		return nil, domain.NewValidationError("kills", "nothing to record")
	}

	month = uc.resolveMonth(month)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	board, err := uc.killRepo.GetMonth(month)
	if err != nil {
		return nil, err
	}

	stats, ok := board[player]
	if !ok {
		stats = &domain.KillStats{}
		board[player] = stats
	}
	stats.Regular += regular
	stats.Team += (team + 1) / 2

	if err := uc.killRepo.SaveMonth(month, board); err != nil {
		return nil, err
	}

	uc.logger.Info("Kills recorded",
		zap.String("actorID", actorID),
		zap.String("player", player),
		zap.String("month", month),
		zap.Int64("regular", regular),
		zap.Int64("team", team))

	return stats, nil
}

// Leaderboard returns the month's top players by total kills, descending.
// Ties break alphabetically so the ordering is stable across calls.
func (uc *KillUseCase) Leaderboard(month string) ([]domain.LeaderboardEntry, error) {
	board, err := uc.killRepo.GetMonth(uc.resolveMonth(month))
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(board))
	for player, stats := range board {
		entries = append(entries, domain.LeaderboardEntry{
			Player:  player,
			Regular: stats.Regular,
			Team:    stats.Team,
			Total:   stats.Regular + stats.Team,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Player < entries[j].Player
	})

	if len(entries) > domain.LeaderboardSize {
		entries = entries[:domain.LeaderboardSize]
	}
	return entries, nil
}

// PlayerStats returns one player's row for the month, zeroed when the
// player has no kills recorded.
func (uc *KillUseCase) PlayerStats(player, month string) (*domain.LeaderboardEntry, error) {
	if player == "" {
		return nil, domain.NewValidationError("player", "player name is required")
	}

	board, err := uc.killRepo.GetMonth(uc.resolveMonth(month))
	if err != nil {
		return nil, err
	}

	entry := &domain.LeaderboardEntry{Player: player}
	if stats, ok := board[player]; ok {
		entry.Regular = stats.Regular
		entry.Team = stats.Team
		entry.Total = stats.Regular + stats.Team
	}
	return entry, nil
}

// ResetMonth wipes a month's board
func (uc *KillUseCase) ResetMonth(actorID, month string) error {
	if err := uc.authorize(actorID); err != nil {
		return err
	}

	month = uc.resolveMonth(month)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.killRepo.SaveMonth(month, domain.MonthBoard{}); err != nil {
		return err
	}

	uc.logger.Warn("Kill board reset",
		zap.String("actorID", actorID),
		zap.String("month", month))
	return nil
}

func (uc *KillUseCase) authorize(actorID string) error {
	if !uc.authorized[actorID] {
		return domain.NewNotAuthorizedError("you are not allowed to manage the kill board")
	}
	return nil
}

func (uc *KillUseCase) resolveMonth(month string) string {
	if month == "" {
		return domain.MonthKey(time.Now())
	}
	return month
}
