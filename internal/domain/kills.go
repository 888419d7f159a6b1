package domain

import "time"

// KillStats is one player's tally for a month. Team kills are halved
// (ceiling) before they are added here.
type KillStats struct {
	Regular int64 `json:"regular"`
	Team    int64 `json:"team"`
}

// MonthBoard maps player id to their stats for one month
type MonthBoard map[string]*KillStats

// LeaderboardEntry is one row of a month's leaderboard
type LeaderboardEntry struct {
	Player  string `json:"player"`
	Regular int64  `json:"regular"`
	Team    int64  `json:"team"`
	Total   int64  `json:"total"`
}

// LeaderboardSize caps how many entries a leaderboard query returns
const LeaderboardSize = 10

// MonthKey formats a time as the board's YYYY-MM month key
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// KillRepository defines the interface for kill-board persistence
type KillRepository interface {
	GetMonth(month string) (MonthBoard, error)
	SaveMonth(month string, board MonthBoard) error
}

// KillUseCase defines the interface for kill-board business logic.
// Mutating operations require the actor to be on the authorized list.
// An empty month means the current month.
type KillUseCase interface {
	AddKills(actorID, player string, regular, team int64, month string) (*KillStats, error)
	Leaderboard(month string) ([]LeaderboardEntry, error)
	PlayerStats(player, month string) (*LeaderboardEntry, error)
	ResetMonth(actorID, month string) error
}
