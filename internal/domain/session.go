package domain

// SessionRepository is the process-wide registry of active roulette
// sessions and blackjack games. Implementations must be safe for
// concurrent use; the at-most-one-per-user invariant is enforced here.
type SessionRepository interface {
	CreateRoulette(session *RouletteSession) error
	GetRoulette(userID string) (*RouletteSession, bool)
	DeleteRoulette(userID string)
	ListRoulette() []*RouletteSession

	CreateBlackjack(game *BlackjackGame) error
	GetBlackjack(userID string) (*BlackjackGame, bool)
	DeleteBlackjack(userID string)
	ListBlackjack() []*BlackjackGame
}

// SweepReport summarizes one pass of the stale-session sweep
type SweepReport struct {
	RouletteIdled     int `json:"roulette_idled"`
	RouletteExpired   int `json:"roulette_expired"`
	BlackjackExpired  int `json:"blackjack_expired"`
	BlackjackFinished int `json:"blackjack_finished"`
}

// Empty reports whether the sweep touched anything
func (r SweepReport) Empty() bool {
	return r.RouletteIdled == 0 && r.RouletteExpired == 0 &&
		r.BlackjackExpired == 0 && r.BlackjackFinished == 0
}

// SessionSweeper tears down abandoned sessions. Called periodically by
// the background sweeper.
type SessionSweeper interface {
	SweepSessions() (SweepReport, error)
}
