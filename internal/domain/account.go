package domain

import (
	"time"
)

// Economy constants shared by the account manager and the game engines.
const (
	StartingBalance int64 = 500
	DailyReward     int64 = 200

	MinBet         int64 = 10
	MaxBet         int64 = 1000
	MaxRouletteBet int64 = 10000
)

// Account represents a user's economy account. Created lazily on first
// access, never deleted.
type Account struct {
	UserID         string    `json:"user_id"`
	Balance        int64     `json:"balance"`
	TotalWon       int64     `json:"total_won"`
	TotalLost      int64     `json:"total_lost"`
	LastDailyClaim time.Time `json:"last_daily_claim"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ApplyDelta mutates the account in place. Balance symmetry with the
// won/lost tallies is the caller's contract; the caller persists.
func (a *Account) ApplyDelta(balanceDelta, wonDelta, lostDelta int64) {
	a.Balance += balanceDelta
	a.TotalWon += wonDelta
	a.TotalLost += lostDelta
	a.UpdatedAt = time.Now()
}

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	GetOrCreate(userID string) (*Account, error)
	Get(userID string) (*Account, error)
	Save(account *Account) error
	// SaveAll writes several accounts in one store batch so that a
	// cross-account settlement is never left half-applied.
	SaveAll(accounts ...*Account) error
}

// AccountUseCase defines the interface for account business logic
type AccountUseCase interface {
	GetAccount(userID string) (*Account, error)
	ClaimDaily(userID string) (*DailyClaimResult, error)
}

// DailyClaimResult is returned to the command surface after a daily claim
type DailyClaimResult struct {
	UserID     string    `json:"user_id"`
	Reward     int64     `json:"reward"`
	NewBalance int64     `json:"new_balance"`
	NextClaim  time.Time `json:"next_claim"`
}
