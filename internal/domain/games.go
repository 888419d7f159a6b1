package domain

// SlotSymbols is the 5-symbol reel alphabet
var SlotSymbols = []string{"🍒", "🍋", "🍇", "🔔", "💎"}

// Slot payout multipliers: three of a kind pays 5x the bet, exactly two
// matching symbols pay 2x, anything else loses the stake.
const (
	SlotsTripleMultiplier int64 = 5
	SlotsPairMultiplier   int64 = 2
)

// CoinflipHouseEdge is the probability that the house wins a coinflip
const CoinflipHouseEdge = 0.52

// CoinflipResult is the outcome of a single coinflip
type CoinflipResult struct {
	UserID     string `json:"user_id"`
	Bet        int64  `json:"bet"`
	Won        bool   `json:"won"`
	Payout     int64  `json:"payout"`
	NewBalance int64  `json:"new_balance"`
}

// DiceResult is the outcome of a dice roll against the house. The house
// re-rolls ties, so HouseRoll never equals PlayerRoll.
type DiceResult struct {
	UserID     string `json:"user_id"`
	Bet        int64  `json:"bet"`
	PlayerRoll int    `json:"player_roll"`
	HouseRoll  int    `json:"house_roll"`
	Won        bool   `json:"won"`
	Payout     int64  `json:"payout"`
	NewBalance int64  `json:"new_balance"`
}

// DiceDuelResult is the outcome of a dice duel between two users.
// A tie transfers nothing and leaves both balances untouched.
type DiceDuelResult struct {
	UserID          string `json:"user_id"`
	OpponentID      string `json:"opponent_id"`
	Bet             int64  `json:"bet"`
	UserRoll        int    `json:"user_roll"`
	OpponentRoll    int    `json:"opponent_roll"`
	WinnerID        string `json:"winner_id,omitempty"`
	Tie             bool   `json:"tie"`
	UserBalance     int64  `json:"user_balance"`
	OpponentBalance int64  `json:"opponent_balance"`
}

// SlotsResult is the outcome of a slots spin
type SlotsResult struct {
	UserID     string   `json:"user_id"`
	Bet        int64    `json:"bet"`
	Reels      []string `json:"reels"`
	Multiplier int64    `json:"multiplier"`
	Won        bool     `json:"won"`
	Payout     int64    `json:"payout"`
	NewBalance int64    `json:"new_balance"`
}

// CasinoUseCase is the game-engine surface consumed by the command layer.
// Inputs arrive pre-validated by the boundary, but every operation
// re-validates bet bounds and balance sufficiency itself.
type CasinoUseCase interface {
	Coinflip(userID string, bet int64) (*CoinflipResult, error)
	Dice(userID string, bet int64) (*DiceResult, error)
	DiceDuel(userID, opponentID string, bet int64) (*DiceDuelResult, error)
	Slots(userID string, bet int64) (*SlotsResult, error)

	JoinRouletteTable(userID string) (*RouletteSession, error)
	PlaceRouletteBet(userID string, betType RouletteBetType, selection BetSelection, amount int64) (*RouletteSession, error)
	SpinRoulette(userID string) (*RouletteSpinResult, error)
	StayAtTable(userID string) error
	LeaveRouletteTable(userID string) error

	StartBlackjack(userID string, bet int64) (*BlackjackResult, error)
	HitBlackjack(userID string) (*BlackjackResult, error)
	StandBlackjack(userID string) (*BlackjackResult, error)
	ForfeitBlackjack(userID string) (*BlackjackResult, error)
}
