package domain

import "time"

// BlackjackOutcome is the terminal result of a hand
type BlackjackOutcome string

const (
	OutcomeWin       BlackjackOutcome = "win"
	OutcomeBlackjack BlackjackOutcome = "blackjack"
	OutcomeLoss      BlackjackOutcome = "loss"
	OutcomeBust      BlackjackOutcome = "bust"
	OutcomePush      BlackjackOutcome = "push"
	OutcomeForfeit   BlackjackOutcome = "forfeit"
)

// BlackjackState tracks where the hand is in its lifecycle
type BlackjackState string

const (
	BlackjackPlayerTurn BlackjackState = "player_turn"
	BlackjackDealerTurn BlackjackState = "dealer_turn"
	BlackjackResolved   BlackjackState = "resolved"
)

// BlackjackGame is one user's in-progress hand. The deck is the remainder
// of a 52-card shoe shuffled once at start; draws remove from the top, so
// no card repeats within a game. At most one active game per user.
type BlackjackGame struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Bet         int64            `json:"bet"`
	Deck        []Card           `json:"-"`
	PlayerCards []Card           `json:"player_cards"`
	DealerCards []Card           `json:"dealer_cards"`
	State       BlackjackState   `json:"state"`
	Natural     bool             `json:"natural"`
	Finished    bool             `json:"finished"`
	Outcome     BlackjackOutcome `json:"outcome,omitempty"`
	Payout      int64            `json:"payout"`
	CreatedAt   time.Time        `json:"created_at"`
	LastAction  time.Time        `json:"last_action"`
}

// Draw removes and returns the top card of the deck
func (g *BlackjackGame) Draw() Card {
	card := g.Deck[0]
	g.Deck = g.Deck[1:]
	return card
}

// PlayerScore is the current blackjack score of the player's hand
func (g *BlackjackGame) PlayerScore() int {
	return Score(g.PlayerCards)
}

// DealerScore is the current blackjack score of the dealer's hand
func (g *BlackjackGame) DealerScore() int {
	return Score(g.DealerCards)
}

// Touch records player activity for the stale-game sweep
func (g *BlackjackGame) Touch() {
	g.LastAction = time.Now()
}

// BlackjackResult is returned to the command surface after every blackjack
// action. DealerCards contains only the visible up-card until the hand
// resolves.
type BlackjackResult struct {
	GameID      string           `json:"game_id"`
	UserID      string           `json:"user_id"`
	Bet         int64            `json:"bet"`
	PlayerCards []Card           `json:"player_cards"`
	DealerCards []Card           `json:"dealer_cards"`
	PlayerScore int              `json:"player_score"`
	DealerScore int              `json:"dealer_score,omitempty"`
	State       BlackjackState   `json:"state"`
	Finished    bool             `json:"finished"`
	Outcome     BlackjackOutcome `json:"outcome,omitempty"`
	Payout      int64            `json:"payout"`
	NewBalance  int64            `json:"new_balance"`
}
