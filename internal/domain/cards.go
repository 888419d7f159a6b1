package domain

import "fmt"

// Card suits and ranks for the blackjack deck
var (
	CardSuits = []string{"♠", "♥", "♦", "♣"}
	CardRanks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

	cardValues = map[string]int{
		"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
		"J": 10, "Q": 10, "K": 10, "A": 11,
	}
)

// Card is a single playing card
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Value returns the blackjack value of the card, counting aces as 11
func (c Card) Value() int {
	return cardValues[c.Rank]
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// NewDeck returns the 52 unique cards of a standard deck in fixed order.
// Shuffling is the game engine's job.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range CardSuits {
		for _, rank := range CardRanks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// Score computes the blackjack score of a hand. Aces count as 11 first;
// while the total exceeds 21, each ace in turn is downgraded to 1 until
// the total fits or the aces run out. {A,A,A,A,9} therefore scores 13.
func Score(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
