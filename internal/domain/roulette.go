package domain

import (
	"strconv"
	"time"
)

// RouletteBetType identifies a bet on the table
type RouletteBetType string

const (
	BetSingle   RouletteBetType = "single"
	BetSplit    RouletteBetType = "split"
	BetStreet   RouletteBetType = "street"
	BetCorner   RouletteBetType = "corner"
	BetSixLine  RouletteBetType = "six_line"
	BetColumn   RouletteBetType = "column"
	BetDozen    RouletteBetType = "dozen"
	BetRedBlack RouletteBetType = "red_black"
	BetEvenOdd  RouletteBetType = "even_odd"
	BetLowHigh  RouletteBetType = "low_high"
)

// RouletteMultipliers maps each bet type to its winning payout multiplier.
// A win credits bet x multiplier; the stake itself was forfeited at
// placement and is not separately returned.
var RouletteMultipliers = map[RouletteBetType]int64{
	BetSingle:   35,
	BetSplit:    17,
	BetStreet:   11,
	BetCorner:   8,
	BetSixLine:  5,
	BetColumn:   2,
	BetDozen:    2,
	BetRedBlack: 1,
	BetEvenOdd:  1,
	BetLowHigh:  1,
}

// numbersPerBetType is how many distinct slots a numbers-selection bet covers
var numbersPerBetType = map[RouletteBetType]int{
	BetSingle:  1,
	BetSplit:   2,
	BetStreet:  3,
	BetCorner:  4,
	BetSixLine: 6,
}

// NumbersWanted returns the required selection size for a numbers bet,
// or 0 for category bets.
func (t RouletteBetType) NumbersWanted() int {
	return numbersPerBetType[t]
}

// BetSelection is the tagged union of a bet's choice: category bets carry
// a name, inside bets carry distinct wheel numbers. Exactly one side is set,
// discriminated by the bet type.
type BetSelection struct {
	Category string `json:"category,omitempty"`
	Numbers  []int  `json:"numbers,omitempty"`
}

// CategorySelection builds a category-side selection
func CategorySelection(name string) BetSelection {
	return BetSelection{Category: name}
}

// NumbersSelection builds a numbers-side selection
func NumbersSelection(numbers ...int) BetSelection {
	return BetSelection{Numbers: numbers}
}

// RouletteBet is a validated bet awaiting a spin. The stake has already
// been deducted when the bet exists.
type RouletteBet struct {
	Type      RouletteBetType `json:"type"`
	Selection BetSelection    `json:"selection"`
	Amount    int64           `json:"amount"`
	PlacedAt  time.Time       `json:"placed_at"`
}

// RouletteSession is a user's presence at the table. At most one per user.
// IdleRounds is incremented by the sweep and reset by any table action;
// the session is torn down once it reaches MaxIdleRounds.
type RouletteSession struct {
	UserID     string       `json:"user_id"`
	PendingBet *RouletteBet `json:"pending_bet,omitempty"`
	IdleRounds int          `json:"idle_rounds"`
	CreatedAt  time.Time    `json:"created_at"`
	LastAction time.Time    `json:"last_action"`
}

// MaxIdleRounds is the sweep-tick threshold at which an idle roulette
// session is torn down.
const MaxIdleRounds = 3

// Touch resets the idle counter after any table action
func (s *RouletteSession) Touch() {
	s.IdleRounds = 0
	s.LastAction = time.Now()
}

// WheelColor is the color of a wheel slot
type WheelColor string

const (
	ColorRed   WheelColor = "red"
	ColorBlack WheelColor = "black"
	ColorGreen WheelColor = "green"
)

// WheelSlot is one of the 38 outcomes of an American wheel. DoubleZero
// distinguishes "00" from "0"; both carry Number 0.
type WheelSlot struct {
	Number     int  `json:"number"`
	DoubleZero bool `json:"double_zero"`
}

// Label renders the slot the way the table prints it
func (s WheelSlot) Label() string {
	if s.DoubleZero {
		return "00"
	}
	return strconv.Itoa(s.Number)
}

// IsZero reports whether the slot is 0 or 00 (the green slots, excluded
// from every category bet)
func (s WheelSlot) IsZero() bool {
	return s.Number == 0
}

// redNumbers is the fixed 18-number red set of the American layout
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Color assigns exactly one color to the slot: 0 and 00 are green, the
// red set is red, everything else is black.
func (s WheelSlot) Color() WheelColor {
	if s.IsZero() {
		return ColorGreen
	}
	if redNumbers[s.Number] {
		return ColorRed
	}
	return ColorBlack
}

// Wheel returns all 38 slots: 0, 00, then 1..36
func Wheel() []WheelSlot {
	slots := make([]WheelSlot, 0, 38)
	slots = append(slots, WheelSlot{Number: 0}, WheelSlot{Number: 0, DoubleZero: true})
	for n := 1; n <= 36; n++ {
		slots = append(slots, WheelSlot{Number: n})
	}
	return slots
}

// RouletteSpinResult is returned to the command surface after a spin
type RouletteSpinResult struct {
	UserID     string          `json:"user_id"`
	Slot       WheelSlot       `json:"slot"`
	Color      WheelColor      `json:"color"`
	BetType    RouletteBetType `json:"bet_type"`
	Selection  BetSelection    `json:"selection"`
	Amount     int64           `json:"amount"`
	Won        bool            `json:"won"`
	Payout     int64           `json:"payout"`
	NewBalance int64           `json:"new_balance"`
}
