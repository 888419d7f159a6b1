package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWheel(t *testing.T) {
	wheel := Wheel()
	assert.Len(t, wheel, 38)

	colors := map[WheelColor]int{}
	labels := map[string]bool{}
	for _, slot := range wheel {
		colors[slot.Color()]++
		labels[slot.Label()] = true
	}

	assert.Equal(t, 2, colors[ColorGreen])
	assert.Equal(t, 18, colors[ColorRed])
	assert.Equal(t, 18, colors[ColorBlack])
	assert.Len(t, labels, 38, "every slot has a distinct label")
	assert.True(t, labels["0"])
	assert.True(t, labels["00"])
}

func TestWheelSlotZero(t *testing.T) {
	zero := WheelSlot{Number: 0}
	doubleZero := WheelSlot{Number: 0, DoubleZero: true}

	assert.True(t, zero.IsZero())
	assert.True(t, doubleZero.IsZero())
	assert.Equal(t, "0", zero.Label())
	assert.Equal(t, "00", doubleZero.Label())
	assert.Equal(t, ColorGreen, zero.Color())
	assert.Equal(t, ColorGreen, doubleZero.Color())
}

func TestRouletteMultipliers(t *testing.T) {
	assert.Equal(t, int64(35), RouletteMultipliers[BetSingle])
	assert.Equal(t, int64(17), RouletteMultipliers[BetSplit])
	assert.Equal(t, int64(11), RouletteMultipliers[BetStreet])
	assert.Equal(t, int64(8), RouletteMultipliers[BetCorner])
	assert.Equal(t, int64(5), RouletteMultipliers[BetSixLine])
	assert.Equal(t, int64(2), RouletteMultipliers[BetColumn])
	assert.Equal(t, int64(2), RouletteMultipliers[BetDozen])
	assert.Equal(t, int64(1), RouletteMultipliers[BetRedBlack])
	assert.Equal(t, int64(1), RouletteMultipliers[BetEvenOdd])
	assert.Equal(t, int64(1), RouletteMultipliers[BetLowHigh])
}

func TestNumbersWanted(t *testing.T) {
	assert.Equal(t, 1, BetSingle.NumbersWanted())
	assert.Equal(t, 2, BetSplit.NumbersWanted())
	assert.Equal(t, 3, BetStreet.NumbersWanted())
	assert.Equal(t, 4, BetCorner.NumbersWanted())
	assert.Equal(t, 6, BetSixLine.NumbersWanted())
	assert.Equal(t, 0, BetRedBlack.NumbersWanted())
	assert.Equal(t, 0, BetDozen.NumbersWanted())
}

func TestSessionTouchResetsIdle(t *testing.T) {
	session := &RouletteSession{UserID: "u1", IdleRounds: 2}
	session.Touch()
	assert.Equal(t, 0, session.IdleRounds)
	assert.False(t, session.LastAction.IsZero())
}

func TestMonthKey(t *testing.T) {
	tm, err := time.Parse(time.RFC3339, "2026-08-31T12:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08", MonthKey(tm))
}
