package casino

import (
	"testing"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCoinflipWin(t *testing.T) {
	// 0.52 edge: draws at or above it win for the player.
	uc, repo := newTestUseCase(&scriptedRand{floats: []float64{0.9}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Coinflip("u1", 100)
	assert.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, int64(200), result.Payout)
	assert.Equal(t, int64(600), result.NewBalance)

	account, _ := repo.Get("u1")
	assert.Equal(t, int64(600), account.Balance)
	assert.Equal(t, int64(200), account.TotalWon)
	assert.Equal(t, int64(0), account.TotalLost)
}

func TestCoinflipLoss(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{floats: []float64{0.1}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Coinflip("u1", 100)
	assert.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, int64(0), result.Payout)
	assert.Equal(t, int64(400), result.NewBalance)

	account, _ := repo.Get("u1")
	assert.Equal(t, int64(0), account.TotalWon)
	assert.Equal(t, int64(100), account.TotalLost)
}

func TestDicePlayerWins(t *testing.T) {
	// Player rolls 5, house rolls 2.
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{4, 1}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Dice("u1", 50)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.PlayerRoll)
	assert.Equal(t, 2, result.HouseRoll)
	assert.True(t, result.Won)
	assert.Equal(t, int64(100), result.Payout)
	assert.Equal(t, int64(550), result.NewBalance)
}

func TestDiceHouseRerollsTies(t *testing.T) {
	// Player 3, house 3 then 3 again, finally 6. Player loses.
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{2, 2, 2, 5}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Dice("u1", 50)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.PlayerRoll)
	assert.Equal(t, 6, result.HouseRoll)
	assert.NotEqual(t, result.PlayerRoll, result.HouseRoll)
	assert.False(t, result.Won)
	assert.Equal(t, int64(450), result.NewBalance)
}

func TestDiceDuel(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{5, 2}}, time.Minute)
	fundAccount(t, repo, "u1", 500)
	fundAccount(t, repo, "u2", 300)

	result, err := uc.DiceDuel("u1", "u2", 100)
	assert.NoError(t, err)
	assert.Equal(t, 6, result.UserRoll)
	assert.Equal(t, 3, result.OpponentRoll)
	assert.Equal(t, "u1", result.WinnerID)
	assert.False(t, result.Tie)
	assert.Equal(t, int64(600), result.UserBalance)
	assert.Equal(t, int64(200), result.OpponentBalance)

	// Zero sum: the pot moves, it is never created or destroyed.
	a1, _ := repo.Get("u1")
	a2, _ := repo.Get("u2")
	assert.Equal(t, int64(800), a1.Balance+a2.Balance)
	assert.Equal(t, int64(100), a1.TotalWon)
	assert.Equal(t, int64(100), a2.TotalLost)
}

func TestDiceDuelTie(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{3, 3}}, time.Minute)
	fundAccount(t, repo, "u1", 500)
	fundAccount(t, repo, "u2", 300)

	result, err := uc.DiceDuel("u1", "u2", 100)
	assert.NoError(t, err)
	assert.True(t, result.Tie)
	assert.Empty(t, result.WinnerID)
	assert.Equal(t, int64(500), result.UserBalance)
	assert.Equal(t, int64(300), result.OpponentBalance)
}

func TestDiceDuelSelf(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	_, err := uc.DiceDuel("u1", "u1", 100)
	assert.True(t, domain.IsCode(err, domain.ErrCodeValidation))
}

func TestDiceDuelOpponentBroke(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{5, 2}}, time.Minute)
	fundAccount(t, repo, "u1", 500)
	fundAccount(t, repo, "u2", 20)

	_, err := uc.DiceDuel("u1", "u2", 100)
	assert.True(t, domain.IsCode(err, domain.ErrCodeInsufficientFunds))

	// Neither side settles when validation fails.
	a1, _ := repo.Get("u1")
	assert.Equal(t, int64(500), a1.Balance)
}

func TestSlotsTriple(t *testing.T) {
	// All three reels land on symbol index 2.
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{2, 2, 2}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Slots("u1", 100)
	assert.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, domain.SlotsTripleMultiplier, result.Multiplier)
	assert.Equal(t, int64(500), result.Payout)
	assert.Equal(t, int64(900), result.NewBalance)

	account, _ := repo.Get("u1")
	assert.Equal(t, int64(500), account.TotalWon)
}

func TestSlotsPair(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{0, 0, 3}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Slots("u1", 100)
	assert.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, domain.SlotsPairMultiplier, result.Multiplier)
	assert.Equal(t, int64(200), result.Payout)
	assert.Equal(t, int64(600), result.NewBalance)
}

func TestSlotsLoss(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{ints: []int{0, 1, 2}}, time.Minute)
	fundAccount(t, repo, "u1", 500)

	result, err := uc.Slots("u1", 100)
	assert.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, int64(0), result.Payout)
	assert.Equal(t, int64(400), result.NewBalance)
}

func TestSlotsMultiplierGrading(t *testing.T) {
	assert.Equal(t, domain.SlotsTripleMultiplier, slotsMultiplier([]string{"🍒", "🍒", "🍒"}))
	assert.Equal(t, domain.SlotsPairMultiplier, slotsMultiplier([]string{"🍒", "🍋", "🍒"}))
	assert.Equal(t, int64(0), slotsMultiplier([]string{"🍒", "🍋", "🍇"}))
}
