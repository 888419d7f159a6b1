package casino

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/lock"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/dkazmin/casinobot/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
)

// memStore is an in-memory ledger backend for tests
type memStore struct {
	docs map[string]json.RawMessage
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]json.RawMessage)}
}

func (s *memStore) Get(_ context.Context, key string, out interface{}) (bool, error) {
	raw, ok := s.docs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (s *memStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.docs[key] = raw
	return nil
}

func (s *memStore) Flush(context.Context) error { return nil }
func (s *memStore) Close(context.Context) error { return nil }

// scriptedRand plays back queued values so game outcomes are
// deterministic. Shuffle is a no-op unless a shuffle func is set.
type scriptedRand struct {
	ints    []int
	floats  []float64
	shuffle func(n int, swap func(i, j int))
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	if r.shuffle != nil {
		r.shuffle(n, swap)
	}
}

func newTestUseCase(rng Rand, timeout time.Duration) (*CasinoUseCase, domain.AccountRepository) {
	log := logger.NewLogger("test", "error")
	accountRepo := repository.NewAccountRepository(newMemStore())
	sessionRepo := repository.NewSessionRepository()
	lockManager := lock.NewUserLockManager(log)
	uc := NewCasinoUseCase(accountRepo, sessionRepo, lockManager, log, rng, timeout)
	return uc, accountRepo
}

// fundAccount creates the account and pins its balance
func fundAccount(t *testing.T, repo domain.AccountRepository, userID string, balance int64) *domain.Account {
	t.Helper()
	account, err := repo.GetOrCreate(userID)
	assert.NoError(t, err)
	account.Balance = balance
	assert.NoError(t, repo.Save(account))
	return account
}

func TestValidateBet(t *testing.T) {
	uc, _ := newTestUseCase(&scriptedRand{}, time.Minute)

	tests := []struct {
		name    string
		bet     int64
		maxBet  int64
		wantErr bool
	}{
		{"Below_Minimum", domain.MinBet - 1, domain.MaxBet, true},
		{"At_Minimum", domain.MinBet, domain.MaxBet, false},
		{"At_Maximum", domain.MaxBet, domain.MaxBet, false},
		{"Above_Maximum", domain.MaxBet + 1, domain.MaxBet, true},
		{"Roulette_Maximum", domain.MaxRouletteBet, domain.MaxRouletteBet, false},
		{"Zero", 0, domain.MaxBet, true},
		{"Negative", -50, domain.MaxBet, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateBet(tt.bet, tt.maxBet)
			if tt.wantErr {
				assert.True(t, domain.IsCode(err, domain.ErrCodeValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInsufficientFunds(t *testing.T) {
	uc, repo := newTestUseCase(&scriptedRand{floats: []float64{0.9}}, time.Minute)
	fundAccount(t, repo, "poor", 50)

	_, err := uc.Coinflip("poor", 100)
	assert.True(t, domain.IsCode(err, domain.ErrCodeInsufficientFunds))

	// The failed bet must not touch the balance.
	account, err := repo.Get("poor")
	assert.NoError(t, err)
	assert.Equal(t, int64(50), account.Balance)
}
