package account

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

type memStore struct {
	docs map[string]json.RawMessage
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

func newTestUseCase() (*AccountUseCase, domain.AccountRepository) {
	log := logger.NewLogger("test", "error")
	repo := repository.NewAccountRepository(&memStore{docs: make(map[string]json.RawMessage)})
	return NewAccountUseCase(repo, lock.NewUserLockManager(log), log), repo
}

func TestGetAccountCreatesWithStartingBalance(t *testing.T) {
	uc, _ := newTestUseCase()

	account, err := uc.GetAccount("fresh")
	assert.NoError(t, err)
	assert.Equal(t, "fresh", account.UserID)
	assert.Equal(t, domain.StartingBalance, account.Balance)
	assert.Equal(t, int64(0), account.TotalWon)
	assert.Equal(t, int64(0), account.TotalLost)
}

func TestGetAccountIsIdempotent(t *testing.T) {
	uc, repo := newTestUseCase()

	first, err := uc.GetAccount("u1")
	assert.NoError(t, err)
	first.ApplyDelta(100, 0, 0)
	assert.NoError(t, repo.Save(first))

	again, err := uc.GetAccount("u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(600), again.Balance)
}

func TestClaimDaily(t *testing.T) {
	uc, _ := newTestUseCase()

	result, err := uc.ClaimDaily("u1")
	assert.NoError(t, err)
	assert.Equal(t, domain.DailyReward, result.Reward)
	assert.Equal(t, domain.StartingBalance+domain.DailyReward, result.NewBalance)
	assert.True(t, result.NextClaim.After(time.Now()))
}

func TestClaimDailyRejectsSecondClaim(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.ClaimDaily("u1")
	assert.NoError(t, err)

	_, err = uc.ClaimDaily("u1")
	assert.True(t, domain.IsCode(err, domain.ErrCodeValidation))

	account, err := repo.Get("u1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StartingBalance+domain.DailyReward, account.Balance)
}

func TestClaimDailyAfterInterval(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.ClaimDaily("u1")
	assert.NoError(t, err)

	// Backdate the last claim past the 24h interval.
	account, err := repo.Get("u1")
	assert.NoError(t, err)
	account.LastDailyClaim = time.Now().Add(-25 * time.Hour)
	assert.NoError(t, repo.Save(account))

	result, err := uc.ClaimDaily("u1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StartingBalance+2*domain.DailyReward, result.NewBalance)
}
