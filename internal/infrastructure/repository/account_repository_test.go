package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/stretchr/testify/assert"
)

type memStore struct {
	docs map[string]json.RawMessage
	sets int
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
	s.sets++
	return nil
}

func (s *memStore) Flush(context.Context) error { return nil }
func (s *memStore) Close(context.Context) error { return nil }

func TestGetOrCreatePersistsNewAccount(t *testing.T) {
	store := newMemStore()
	repo := NewAccountRepository(store)

	account, err := repo.GetOrCreate("u1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StartingBalance, account.Balance)
	assert.Equal(t, 1, store.sets, "new accounts are written immediately")

	// A second call loads the same account without another write.
	again, err := repo.GetOrCreate("u1")
	assert.NoError(t, err)
	assert.Equal(t, account.UserID, again.UserID)
	assert.Equal(t, 1, store.sets)
}

func TestGetAbsentAccount(t *testing.T) {
	repo := NewAccountRepository(newMemStore())

	account, err := repo.Get("ghost")
	assert.NoError(t, err)
	assert.Nil(t, account)
}

func TestSaveAllIsOneWrite(t *testing.T) {
	store := newMemStore()
	repo := NewAccountRepository(store)

	a, err := repo.GetOrCreate("u1")
	assert.NoError(t, err)
	b, err := repo.GetOrCreate("u2")
	assert.NoError(t, err)
	writesBefore := store.sets

	a.ApplyDelta(100, 100, 0)
	b.ApplyDelta(-100, 0, 100)
	assert.NoError(t, repo.SaveAll(a, b))

	assert.Equal(t, writesBefore+1, store.sets, "a duel settlement is a single document write")

	a2, _ := repo.Get("u1")
	b2, _ := repo.Get("u2")
	assert.Equal(t, int64(600), a2.Balance)
	assert.Equal(t, int64(400), b2.Balance)
}

func TestKillRepositoryRoundTrip(t *testing.T) {
	repo := NewKillRepository(newMemStore())

	board, err := repo.GetMonth("2026-08")
	assert.NoError(t, err)
	assert.Empty(t, board)

	board["Shadow"] = &domain.KillStats{Regular: 3, Team: 1}
	assert.NoError(t, repo.SaveMonth("2026-08", board))

	loaded, err := repo.GetMonth("2026-08")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), loaded["Shadow"].Regular)

	// Other months stay empty.
	other, err := repo.GetMonth("2026-09")
	assert.NoError(t, err)
	assert.Empty(t, other)
}
