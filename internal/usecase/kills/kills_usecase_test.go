package kills

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
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

func newTestUseCase(authorized ...string) *KillUseCase {
	log := logger.NewLogger("test", "error")
	repo := repository.NewKillRepository(&memStore{docs: make(map[string]json.RawMessage)})
	return NewKillUseCase(repo, log, authorized)
}

func TestAddKillsAuthorization(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("random", "Shadow", 1, 0, "")
	assert.True(t, domain.IsCode(err, domain.ErrCodeNotAuthorized))

	_, err = uc.AddKills("admin", "Shadow", 1, 0, "")
	assert.NoError(t, err)
}

func TestAddKillsTeamHalvedCeiling(t *testing.T) {
	tests := []struct {
		name     string
		team     int64
		expected int64
	}{
		{"One_Rounds_Up", 1, 1},
		{"Two_Halves", 2, 1},
		{"Three_Rounds_Up", 3, 2},
		{"Four_Halves", 4, 2},
		{"Five_Rounds_Up", 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase("admin")
			stats, err := uc.AddKills("admin", "Shadow", 0, tt.team, "2026-08")
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, stats.Team)
		})
	}
}

func TestAddKillsAccumulates(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("admin", "Shadow", 3, 1, "2026-08")
	assert.NoError(t, err)
	stats, err := uc.AddKills("admin", "Shadow", 2, 3, "2026-08")
	assert.NoError(t, err)

	assert.Equal(t, int64(5), stats.Regular)
	assert.Equal(t, int64(3), stats.Team)
}

func TestAddKillsValidation(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("admin", "", 1, 0, "")
	assert.True(t, domain.IsCode(err, domain.ErrCodeValidation))

	_, err = uc.AddKills("admin", "Shadow", -1, 0, "")
	assert.True(t, domain.IsCode(err, domain.ErrCodeValidation))

	_, err = uc.AddKills("admin", "Shadow", 0, 0, "")
	assert.True(t, domain.IsCode(err, domain.ErrCodeValidation))
}

func TestLeaderboardSortedAndCapped(t *testing.T) {
	uc := newTestUseCase("admin")

	for i := 1; i <= domain.LeaderboardSize+3; i++ {
		_, err := uc.AddKills("admin", fmt.Sprintf("player%02d", i), int64(i), 0, "2026-08")
		assert.NoError(t, err)
	}

	entries, err := uc.Leaderboard("2026-08")
	assert.NoError(t, err)
	assert.Len(t, entries, domain.LeaderboardSize)

	// Highest total first, strictly non-increasing.
	assert.Equal(t, "player13", entries[0].Player)
	assert.Equal(t, int64(13), entries[0].Total)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Total, entries[i].Total)
	}
}

func TestLeaderboardTiesBreakAlphabetically(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("admin", "zeta", 5, 0, "2026-08")
	assert.NoError(t, err)
	_, err = uc.AddKills("admin", "alpha", 5, 0, "2026-08")
	assert.NoError(t, err)

	entries, err := uc.Leaderboard("2026-08")
	assert.NoError(t, err)
	assert.Equal(t, "alpha", entries[0].Player)
	assert.Equal(t, "zeta", entries[1].Player)
}

func TestLeaderboardEmptyMonth(t *testing.T) {
	uc := newTestUseCase("admin")

	entries, err := uc.Leaderboard("1999-01")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMonthsAreIndependent(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("admin", "Shadow", 5, 0, "2026-07")
	assert.NoError(t, err)
	_, err = uc.AddKills("admin", "Shadow", 2, 0, "2026-08")
	assert.NoError(t, err)

	july, err := uc.PlayerStats("Shadow", "2026-07")
	assert.NoError(t, err)
	august, err := uc.PlayerStats("Shadow", "2026-08")
	assert.NoError(t, err)

	assert.Equal(t, int64(5), july.Regular)
	assert.Equal(t, int64(2), august.Regular)
}

func TestEmptyMonthDefaultsToCurrent(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("admin", "Shadow", 4, 0, "")
	assert.NoError(t, err)

	entry, err := uc.PlayerStats("Shadow", domain.MonthKey(time.Now()))
	assert.NoError(t, err)
	assert.Equal(t, int64(4), entry.Regular)
}

func TestPlayerStatsUnknownPlayer(t *testing.T) {
	uc := newTestUseCase("admin")

	entry, err := uc.PlayerStats("Nobody", "2026-08")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), entry.Total)
}

func TestResetMonth(t *testing.T) {
	uc := newTestUseCase("admin")

	_, err := uc.AddKills("admin", "Shadow", 5, 0, "2026-08")
	assert.NoError(t, err)

	assert.True(t, domain.IsCode(uc.ResetMonth("random", "2026-08"), domain.ErrCodeNotAuthorized))
	assert.NoError(t, uc.ResetMonth("admin", "2026-08"))

	entries, err := uc.Leaderboard("2026-08")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
