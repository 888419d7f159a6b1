package repository

import (
	"sync"

	"github.com/dkazmin/casinobot/internal/domain"
)

// SessionRepository is the in-memory registry of active roulette sessions
// and blackjack games, keyed by user id. It enforces the at-most-one
// session of each kind per user.
type SessionRepository struct {
	mu        sync.RWMutex
	roulette  map[string]*domain.RouletteSession
	blackjack map[string]*domain.BlackjackGame
}

// NewSessionRepository creates an empty session registry
func NewSessionRepository() domain.SessionRepository {
	return &SessionRepository{
		roulette:  make(map[string]*domain.RouletteSession),
		blackjack: make(map[string]*domain.BlackjackGame),
	}
}

// CreateRoulette registers a table session; a second session for the same
// user is a conflict.
func (r *SessionRepository) CreateRoulette(session *domain.RouletteSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.roulette[session.UserID]; exists {
		return domain.NewSessionConflictError("You are already at the roulette table")
	}
	r.roulette[session.UserID] = session
	return nil
}

// GetRoulette returns the user's table session, if any
func (r *SessionRepository) GetRoulette(userID string) (*domain.RouletteSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.roulette[userID]
	return session, ok
}

// DeleteRoulette removes the user's table session
func (r *SessionRepository) DeleteRoulette(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roulette, userID)
}

// ListRoulette returns a snapshot of all table sessions for the sweep
func (r *SessionRepository) ListRoulette() []*domain.RouletteSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*domain.RouletteSession, 0, len(r.roulette))
	for _, session := range r.roulette {
		sessions = append(sessions, session)
	}
	return sessions
}

// CreateBlackjack registers a game; a second active game for the same
// user is a conflict.
func (r *SessionRepository) CreateBlackjack(game *domain.BlackjackGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.blackjack[game.UserID]; exists && !existing.Finished {
		return domain.NewSessionConflictError("You already have a blackjack game in progress")
	}
	r.blackjack[game.UserID] = game
	return nil
}

// GetBlackjack returns the user's game, if any
func (r *SessionRepository) GetBlackjack(userID string) (*domain.BlackjackGame, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.blackjack[userID]
	return game, ok
}

// DeleteBlackjack removes the user's game
func (r *SessionRepository) DeleteBlackjack(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blackjack, userID)
}

// ListBlackjack returns a snapshot of all games for the sweep
func (r *SessionRepository) ListBlackjack() []*domain.BlackjackGame {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]*domain.BlackjackGame, 0, len(r.blackjack))
	for _, game := range r.blackjack {
		games = append(games, game)
	}
	return games
}
