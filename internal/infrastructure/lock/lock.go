package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// acquireTimeout bounds how long a handler may wait on another handler
// for the same user before giving up.
const acquireTimeout = 5 * time.Second

// UserLockManager serializes balance- and session-mutating operations per
// user id, preserving the read-validate-deduct-persist sequence as atomic
// in a multi-goroutine runtime.
type UserLockManager struct {
	locks  sync.Map // map[string]*sync.Mutex
	logger *logger.Logger
}

// NewUserLockManager creates a new lock manager
func NewUserLockManager(log *logger.Logger) *UserLockManager {
	return &UserLockManager{logger: log}
}

// Lock acquires the lock for the given userID with timeout
func (m *UserLockManager) Lock(ctx context.Context, userID string) error {
	mu := m.getOrCreateMutex(userID)

	// The buffered send always succeeds, so the helper never leaks. When
	// the caller has already given up, abandon drains the channel and
	// releases the mutex the helper eventually won.
	lockChan := make(chan struct{}, 1)
	go func() {
		mu.Lock()
		lockChan <- struct{}{}
	}()
	abandon := func() {
		go func() {
			<-lockChan
			mu.Unlock()
		}()
	}

	select {
	case <-lockChan:
		return nil
	case <-ctx.Done():
		abandon()
		m.logger.Error("Failed to acquire user lock: context cancelled", zap.String("userID", userID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for user %s: %w", userID, ctx.Err())
	case <-time.After(acquireTimeout):
		abandon()
		m.logger.Error("Failed to acquire user lock: timeout", zap.String("userID", userID))
		return fmt.Errorf("failed to acquire lock for user %s: timeout", userID)
	}
}

// LockPair acquires both users' locks in deterministic id order so that
// two concurrent duels can never deadlock.
func (m *UserLockManager) LockPair(ctx context.Context, userA, userB string) error {
	first, second := userA, userB
	if second < first {
		first, second = second, first
	}
	if err := m.Lock(ctx, first); err != nil {
		return err
	}
	if err := m.Lock(ctx, second); err != nil {
		m.Unlock(first)
		return err
	}
	return nil
}

// Unlock releases the lock for the given userID
func (m *UserLockManager) Unlock(userID string) {
	muInterface, ok := m.locks.Load(userID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.String("userID", userID))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

// UnlockPair releases both users' locks
func (m *UserLockManager) UnlockPair(userA, userB string) {
	m.Unlock(userA)
	m.Unlock(userB)
}

// TryLock attempts to acquire a lock without blocking
func (m *UserLockManager) TryLock(userID string) bool {
	return m.getOrCreateMutex(userID).TryLock()
}

func (m *UserLockManager) getOrCreateMutex(userID string) *sync.Mutex {
	mu, ok := m.locks.Load(userID)
	if ok {
		return mu.(*sync.Mutex)
	}

	actual, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
