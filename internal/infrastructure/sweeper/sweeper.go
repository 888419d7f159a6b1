package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Sweeper periodically tears down abandoned game sessions
type Sweeper struct {
	sessionSweeper domain.SessionSweeper
	logger         *logger.Logger
	interval       time.Duration
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
	isRunning      bool
	mu             sync.Mutex
}

// NewSweeper creates a new session sweeper
func NewSweeper(sessionSweeper domain.SessionSweeper, log *logger.Logger, interval time.Duration) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		sessionSweeper: sessionSweeper,
		logger:         log,
		interval:       interval,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start begins the periodic sweep
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		s.logger.Warn("Session sweeper is already running")
		return
	}

	s.isRunning = true
	s.wg.Add(1)
	go s.run()

	s.logger.Info("Session sweeper started", zap.Duration("interval", s.interval))
}

// Stop halts the sweeper and waits for an in-flight pass to finish
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.isRunning = false

	s.logger.Info("Session sweeper stopped")
}

func (s *Sweeper) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			report, err := s.sessionSweeper.SweepSessions()
			if err != nil {
				s.logger.Error("Session sweep failed", zap.Error(err))
				continue
			}
			if !report.Empty() {
				s.logger.Debug("Session sweep pass",
					zap.Int("rouletteExpired", report.RouletteExpired),
					zap.Int("blackjackExpired", report.BlackjackExpired))
			}
		}
	}
}
