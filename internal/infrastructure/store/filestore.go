package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// FileStore is a JSON-file ledger backend. All reads and writes hit an
// in-memory document cache; a background flusher persists dirty state on
// an interval, so Set is never synchronously durable. The cache may
// therefore run ahead of the file between flushes.
type FileStore struct {
	path          string
	flushInterval time.Duration
	logger        *logger.Logger

	mu    sync.RWMutex
	docs  map[string]json.RawMessage
	dirty bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFileStore loads the ledger file (or starts empty if absent) and
// starts the background flusher.
func NewFileStore(path string, flushInterval time.Duration, log *logger.Logger) (*FileStore, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &FileStore{
		path:          path,
		flushInterval: flushInterval,
		logger:        log,
		docs:          make(map[string]json.RawMessage),
		ctx:           ctx,
		cancel:        cancel,
	}

	if err := s.load(); err != nil {
		cancel()
		return nil, err
	}

	s.wg.Add(1)
	go s.flushLoop()

	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Info("Ledger file absent, starting empty", zap.String("path", s.path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read ledger file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.docs); err != nil {
		return fmt.Errorf("failed to parse ledger file %s: %w", s.path, err)
	}

	s.logger.Info("Ledger file loaded", zap.String("path", s.path), zap.Int("documents", len(s.docs)))
	return nil
}

// Get unmarshals the document at key into out. Absent keys return false
// and leave out untouched.
func (s *FileStore) Get(_ context.Context, key string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

// Set stores the document and marks the cache dirty for the next flush
func (s *FileStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	s.mu.Lock()
	s.docs[key] = raw
	s.dirty = true
	s.mu.Unlock()
	return nil
}

// Flush writes the cache to disk if it has changed since the last flush
func (s *FileStore) Flush(_ context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	data, err := json.MarshalIndent(s.docs, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	s.dirty = false
	s.mu.Unlock()

	if err := s.writeFile(data); err != nil {
		// The cache still holds unpersisted state; re-mark it so the next
		// flush retries instead of reporting a clean cache.
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}

// writeFile writes via a temp file and rename so a crash mid-write never
// truncates the ledger.
func (s *FileStore) writeFile(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

// Snapshot returns the current cache serialized as one JSON object,
// for the remote backup flusher.
func (s *FileStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.docs)
}

func (s *FileStore) flushLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Flush(s.ctx); err != nil {
				s.logger.Error("Ledger flush failed", zap.Error(err))
			}
		case <-s.ctx.Done():
			return
		}
	}
}

// Close stops the flusher and performs a final synchronous flush
func (s *FileStore) Close(ctx context.Context) error {
	s.cancel()
	s.wg.Wait()
	return s.Flush(ctx)
}
