package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// SnapshotProvider yields a serialized copy of the ledger for backup
type SnapshotProvider interface {
	Snapshot() ([]byte, error)
}

// BackupFlusher periodically posts ledger snapshots to a remote endpoint.
// Failures are logged and retried on the next interval; a backup outage
// never blocks gameplay.
type BackupFlusher struct {
	source   SnapshotProvider
	url      string
	apiKey   string
	interval time.Duration
	client   *retryablehttp.Client
	logger   *logger.Logger

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewBackupFlusher creates a backup flusher for the given endpoint
func NewBackupFlusher(source SnapshotProvider, url, apiKey string, interval time.Duration, log *logger.Logger) *BackupFlusher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil

	ctx, cancel := context.WithCancel(context.Background())
	return &BackupFlusher{
		source:   source,
		url:      url,
		apiKey:   apiKey,
		interval: interval,
		client:   client,
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins background snapshot uploads
func (f *BackupFlusher) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.isRunning {
		f.logger.Warn("Backup flusher already running")
		return
	}
	f.isRunning = true

	f.wg.Add(1)
	go f.run()

	f.logger.Info("Backup flusher started", zap.String("url", f.url), zap.Duration("interval", f.interval))
}

// Stop halts background uploads and waits for the worker to exit
func (f *BackupFlusher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.isRunning {
		return
	}
	f.isRunning = false

	f.cancel()
	f.wg.Wait()
	f.logger.Info("Backup flusher stopped")
}

func (f *BackupFlusher) run() {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := f.uploadSnapshot(); err != nil {
				f.logger.Error("Ledger backup failed", zap.Error(err))
			}
		case <-f.ctx.Done():
			return
		}
	}
}

func (f *BackupFlusher) uploadSnapshot() error {
	snapshot, err := f.source.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to take ledger snapshot: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(f.ctx, "POST", f.url, bytes.NewReader(snapshot))
	if err != nil {
		return fmt.Errorf("failed to build backup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload ledger snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("backup endpoint returned status %d", resp.StatusCode)
	}

	f.logger.Debug("Ledger snapshot uploaded", zap.Int("bytes", len(snapshot)))
	return nil
}
