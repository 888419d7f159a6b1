package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/dkazmin/casinobot/internal/infrastructure/store"
	"go.uber.org/fx"
)

const (
	defaultLedgerPath    = "./data/ledger.json"
	defaultFlushInterval = 30 * time.Second
)

// InitLedgerStore creates the configured ledger backend
func (a *application) InitLedgerStore(log *logger.Logger) (domain.LedgerStore, error) {
	cfg := a.config.Store

	switch cfg.Backend {
	case "", "file":
		path := cfg.Path
		if path == "" {
			path = defaultLedgerPath
		}
		interval := cfg.FlushInterval
		if interval <= 0 {
			interval = defaultFlushInterval
		}
		return store.NewFileStore(path, interval, log)
	case "redis":
		return store.NewRedisStore(context.Background(), store.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		}, log)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// RegisterStore binds the ledger store, and the remote backup flusher when
// configured, to the fx lifecycle.
func (a *application) RegisterStore(lc fx.Lifecycle, ledger domain.LedgerStore, log *logger.Logger) {
	var flusher *store.BackupFlusher
	backup := a.config.Store.Backup
	if backup.URL != "" {
		if source, ok := ledger.(store.SnapshotProvider); ok {
			interval := backup.Interval
			if interval <= 0 {
				interval = 5 * time.Minute
			}
			flusher = store.NewBackupFlusher(source, backup.URL, backup.APIKey, interval, log)
		} else {
			log.Warn("Backup configured but store backend does not provide snapshots")
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if flusher != nil {
				flusher.Start()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if flusher != nil {
				flusher.Stop()
			}
			return ledger.Close(ctx)
		},
	})
}
