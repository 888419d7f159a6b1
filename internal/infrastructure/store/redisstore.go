package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dkazmin/casinobot/internal/infrastructure/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore is a redis-backed ledger. Documents are stored as JSON blobs
// under a key prefix. Writes land on the server immediately, so Flush is
// a no-op.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// RedisConfig holds connection settings for the redis ledger backend
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisStore connects to redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg RedisConfig, log *logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "casinobot"
	}

	log.Info("Redis ledger connected", zap.String("addr", cfg.Addr), zap.String("prefix", prefix))
	return &RedisStore{client: client, prefix: prefix, logger: log}, nil
}

func (s *RedisStore) key(doc string) string {
	return fmt.Sprintf("%s:%s", s.prefix, doc)
}

// Get unmarshals the document at key into out. Absent keys return false.
func (s *RedisStore) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

// Set stores the document as a JSON blob
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}

// Flush is a no-op; redis writes are already remote
func (s *RedisStore) Flush(context.Context) error {
	return nil
}

// Close closes the redis connection
func (s *RedisStore) Close(context.Context) error {
	return s.client.Close()
}
