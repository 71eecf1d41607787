package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	URL     string
	Prefix  string
	Timeout time.Duration
}

// RedisStore keeps values as plain string keys under a shared prefix.
type RedisStore struct {
	client *redis.Client
	cfg    RedisConfig
}

var _ ValueStore = (*RedisStore)(nil)

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	s := NewRedisStoreWithClient(client, cfg)

	ctx, cancel := s.withTimeout()
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("can not connect with redis : %w", err)
	}

	return s, nil
}

// NewRedisStoreWithClient wraps an existing client (for testing)
func NewRedisStoreWithClient(client *redis.Client, cfg RedisConfig) *RedisStore {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &RedisStore{client: client, cfg: cfg}
}

func (s *RedisStore) key(key string) string {
	if s.cfg.Prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.cfg.Prefix, key)
}

func (s *RedisStore) withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.cfg.Timeout)
}

func (s *RedisStore) Read(key string) (string, error) {
	ctx, cancel := s.withTimeout()
	defer cancel()

	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("redis key '%s': %w", s.key(key), ErrRecordNotFound)
		}
		if errors.Is(err, redis.ErrClosed) {
			return "", ErrStoreClosed
		}
		return "", fmt.Errorf("failed to get '%s': %w", s.key(key), err)
	}

	return value, nil
}

func (s *RedisStore) Write(key, value string) error {
	ctx, cancel := s.withTimeout()
	defer cancel()

	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		if errors.Is(err, redis.ErrClosed) {
			return ErrStoreClosed
		}
		return fmt.Errorf("failed to set '%s': %w", s.key(key), err)
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
