// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint of SCAN and the largest UNLINK batch.
const scanBatch = 500

// RedisStore keeps entries in Redis, shared by every instance of the
// service, so an invalidation on one instance is seen by all.
type RedisStore struct {
	client *redis.Client
	prefix string
	closed atomic.Bool
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	// URL is the connection URL, e.g. redis://localhost:6379/0.
	URL string

	// Prefix is prepended to every key.
	Prefix string

	// PoolSize overrides the connection pool size when positive.
	PoolSize int

	// DialTimeout bounds connecting and the initial ping.
	DialTimeout time.Duration

	// OpTimeout bounds each read and write.
	OpTimeout time.Duration
}

// DefaultRedisOptions returns the options used by NewMenuCache.
func DefaultRedisOptions() RedisOptions {
	return RedisOptions{
		Prefix:      "ocms:",
		PoolSize:    10,
		DialTimeout: 5 * time.Second,
		OpTimeout:   3 * time.Second,
	}
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		return nil, errors.New("redis URL is required")
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}
	if opts.OpTimeout > 0 {
		redisOpts.ReadTimeout = opts.OpTimeout
		redisOpts.WriteTimeout = opts.OpTimeout
	}

	client := redis.NewClient(redisOpts)

	timeout := redisOpts.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisStore{client: client, prefix: opts.Prefix}, nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, ErrClosed
	}
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// DeleteByPrefix implements Store. Keys are found with SCAN and removed
// with UNLINK batch by batch, so a large flush does not block Redis.
func (s *RedisStore) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	removed := 0
	err := s.scan(ctx, s.prefix+prefix+"*", func(keys []string) error {
		n, err := s.client.Unlink(ctx, keys...).Result()
		removed += int(n)
		return err
	})
	return removed, err
}

// Len implements Store. It counts the keys under the store prefix.
func (s *RedisStore) Len(ctx context.Context) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	count := 0
	err := s.scan(ctx, s.prefix+"*", func(keys []string) error {
		count += len(keys)
		return nil
	})
	return count, err
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return s.client.Ping(ctx).Err()
}

// Close closes the connection pool.
func (s *RedisStore) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		return s.client.Close()
	}
	return nil
}

// scan calls fn with every non-empty batch of keys matching pattern.
func (s *RedisStore) scan(ctx context.Context, pattern string, fn func(keys []string) error) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := fn(keys); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

var _ Store = (*RedisStore)(nil)
