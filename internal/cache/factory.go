// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
)

// Menu cache backends.
const (
	TypeSQL    = "sql"
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

// Config selects and configures the menu cache backend.
type Config struct {
	// Type is the backend: "sql", "memory" or "redis".
	Type string

	// RedisURL is the Redis connection URL (only for redis type)
	// Example: redis://localhost:6379/0
	RedisURL string

	// Prefix is the key prefix for Redis (only for redis type)
	Prefix string

	// FallbackToMemory uses a memory cache when Redis is unreachable.
	FallbackToMemory bool
}

// NewMenuCache creates the configured menu cache. db is only used by the
// sql backend.
func NewMenuCache(cfg Config, db *sql.DB, logger *slog.Logger) (MenuCache, error) {
	switch cfg.Type {
	case "", TypeSQL:
		if db == nil {
			return nil, fmt.Errorf("sql menu cache requires a database")
		}
		logger.Info("using sql menu cache")
		return NewSQLMenuCache(db), nil

	case TypeMemory:
		logger.Info("using memory menu cache")
		return newMemoryMenuCache(), nil

	case TypeRedis:
		opts := DefaultRedisOptions()
		opts.URL = cfg.RedisURL
		if cfg.Prefix != "" {
			opts.Prefix = cfg.Prefix
		}
		redisStore, err := NewRedisStore(opts)
		if err != nil {
			if !cfg.FallbackToMemory {
				return nil, fmt.Errorf("creating redis menu cache: %w", err)
			}
			logger.Warn("redis unavailable, falling back to memory menu cache",
				"url", SanitizeRedisURL(cfg.RedisURL),
				"error", err,
			)
			return newMemoryMenuCache(), nil
		}
		logger.Info("using redis menu cache", "url", SanitizeRedisURL(cfg.RedisURL))
		return NewKVMenuCache(redisStore, TypeRedis), nil

	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

func newMemoryMenuCache() *KVMenuCache {
	return NewKVMenuCache(NewMemoryStore(), TypeMemory)
}

// SanitizeRedisURL masks the password of a Redis URL for logging.
func SanitizeRedisURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "[invalid URL]"
	}
	if u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
	}
	return u.String()
}
