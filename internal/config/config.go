// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/robfig/cron/v3"

	"github.com/olegiv/ocms-menu/internal/cache"
	"github.com/olegiv/ocms-menu/internal/obfuscate"
	"github.com/olegiv/ocms-menu/internal/store"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver      string `env:"OCMS_DB_DRIVER" envDefault:"sqlite"`
	DBPath        string `env:"OCMS_DB_PATH" envDefault:"./data/ocms-menu.db"`
	DBDSN         string `env:"OCMS_DB_DSN"` // go-sql-driver DSN, mysql only
	SessionSecret string `env:"OCMS_SESSION_SECRET,required"`
	ServerHost    string `env:"OCMS_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"OCMS_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"OCMS_ENV" envDefault:"development"`
	LogLevel      string `env:"OCMS_LOG_LEVEL" envDefault:"info"`

	// Menu cache
	CacheType          string `env:"OCMS_CACHE_TYPE" envDefault:"sql"`
	RedisURL           string `env:"OCMS_REDIS_URL"`
	CachePrefix        string `env:"OCMS_CACHE_PREFIX" envDefault:"ocms:"`
	CacheFallback      bool   `env:"OCMS_CACHE_FALLBACK" envDefault:"true"` // Use memory when Redis is down
	CacheFlushSchedule string `env:"OCMS_CACHE_FLUSH_SCHEDULE"`             // Cron expression, empty disables

	// Id obfuscation in rendered markup
	Obfuscator    string `env:"OCMS_OBFUSCATOR" envDefault:"development"`
	ObfuscatorKey string `env:"OCMS_OBFUSCATOR_KEY"`

	// Tenant and viewer defaults
	CompanyID          int64 `env:"OCMS_COMPANY_ID" envDefault:"1"`
	DefaultLanguageID  int64 `env:"OCMS_DEFAULT_LANGUAGE_ID" envDefault:"1"`
	AnonymousProfileID int64 `env:"OCMS_ANONYMOUS_PROFILE_ID" envDefault:"1"`

	// Admin endpoints are disabled when the token is empty.
	AdminToken string `env:"OCMS_ADMIN_TOKEN"`

	// Per client rate limit on menu endpoints, 0 disables
	RateLimitRPS   float64 `env:"OCMS_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"OCMS_RATE_LIMIT_BURST" envDefault:"40"`

	DoSeed bool `env:"OCMS_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// DSN returns the data source name for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == store.DriverMySQL {
		return c.DBDSN
	}
	return c.DBPath
}

// CacheConfig returns the menu cache configuration.
func (c Config) CacheConfig() cache.Config {
	return cache.Config{
		Type:             c.CacheType,
		RedisURL:         c.RedisURL,
		Prefix:           c.CachePrefix,
		FallbackToMemory: c.CacheFallback,
	}
}

// AdminEnabled returns true if the admin endpoints are enabled.
func (c Config) AdminEnabled() bool {
	return c.AdminToken != ""
}

// SlogLevel returns the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// MinAdminTokenLength is the minimum length of a non-empty admin token.
const MinAdminTokenLength = 16

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("OCMS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}
	if !cfg.IsDevelopment() && cfg.Obfuscator == obfuscate.KindDevelopment {
		slog.Warn("OCMS_OBFUSCATOR is development outside development mode; database ids are exposed in menus")
	}

	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if len(c.SessionSecret) < MinSessionSecretLength {
		errs = append(errs, fmt.Errorf("OCMS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(c.SessionSecret)))
	}
	for _, weak := range knownWeakSecrets {
		if c.SessionSecret == weak {
			errs = append(errs, errors.New("OCMS_SESSION_SECRET is a known default value and must not be used"))
		}
	}

	switch c.DBDriver {
	case store.DriverSQLite:
	case store.DriverMySQL:
		if c.DBDSN == "" {
			errs = append(errs, errors.New("OCMS_DB_DSN is required for the mysql driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("OCMS_DB_DRIVER %q is not supported", c.DBDriver))
	}

	switch c.CacheType {
	case cache.TypeSQL, cache.TypeMemory:
	case cache.TypeRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("OCMS_REDIS_URL is required for the redis cache"))
		}
	default:
		errs = append(errs, fmt.Errorf("OCMS_CACHE_TYPE %q is not supported", c.CacheType))
	}

	if c.CacheFlushSchedule != "" {
		if _, err := cron.ParseStandard(c.CacheFlushSchedule); err != nil {
			errs = append(errs, fmt.Errorf("OCMS_CACHE_FLUSH_SCHEDULE: %w", err))
		}
	}

	switch c.Obfuscator {
	case obfuscate.KindDevelopment:
	case obfuscate.KindSqids:
		if c.ObfuscatorKey == "" {
			errs = append(errs, errors.New("OCMS_OBFUSCATOR_KEY is required for the sqids obfuscator"))
		}
	default:
		errs = append(errs, fmt.Errorf("OCMS_OBFUSCATOR %q is not supported", c.Obfuscator))
	}

	if c.CompanyID <= 0 || c.DefaultLanguageID <= 0 || c.AnonymousProfileID <= 0 {
		errs = append(errs, errors.New("OCMS_COMPANY_ID, OCMS_DEFAULT_LANGUAGE_ID and OCMS_ANONYMOUS_PROFILE_ID must be positive"))
	}

	if c.AdminToken != "" && len(c.AdminToken) < MinAdminTokenLength {
		errs = append(errs, fmt.Errorf("OCMS_ADMIN_TOKEN must be at least %d bytes long", MinAdminTokenLength))
	}

	if c.RateLimitRPS < 0 || (c.RateLimitRPS > 0 && c.RateLimitBurst < 1) {
		errs = append(errs, errors.New("OCMS_RATE_LIMIT_RPS must not be negative and OCMS_RATE_LIMIT_BURST must be at least 1"))
	}

	return errors.Join(errs...)
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
