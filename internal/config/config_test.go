// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"os"
	"testing"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func validConfig() Config {
	return Config{
		DBDriver:           "sqlite",
		SessionSecret:      testSecret,
		CacheType:          "sql",
		Obfuscator:         "development",
		CompanyID:          1,
		DefaultLanguageID:  1,
		AnonymousProfileID: 1,
		RateLimitRPS:       20,
		RateLimitBurst:     40,
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	setEnv(t, "OCMS_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, "sqlite")
	}
	if cfg.DSN() != "./data/ocms-menu.db" {
		t.Errorf("DSN() = %q, want %q", cfg.DSN(), "./data/ocms-menu.db")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
	if cfg.CacheType != "sql" {
		t.Errorf("CacheType = %q, want %q", cfg.CacheType, "sql")
	}
	if cfg.CachePrefix != "ocms:" {
		t.Errorf("CachePrefix = %q, want %q", cfg.CachePrefix, "ocms:")
	}
	if cfg.Obfuscator != "development" {
		t.Errorf("Obfuscator = %q, want %q", cfg.Obfuscator, "development")
	}
	if cfg.CompanyID != 1 || cfg.DefaultLanguageID != 1 || cfg.AnonymousProfileID != 1 {
		t.Errorf("viewer defaults = %d/%d/%d, want 1/1/1",
			cfg.CompanyID, cfg.DefaultLanguageID, cfg.AnonymousProfileID)
	}
	if cfg.AdminEnabled() {
		t.Error("AdminEnabled() = true, want false")
	}
	if cfg.RateLimitRPS != 20 || cfg.RateLimitBurst != 40 {
		t.Errorf("rate limit = %v/%d, want 20/40", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "OCMS_SESSION_SECRET", testSecret)
	setEnv(t, "OCMS_DB_DRIVER", "mysql")
	setEnv(t, "OCMS_DB_DSN", "menu:secret@tcp(db:3306)/menu?parseTime=true")
	setEnv(t, "OCMS_CACHE_TYPE", "redis")
	setEnv(t, "OCMS_REDIS_URL", "redis://cache:6379/0")
	setEnv(t, "OCMS_CACHE_FLUSH_SCHEDULE", "0 3 * * *")
	setEnv(t, "OCMS_OBFUSCATOR", "sqids")
	setEnv(t, "OCMS_OBFUSCATOR_KEY", "menu-key")
	setEnv(t, "OCMS_COMPANY_ID", "7")
	setEnv(t, "OCMS_ADMIN_TOKEN", "0123456789abcdef0123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DSN() != "menu:secret@tcp(db:3306)/menu?parseTime=true" {
		t.Errorf("DSN() = %q", cfg.DSN())
	}
	cc := cfg.CacheConfig()
	if cc.Type != "redis" || cc.RedisURL != "redis://cache:6379/0" || !cc.FallbackToMemory {
		t.Errorf("CacheConfig() = %+v", cc)
	}
	if cfg.CompanyID != 7 {
		t.Errorf("CompanyID = %d, want 7", cfg.CompanyID)
	}
	if !cfg.AdminEnabled() {
		t.Error("AdminEnabled() = false, want true")
	}
}

func TestLoad_RequiredSessionSecret(t *testing.T) {
	os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when OCMS_SESSION_SECRET is not set")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"short secret", func(c *Config) { c.SessionSecret = "1234567890123456789012345678901" }, false},
		{"weak secret", func(c *Config) { c.SessionSecret = "change-me-to-32-byte-secret-key!" }, false},
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }, false},
		{"mysql without dsn", func(c *Config) { c.DBDriver = "mysql" }, false},
		{"unknown cache", func(c *Config) { c.CacheType = "disk" }, false},
		{"redis without url", func(c *Config) { c.CacheType = "redis" }, false},
		{"memory cache", func(c *Config) { c.CacheType = "memory" }, true},
		{"bad schedule", func(c *Config) { c.CacheFlushSchedule = "every night" }, false},
		{"good schedule", func(c *Config) { c.CacheFlushSchedule = "@hourly" }, true},
		{"sqids without key", func(c *Config) { c.Obfuscator = "sqids" }, false},
		{"unknown obfuscator", func(c *Config) { c.Obfuscator = "base64" }, false},
		{"zero company", func(c *Config) { c.CompanyID = 0 }, false},
		{"short admin token", func(c *Config) { c.AdminToken = "short" }, false},
		{"negative rate", func(c *Config) { c.RateLimitRPS = -1 }, false},
		{"rate without burst", func(c *Config) { c.RateLimitBurst = 0 }, false},
		{"rate limit disabled", func(c *Config) { c.RateLimitRPS, c.RateLimitBurst = 0, 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Config{Env: tt.env}
			if got := cfg.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{LogLevel: tt.level}
			if got := cfg.SlogLevel(); got != tt.want {
				t.Errorf("SlogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}
