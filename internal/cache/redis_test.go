// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/testutil"
)

// skipIfNoRedis skips the test unless OCMS_TEST_REDIS_URL names a server.
func skipIfNoRedis(t *testing.T) string {
	t.Helper()
	url := os.Getenv("OCMS_TEST_REDIS_URL")
	if url == "" {
		t.Skip("Skipping Redis tests: OCMS_TEST_REDIS_URL not set")
	}
	return url
}

func newTestRedisStore(t *testing.T, prefix string) *RedisStore {
	t.Helper()
	opts := DefaultRedisOptions()
	opts.URL = skipIfNoRedis(t)
	opts.Prefix = prefix

	s, err := NewRedisStore(opts)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if _, err := s.DeleteByPrefix(context.Background(), ""); err != nil {
		t.Fatalf("clearing test keys: %v", err)
	}
	return s
}

func TestRedisStore_LoadSave(t *testing.T) {
	s := newTestRedisStore(t, "test-store:")
	ctx := context.Background()

	if err := s.Save(ctx, "k", "v"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(ctx, "k")
	if err != nil || !ok || got != "v" {
		t.Fatalf("Load = %q, %v, %v; want %q", got, ok, err, "v")
	}

	ttl, err := s.client.TTL(ctx, "test-store:k").Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl >= 0 {
		t.Errorf("entry should not expire, got TTL %v", ttl)
	}

	if _, ok, err := s.Load(ctx, "missing"); err != nil || ok {
		t.Errorf("Load(missing) = ok %v, err %v; want miss", ok, err)
	}
}

func TestRedisStore_DeleteByPrefix(t *testing.T) {
	s := newTestRedisStore(t, "test-store:")
	ctx := context.Background()

	_ = s.Save(ctx, "menu:1:2:3:4", "a")
	_ = s.Save(ctx, "menu:1:2:5:4", "b")
	_ = s.Save(ctx, "menu:1:3:3:4", "c")

	removed, err := s.DeleteByPrefix(ctx, "menu:1:2:")
	if err != nil {
		t.Fatalf("DeleteByPrefix: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if n, _ := s.Len(ctx); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
}

func TestRedisMenuCache(t *testing.T) {
	url := skipIfNoRedis(t)

	mc, err := NewMenuCache(Config{Type: TypeRedis, RedisURL: url, Prefix: "test-menu:"}, nil, testutil.TestLoggerSilent())
	if err != nil {
		t.Fatalf("NewMenuCache: %v", err)
	}
	defer func() { _ = mc.Close() }()

	ctx := context.Background()
	key := model.CacheKey{CompanyID: 1, MenuID: 2, LanguageID: 3, ProfileID: 4}
	_ = mc.Flush(ctx, 1)

	if err := mc.Put(ctx, key, "<nav>...</nav>"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	html, ok, err := mc.Get(ctx, key)
	if err != nil || !ok || html != "<nav>...</nav>" {
		t.Errorf("Get = %q, %v, %v", html, ok, err)
	}

	if err := mc.FlushForProfile(ctx, 1, 4); err != nil {
		t.Fatalf("FlushForProfile: %v", err)
	}
	if _, ok, _ := mc.Get(ctx, key); ok {
		t.Error("entry should be gone after FlushForProfile")
	}
}

func TestRedisStore_Closed(t *testing.T) {
	s := newTestRedisStore(t, "test-store:")
	_ = s.Close()

	if _, _, err := s.Load(context.Background(), "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Load after Close = %v, want ErrClosed", err)
	}
}

func TestNewRedisStore_BadOptions(t *testing.T) {
	if _, err := NewRedisStore(RedisOptions{}); err == nil {
		t.Error("expected error for empty URL")
	}
	if _, err := NewRedisStore(RedisOptions{URL: "not-a-url"}); err == nil {
		t.Error("expected error for invalid URL")
	}
}
