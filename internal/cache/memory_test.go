// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemoryStore_LoadSave(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	if _, ok, err := s.Load(ctx, "k"); err != nil || ok {
		t.Fatalf("Load on empty store = ok %v, err %v; want miss", ok, err)
	}

	if err := s.Save(ctx, "k", "v1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, "k", "value2"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Load = ok %v, err %v", ok, err)
	}
	if got != "value2" {
		t.Errorf("Load = %q, want %q", got, "value2")
	}
	if size := s.SizeBytes(); size != int64(len("value2")) {
		t.Errorf("SizeBytes = %d, want %d", size, len("value2"))
	}
}

func TestMemoryStore_DeleteByPrefix(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	for _, key := range []string{"menu:1:2:1:1", "menu:1:2:3:1", "menu:1:20:1:1", "menu:2:2:1:1"} {
		if err := s.Save(ctx, key, key); err != nil {
			t.Fatalf("Save(%q): %v", key, err)
		}
	}

	removed, err := s.DeleteByPrefix(ctx, "menu:1:2:")
	if err != nil {
		t.Fatalf("DeleteByPrefix: %v", err)
	}
	if removed != 2 {
		t.Errorf("DeleteByPrefix removed %d keys, want 2", removed)
	}

	want := []string{"menu:1:20:1:1", "menu:2:2:1:1"}
	if diff := cmp.Diff(want, s.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
	if size := s.SizeBytes(); size != int64(len(want[0])+len(want[1])) {
		t.Errorf("SizeBytes = %d after delete", size)
	}
	if n, _ := s.Len(ctx); n != 2 {
		t.Errorf("Len = %d, want 2", n)
	}
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Save(ctx, "k", "v")

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, _, err := s.Load(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Load after Close = %v, want ErrClosed", err)
	}
	if err := s.Save(ctx, "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Save after Close = %v, want ErrClosed", err)
	}
	if _, err := s.DeleteByPrefix(ctx, ""); !errors.Is(err, ErrClosed) {
		t.Errorf("DeleteByPrefix after Close = %v, want ErrClosed", err)
	}
	if _, err := s.Len(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Len after Close = %v, want ErrClosed", err)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("menu:1:%d:1:1", n%5)
			_ = s.Save(ctx, key, "<nav></nav>")
			_, _, _ = s.Load(ctx, key)
			if n%10 == 0 {
				_, _ = s.DeleteByPrefix(ctx, "menu:1:")
			}
		}(i)
	}
	wg.Wait()

	n, err := s.Len(ctx)
	if err != nil {
		t.Fatalf("Len: %v", err)
	}
	if want := int64(n * len("<nav></nav>")); s.SizeBytes() != want {
		t.Errorf("SizeBytes = %d, want %d for %d entries", s.SizeBytes(), want, n)
	}
}
