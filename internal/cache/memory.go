// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps entries in a map of the running process. Each instance
// of the service has its own copy, so invalidation events must reach every
// instance.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	size    int64
	closed  bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", false, ErrClosed
	}
	value, ok := s.entries[key]
	return value, ok, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if old, ok := s.entries[key]; ok {
		s.size -= int64(len(old))
	}
	s.entries[key] = value
	s.size += int64(len(value))
	return nil
}

// DeleteByPrefix implements Store.
func (s *MemoryStore) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	removed := 0
	for key, value := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			s.size -= int64(len(value))
			removed++
		}
	}
	return removed, nil
}

// Len implements Store.
func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrClosed
	}
	return len(s.entries), nil
}

// SizeBytes returns the total length of the stored values.
func (s *MemoryStore) SizeBytes() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Keys returns the stored keys in sorted order.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Close drops all entries. Later calls fail with ErrClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.size = 0
	s.closed = true
	return nil
}

var (
	_ Store        = (*MemoryStore)(nil)
	_ SizeReporter = (*MemoryStore)(nil)
)
