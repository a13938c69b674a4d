// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache stores rendered menus so that a menu is built once per
// company, menu, language and profile. Entries never expire; they are
// removed only by explicit invalidation.
package cache

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrClosed is returned by a Store used after Close.
var ErrClosed = errors.New("cache closed")

// Store is a string key/value store the key/value menu cache is layered on.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the value of key; ok is false when the key is absent.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	// Save stores value under key without expiry, replacing any old value.
	Save(ctx context.Context, key, value string) error
	// DeleteByPrefix removes every key starting with prefix and reports how
	// many were removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	// Len returns the number of stored keys.
	Len(ctx context.Context) (int, error)
	Close() error
}

// SizeReporter is implemented by stores that know their approximate size.
type SizeReporter interface {
	SizeBytes() int64
}

// Stats holds cache statistics.
type Stats struct {
	Backend string  `json:"backend,omitempty"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Sets    int64   `json:"sets"`
	Items   int     `json:"items"`
	HitRate float64 `json:"hit_rate"`
	Size    int64   `json:"size_bytes,omitempty"` // Approximate size in bytes
}

// counters tracks lookups and writes of a menu cache since it was created.
type counters struct {
	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

func (c *counters) lookup(hit bool) {
	if hit {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
}

func (c *counters) stats(backend string, items int) Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	return Stats{
		Backend: backend,
		Hits:    hits,
		Misses:  misses,
		Sets:    c.sets.Load(),
		Items:   items,
		HitRate: hitRate(hits, misses),
	}
}

// hitRate returns hits as a percentage of all lookups.
func hitRate(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}
