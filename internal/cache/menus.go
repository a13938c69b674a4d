// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"fmt"

	"github.com/olegiv/ocms-menu/internal/model"
)

// MenuCache stores rendered menu markup by model.CacheKey.
type MenuCache interface {
	// Get returns the cached markup. ok is false on a miss.
	Get(ctx context.Context, key model.CacheKey) (html string, ok bool, err error)
	// Put stores markup, replacing any existing entry.
	Put(ctx context.Context, key model.CacheKey, html string) error
	// Flush removes every entry of a company.
	Flush(ctx context.Context, companyID int64) error
	// FlushForProfile removes every entry of a profile within a company.
	FlushForProfile(ctx context.Context, companyID, profileID int64) error
	// Stats reports usage of the cache.
	Stats(ctx context.Context) (Stats, error)
	Close() error
}

// KVMenuCache keeps menus in a key/value Store using the key layout of
// model.CacheKey, so both flushes are prefix deletes.
type KVMenuCache struct {
	store Store
	name  string
	counters
}

// NewKVMenuCache creates a MenuCache on top of store. name identifies the
// backend in statistics.
func NewKVMenuCache(store Store, name string) *KVMenuCache {
	return &KVMenuCache{store: store, name: name}
}

// Get implements MenuCache.
func (c *KVMenuCache) Get(ctx context.Context, key model.CacheKey) (string, bool, error) {
	html, ok, err := c.store.Load(ctx, key.String())
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	c.lookup(ok)
	return html, ok, nil
}

// Put implements MenuCache.
func (c *KVMenuCache) Put(ctx context.Context, key model.CacheKey, html string) error {
	if err := c.store.Save(ctx, key.String(), html); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	c.sets.Add(1)
	return nil
}

// Flush implements MenuCache.
func (c *KVMenuCache) Flush(ctx context.Context, companyID int64) error {
	if _, err := c.store.DeleteByPrefix(ctx, model.CompanyCachePrefix(companyID)); err != nil {
		return fmt.Errorf("flushing menu cache of company %d: %w", companyID, err)
	}
	return nil
}

// FlushForProfile implements MenuCache.
func (c *KVMenuCache) FlushForProfile(ctx context.Context, companyID, profileID int64) error {
	if _, err := c.store.DeleteByPrefix(ctx, model.ProfileCachePrefix(companyID, profileID)); err != nil {
		return fmt.Errorf("flushing menu cache of profile %d: %w", profileID, err)
	}
	return nil
}

// Stats implements MenuCache.
func (c *KVMenuCache) Stats(ctx context.Context) (Stats, error) {
	items, err := c.store.Len(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("counting menu cache: %w", err)
	}
	stats := c.stats(c.name, items)
	if sr, ok := c.store.(SizeReporter); ok {
		stats.Size = sr.SizeBytes()
	}
	return stats, nil
}

// Close closes the store.
func (c *KVMenuCache) Close() error {
	return c.store.Close()
}

var _ MenuCache = (*KVMenuCache)(nil)
