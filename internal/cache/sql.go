// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
)

// SQLMenuCache keeps menus in the menu_cache table of the application
// database.
type SQLMenuCache struct {
	db      *sql.DB
	queries *store.Queries
	counters
}

// NewSQLMenuCache creates a MenuCache backed by db.
func NewSQLMenuCache(db *sql.DB) *SQLMenuCache {
	return &SQLMenuCache{db: db, queries: store.New(db)}
}

// Get implements MenuCache.
func (c *SQLMenuCache) Get(ctx context.Context, key model.CacheKey) (string, bool, error) {
	html, err := c.queries.GetMenuCache(ctx, store.GetMenuCacheParams{
		CompanyID:  key.CompanyID,
		MenuID:     key.MenuID,
		LanguageID: key.LanguageID,
		ProfileID:  key.ProfileID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		c.lookup(false)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	c.lookup(true)
	return html, true, nil
}

// Put implements MenuCache. The old entry is replaced in one transaction.
func (c *SQLMenuCache) Put(ctx context.Context, key model.CacheKey, html string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := c.queries.WithTx(tx)
	if err := qtx.DeleteMenuCache(ctx, store.DeleteMenuCacheParams{
		CompanyID:  key.CompanyID,
		MenuID:     key.MenuID,
		LanguageID: key.LanguageID,
		ProfileID:  key.ProfileID,
	}); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	if err := qtx.InsertMenuCache(ctx, store.InsertMenuCacheParams{
		CompanyID:  key.CompanyID,
		MenuID:     key.MenuID,
		LanguageID: key.LanguageID,
		ProfileID:  key.ProfileID,
		Html:       html,
	}); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", key, err)
	}

	c.sets.Add(1)
	return nil
}

// Flush implements MenuCache.
func (c *SQLMenuCache) Flush(ctx context.Context, companyID int64) error {
	if _, err := c.queries.FlushMenuCache(ctx, companyID); err != nil {
		return fmt.Errorf("flushing menu cache of company %d: %w", companyID, err)
	}
	return nil
}

// FlushForProfile implements MenuCache.
func (c *SQLMenuCache) FlushForProfile(ctx context.Context, companyID, profileID int64) error {
	if _, err := c.queries.FlushMenuCacheByProfile(ctx, store.FlushMenuCacheByProfileParams{
		CompanyID: companyID,
		ProfileID: profileID,
	}); err != nil {
		return fmt.Errorf("flushing menu cache of profile %d: %w", profileID, err)
	}
	return nil
}

// Stats implements MenuCache.
func (c *SQLMenuCache) Stats(ctx context.Context) (Stats, error) {
	items, err := c.queries.CountMenuCache(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("counting menu cache: %w", err)
	}
	return c.stats(TypeSQL, int(items)), nil
}

// Close is a no-op; the database is owned by the caller.
func (c *SQLMenuCache) Close() error {
	return nil
}

var _ MenuCache = (*SQLMenuCache)(nil)
