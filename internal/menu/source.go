// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
)

// Source reads menus and their items.
type Source interface {
	GetMenuDetails(ctx context.Context, menuID int64) (model.Menu, error)
	ListMenuItems(ctx context.Context, menuID, languageID int64) ([]model.MenuItem, error)
	// GetItemIDForPage returns the first item of a menu linking to a page.
	// ok is false when there is none.
	GetItemIDForPage(ctx context.Context, menuID, pageID int64) (id int64, ok bool, err error)
}

// StoreSource reads menus from the database.
type StoreSource struct {
	queries *store.Queries
}

// NewStoreSource creates a Source backed by queries.
func NewStoreSource(queries *store.Queries) *StoreSource {
	return &StoreSource{queries: queries}
}

// GetMenuDetails returns ErrMenuNotFound when the menu does not exist.
func (s *StoreSource) GetMenuDetails(ctx context.Context, menuID int64) (model.Menu, error) {
	m, err := s.queries.GetMenuDetails(ctx, menuID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Menu{}, fmt.Errorf("%w: %d", ErrMenuNotFound, menuID)
	}
	if err != nil {
		return model.Menu{}, fmt.Errorf("getting menu %d: %w", menuID, err)
	}
	return model.Menu{
		ID:         m.ID,
		Name:       m.Name,
		Generator:  m.Generator,
		StaticHTML: m.StaticHtml,
	}, nil
}

// ListMenuItems returns the items of a menu in display order with their
// text in the given language.
func (s *StoreSource) ListMenuItems(ctx context.Context, menuID, languageID int64) ([]model.MenuItem, error) {
	rows, err := s.queries.ListMenuItems(ctx, store.ListMenuItemsParams{
		LanguageID: languageID,
		MenuID:     menuID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing items of menu %d: %w", menuID, err)
	}

	items := make([]model.MenuItem, len(rows))
	for i, row := range rows {
		items[i] = model.MenuItem{
			ID:             row.ID,
			ParentID:       row.ParentID,
			Text:           row.Text,
			PageID:         row.PageID,
			PageAlias:      row.PageAlias,
			Class1:         row.Class1,
			Class2:         row.Class2,
			Class3:         row.Class3,
			Class4:         row.Class4,
			HideAnonymous:  row.HideAnonymous,
			HideIdentified: row.HideIdentified,
		}
	}
	return items, nil
}

// GetItemIDForPage implements Source.
func (s *StoreSource) GetItemIDForPage(ctx context.Context, menuID, pageID int64) (int64, bool, error) {
	id, err := s.queries.GetItemIDForPage(ctx, store.GetItemIDForPageParams{MenuID: menuID, PageID: pageID})
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("finding item for page %d in menu %d: %w", pageID, menuID, err)
	}
	return id, true, nil
}
