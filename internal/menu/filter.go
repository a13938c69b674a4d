// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package menu turns the flat item rows of a menu into navigation markup.
//
// Rendering is a pipeline of pure steps: FilterAuthorized drops the items the
// viewer may not see, BuildTree arranges the rest by parent, Prune removes
// folders that lead nowhere and Renderer serializes the tree to HTML.
// Generators wire the steps to the data layer and are selected per menu
// through a Registry.
package menu

import (
	"context"
	"fmt"

	"github.com/olegiv/ocms-menu/internal/model"
)

// AccessChecker decides whether the current viewer may open a page.
type AccessChecker interface {
	HasAccessToPage(ctx context.Context, pageID int64) (bool, error)
}

// AccessFunc adapts a plain function to AccessChecker.
type AccessFunc func(ctx context.Context, pageID int64) (bool, error)

// HasAccessToPage calls f.
func (f AccessFunc) HasAccessToPage(ctx context.Context, pageID int64) (bool, error) {
	return f(ctx, pageID)
}

// FilterAuthorized returns the items the viewer is allowed to see, in their
// original order. An item is removed when it links to a page the viewer
// cannot access, when it is hidden for anonymous viewers and the viewer is
// anonymous, or when it is hidden for identified viewers and the viewer is
// not anonymous. A failing access check aborts the filter.
func FilterAuthorized(ctx context.Context, items []model.MenuItem, access AccessChecker, anonymous bool) ([]model.MenuItem, error) {
	kept := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if item.HideAnonymous && anonymous {
			continue
		}
		if item.HideIdentified && !anonymous {
			continue
		}
		if item.PageID.Valid {
			ok, err := access.HasAccessToPage(ctx, item.PageID.Int64)
			if err != nil {
				return nil, fmt.Errorf("checking access to page %d: %w", item.PageID.Int64, err)
			}
			if !ok {
				continue
			}
		}
		kept = append(kept, item)
	}
	return kept, nil
}
