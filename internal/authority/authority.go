// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package authority decides which pages a profile may open. A page is
// accessible when it is public or when the profile holds a grant for it.
// Access depends on the profile alone, which is what allows rendered menus
// to be cached per profile.
package authority

import (
	"context"
	"fmt"

	"github.com/olegiv/ocms-menu/internal/menu"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
)

// Authority answers page access questions from the database.
type Authority struct {
	queries *store.Queries
}

// New creates an Authority.
func New(queries *store.Queries) *Authority {
	return &Authority{queries: queries}
}

// HasAccessToPage reports whether profileID may open pageID.
func (a *Authority) HasAccessToPage(ctx context.Context, profileID, pageID int64) (bool, error) {
	n, err := a.queries.ProfileHasAccessToPage(ctx, store.ProfileHasAccessToPageParams{
		PageID:    pageID,
		ProfileID: profileID,
	})
	if err != nil {
		return false, fmt.Errorf("checking access of profile %d to page %d: %w", profileID, pageID, err)
	}
	return n > 0, nil
}

// ForViewer binds the access check to the profile of a viewer.
func (a *Authority) ForViewer(viewer model.Viewer) menu.AccessChecker {
	return viewerAccess{authority: a, profileID: viewer.ProfileID}
}

type viewerAccess struct {
	authority *Authority
	profileID int64
}

func (v viewerAccess) HasAccessToPage(ctx context.Context, pageID int64) (bool, error) {
	return v.authority.HasAccessToPage(ctx, v.profileID, pageID)
}

var _ menu.Authorizer = (*Authority)(nil)
