// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Viewer is the resolved context of the current request: tenant, language
// and the identity the menu is rendered for.
type Viewer struct {
	CompanyID  int64
	LanguageID int64
	ProfileID  int64
	UserID     int64
	Anonymous  bool
}

// CacheKey returns the cache key of a menu rendered for this viewer.
func (v Viewer) CacheKey(menuID int64) CacheKey {
	return CacheKey{
		CompanyID:  v.CompanyID,
		MenuID:     menuID,
		LanguageID: v.LanguageID,
		ProfileID:  v.ProfileID,
	}
}
