// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"database/sql"
	"fmt"
)

// Generator selectors stored in menus.generator.
const (
	GeneratorCore   = "core"
	GeneratorStatic = "static"
)

// Obfuscation labels. Menu item and page ids are never exposed raw in markup.
const (
	LabelMenuItem = "mni"
	LabelPage     = "pag"
)

// CSS classes shared by the server-side renderer and the client-side marker.
const (
	ClassIsLeave  = "menu-is-leave"
	ClassIsActive = "menu-is-active"
	ClassLevel    = "menu-level-"
)

// ElementIDPrefix prefixes the DOM id of every rendered menu item.
const ElementIDPrefix = "mni-"

// MenuItem is one row of a menu as read for a single language.
// A null ParentID marks a root; a null Text marks a structural folder that
// renders without a link.
type MenuItem struct {
	ID             int64
	ParentID       sql.NullInt64
	Text           sql.NullString
	PageID         sql.NullInt64
	PageAlias      sql.NullString
	Class1         sql.NullString
	Class2         sql.NullString
	Class3         sql.NullString
	Class4         sql.NullString
	HideAnonymous  bool
	HideIdentified bool
}

// Menu holds the details of a menu.
type Menu struct {
	ID         int64
	Name       string
	Generator  string
	StaticHTML sql.NullString
}

// CacheKey identifies one rendered menu in the menu cache.
type CacheKey struct {
	CompanyID  int64
	MenuID     int64
	LanguageID int64
	ProfileID  int64
}

// String returns the key in the layout used by key/value cache backends.
// Company and profile come first so that both can be invalidated by prefix.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s%d:%d:%d:%d", MenuCacheKeyPrefix, k.CompanyID, k.ProfileID, k.MenuID, k.LanguageID)
}

// MenuCacheKeyPrefix is the namespace of menu entries in key/value caches.
const MenuCacheKeyPrefix = "menu:"

// CompanyCachePrefix returns the key prefix matching every entry of a company.
func CompanyCachePrefix(companyID int64) string {
	return fmt.Sprintf("%s%d:", MenuCacheKeyPrefix, companyID)
}

// ProfileCachePrefix returns the key prefix matching every entry of a profile within a company.
func ProfileCachePrefix(companyID, profileID int64) string {
	return fmt.Sprintf("%s%d:%d:", MenuCacheKeyPrefix, companyID, profileID)
}
