// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session configures the cookie session that identifies the user a
// menu is rendered for.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"

	"github.com/olegiv/ocms-menu/internal/store"
)

// KeyUserID is the session key holding the id of the signed in user.
const KeyUserID = "user_id"

// New creates a session manager. SQLite databases keep sessions in the
// sessions table; other drivers use an in-process store.
func New(db *sql.DB, driver string, isDev bool) *scs.SessionManager {
	sm := scs.New()

	if driver == store.DriverSQLite {
		sm.Store = sqlite3store.New(db)
	} else {
		sm.Store = memstore.New()
	}

	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev
	if !isDev {
		sm.Cookie.Name = "__Host-session"
		sm.Cookie.Path = "/"
	}

	return sm
}
