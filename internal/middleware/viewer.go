// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware that resolves who a menu is
// rendered for and protects the service endpoints.
package middleware

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/text/language"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/session"
	"github.com/olegiv/ocms-menu/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyViewer is the context key of the resolved model.Viewer.
const ContextKeyViewer ContextKey = "viewer"

// LanguageCookieName is the cookie name for language preference.
const LanguageCookieName = "ocms_lang"

// ViewerDefaults are used for anonymous visitors and when no language can
// be negotiated.
type ViewerDefaults struct {
	CompanyID          int64
	LanguageID         int64
	AnonymousProfileID int64
}

// LoadViewer creates middleware that resolves the viewer of the request and
// stores it in the context. It must run inside sm.LoadAndSave.
//
// A signed in user is rendered for with their own profile and company. A
// session naming a user that no longer exists is treated as anonymous.
func LoadViewer(sm *scs.SessionManager, queries *store.Queries, defaults ViewerDefaults, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			viewer := model.Viewer{
				CompanyID: defaults.CompanyID,
				ProfileID: defaults.AnonymousProfileID,
				Anonymous: true,
			}

			if userID := sm.GetInt64(ctx, session.KeyUserID); userID != 0 {
				user, err := queries.GetUserByID(ctx, userID)
				switch {
				case err == nil:
					viewer.CompanyID = user.CompanyID
					viewer.ProfileID = user.ProfileID
					viewer.UserID = user.ID
					viewer.Anonymous = false
				case errors.Is(err, sql.ErrNoRows):
					sm.Remove(ctx, session.KeyUserID)
				default:
					logger.Error("failed to load user", "user_id", userID, "error", err)
					WriteAPIError(w, http.StatusInternalServerError, "internal_error", "Failed to load user", nil)
					return
				}
			}

			languageID, err := resolveLanguage(r, queries, defaults.LanguageID)
			if err != nil {
				logger.Warn("failed to resolve language, using default", "error", err)
			}
			viewer.LanguageID = languageID

			next.ServeHTTP(w, r.WithContext(WithViewer(ctx, viewer)))
		})
	}
}

// WithViewer returns a copy of ctx carrying viewer.
func WithViewer(ctx context.Context, viewer model.Viewer) context.Context {
	return context.WithValue(ctx, ContextKeyViewer, viewer)
}

// ViewerFromContext returns the viewer stored by LoadViewer.
func ViewerFromContext(ctx context.Context) (model.Viewer, bool) {
	viewer, ok := ctx.Value(ContextKeyViewer).(model.Viewer)
	return viewer, ok
}

// resolveLanguage picks the language of the request. Priority order:
// 1. Query parameter ?lang=XX
// 2. Language cookie
// 3. Accept-Language header
// 4. fallback
func resolveLanguage(r *http.Request, queries *store.Queries, fallback int64) (int64, error) {
	languages, err := queries.ListLanguages(r.Context())
	if err != nil {
		return fallback, err
	}
	if len(languages) == 0 {
		return fallback, nil
	}

	byCode := make(map[string]int64, len(languages))
	for _, lang := range languages {
		byCode[strings.ToLower(lang.Code)] = lang.ID
	}

	if code := r.URL.Query().Get("lang"); code != "" {
		if id, ok := byCode[strings.ToLower(code)]; ok {
			return id, nil
		}
	}
	if cookie, err := r.Cookie(LanguageCookieName); err == nil {
		if id, ok := byCode[strings.ToLower(cookie.Value)]; ok {
			return id, nil
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags := make([]language.Tag, 0, len(languages)+1)
		ids := make([]int64, 0, len(languages)+1)

		// The first tag is what the matcher returns when nothing matches.
		tags = append(tags, language.Und)
		ids = append(ids, fallback)
		for _, lang := range languages {
			tag, err := language.Parse(lang.Code)
			if err != nil {
				continue
			}
			tags = append(tags, tag)
			ids = append(ids, lang.ID)
		}

		if preferred, _, err := language.ParseAcceptLanguage(accept); err == nil && len(preferred) > 0 {
			_, index, confidence := language.NewMatcher(tags).Match(preferred...)
			if confidence != language.No {
				return ids[index], nil
			}
		}
	}

	return fallback, nil
}
