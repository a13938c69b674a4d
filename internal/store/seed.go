// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// Demo data identifiers.
const (
	DemoCompanyID     = 1
	DemoLanguageCode  = "en"
	DemoMenuName      = "Main Menu"
	DemoAdminEmail    = "admin@example.com"
	DemoMemberProfile = "Members"
)

// SeedResult holds the ids created by Seed.
type SeedResult struct {
	LanguageID         int64
	AnonymousProfileID int64
	MemberProfileID    int64
	AdminUserID        int64
	MenuID             int64
}

// Seed creates a small demo site: one language, an anonymous and a member
// profile, a handful of pages and a two level main menu. It does nothing
// when the demo language already exists.
func Seed(ctx context.Context, db *sql.DB) (*SeedResult, error) {
	queries := New(db)

	_, err := queries.GetLanguageByCode(ctx, DemoLanguageCode)
	if err == nil {
		slog.Info("demo data already exists, skipping seed")
		return nil, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("checking for demo language: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	qtx := queries.WithTx(tx)
	res := &SeedResult{}

	if res.LanguageID, err = qtx.CreateLanguage(ctx, CreateLanguageParams{Code: DemoLanguageCode, Name: "English"}); err != nil {
		return nil, fmt.Errorf("creating language: %w", err)
	}
	if res.AnonymousProfileID, err = qtx.CreateProfile(ctx, CreateProfileParams{
		CompanyID: DemoCompanyID, Name: "Anonymous", IsAnonymous: true,
	}); err != nil {
		return nil, fmt.Errorf("creating anonymous profile: %w", err)
	}
	if res.MemberProfileID, err = qtx.CreateProfile(ctx, CreateProfileParams{
		CompanyID: DemoCompanyID, Name: DemoMemberProfile,
	}); err != nil {
		return nil, fmt.Errorf("creating member profile: %w", err)
	}
	if res.AdminUserID, err = qtx.CreateUser(ctx, CreateUserParams{
		CompanyID: DemoCompanyID, ProfileID: res.MemberProfileID, Email: DemoAdminEmail,
	}); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	pages := []struct {
		title   string
		alias   string
		public  bool
		members bool
	}{
		{title: "Home", alias: "home", public: true},
		{title: "About", alias: "about", public: true},
		{title: "Team", public: true},
		{title: "Members Area", alias: "members", members: true},
		{title: "Sign In", alias: "login", public: true},
	}
	pageIDs := make([]int64, len(pages))
	for i, p := range pages {
		id, err := qtx.CreatePage(ctx, CreatePageParams{
			Title:    p.title,
			Alias:    sql.NullString{String: p.alias, Valid: p.alias != ""},
			IsPublic: p.public,
		})
		if err != nil {
			return nil, fmt.Errorf("creating page %q: %w", p.title, err)
		}
		if p.members {
			if err := qtx.GrantPageToProfile(ctx, GrantPageToProfileParams{
				ProfileID: res.MemberProfileID, PageID: id,
			}); err != nil {
				return nil, fmt.Errorf("granting page %q: %w", p.title, err)
			}
		}
		pageIDs[i] = id
	}

	if res.MenuID, err = qtx.CreateMenu(ctx, CreateMenuParams{Name: DemoMenuName, Generator: "core"}); err != nil {
		return nil, fmt.Errorf("creating menu: %w", err)
	}

	item := func(parent int64, page int64, pos int64, text string, hideAnon, hideIdent bool) (int64, error) {
		id, err := qtx.CreateMenuItem(ctx, CreateMenuItemParams{
			MenuID:         res.MenuID,
			ParentID:       sql.NullInt64{Int64: parent, Valid: parent != 0},
			PageID:         sql.NullInt64{Int64: page, Valid: page != 0},
			Position:       pos,
			HideAnonymous:  hideAnon,
			HideIdentified: hideIdent,
		})
		if err != nil {
			return 0, err
		}
		return id, qtx.CreateMenuItemText(ctx, CreateMenuItemTextParams{
			ItemID: id, LanguageID: res.LanguageID, Text: text,
		})
	}

	if _, err := item(0, pageIDs[0], 1, "Home", false, false); err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}
	company, err := item(0, 0, 2, "Company", false, false)
	if err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}
	if _, err := item(company, pageIDs[1], 1, "About", false, false); err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}
	if _, err := item(company, pageIDs[2], 2, "Team", false, false); err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}
	if _, err := item(0, pageIDs[3], 3, "Members", true, false); err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}
	if _, err := item(0, pageIDs[4], 4, "Sign in", false, true); err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing seed: %w", err)
	}

	slog.Info("seeded demo data",
		"menu_id", res.MenuID,
		"language_id", res.LanguageID,
		"anonymous_profile_id", res.AnonymousProfileID,
		"member_profile_id", res.MemberProfileID,
	)
	return res, nil
}
