// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package authority

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
	"github.com/olegiv/ocms-menu/internal/testutil"
)

func TestAuthority(t *testing.T) {
	db := testutil.MemoryDB(t)
	q := store.New(db)
	ctx := context.Background()

	members, err := q.CreateProfile(ctx, store.CreateProfileParams{CompanyID: 1, Name: "Members"})
	require.NoError(t, err)
	guests, err := q.CreateProfile(ctx, store.CreateProfileParams{CompanyID: 1, Name: "Guests", IsAnonymous: true})
	require.NoError(t, err)

	public, err := q.CreatePage(ctx, store.CreatePageParams{Title: "Public", IsPublic: true})
	require.NoError(t, err)
	private, err := q.CreatePage(ctx, store.CreatePageParams{Title: "Private"})
	require.NoError(t, err)
	require.NoError(t, q.GrantPageToProfile(ctx, store.GrantPageToProfileParams{ProfileID: members, PageID: private}))

	auth := New(q)

	tests := []struct {
		name    string
		profile int64
		page    int64
		want    bool
	}{
		{"public for members", members, public, true},
		{"public for guests", guests, public, true},
		{"granted page", members, private, true},
		{"page not granted", guests, private, false},
		{"unknown page", members, private + 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.ForViewer(model.Viewer{ProfileID: tt.profile}).HasAccessToPage(ctx, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthority_DatabaseError(t *testing.T) {
	db := testutil.MemoryDB(t)
	auth := New(store.New(db))
	require.NoError(t, db.Close())

	_, err := auth.HasAccessToPage(context.Background(), 1, 1)
	assert.Error(t, err)
}
