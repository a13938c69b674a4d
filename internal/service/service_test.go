// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/ocms-menu/internal/authority"
	"github.com/olegiv/ocms-menu/internal/cache"
	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/menu"
	"github.com/olegiv/ocms-menu/internal/metrics"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/obfuscate"
	"github.com/olegiv/ocms-menu/internal/store"
	"github.com/olegiv/ocms-menu/internal/testutil"
)

type fixture struct {
	service  *MenuService
	cache    cache.MenuCache
	seed     *store.SeedResult
	registry *menu.Registry
	calls    *atomic.Int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.MemoryDB(t)
	ctx := context.Background()

	seed, err := store.Seed(ctx, db)
	require.NoError(t, err)
	require.NotNil(t, seed)

	logger := testutil.TestLoggerSilent()
	queries := store.New(db)
	source := menu.NewStoreSource(queries)
	ids := obfuscate.Development{}

	core := menu.NewDefaultGenerator(source, authority.New(queries),
		menu.NewRenderer(ids, menu.PageURLs{Obfuscator: ids}))

	calls := &atomic.Int64{}
	registry := menu.NewRegistry(logger)
	require.NoError(t, registry.Register(model.GeneratorCore, menu.GeneratorFunc(
		func(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error) {
			calls.Add(1)
			return core.Generate(ctx, viewer, menuID, name)
		})))
	require.NoError(t, registry.Register(model.GeneratorStatic, menu.NewStaticGenerator(source)))

	menuCache, err := cache.NewMenuCache(cache.Config{Type: cache.TypeMemory}, db, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = menuCache.Close() })

	return &fixture{
		service:  NewMenuService(source, registry, menuCache, metrics.New(), logger),
		cache:    menuCache,
		seed:     seed,
		registry: registry,
		calls:    calls,
	}
}

func (f *fixture) anonymous() model.Viewer {
	return model.Viewer{
		CompanyID:  store.DemoCompanyID,
		LanguageID: f.seed.LanguageID,
		ProfileID:  f.seed.AnonymousProfileID,
		Anonymous:  true,
	}
}

func (f *fixture) member() model.Viewer {
	return model.Viewer{
		CompanyID:  store.DemoCompanyID,
		LanguageID: f.seed.LanguageID,
		ProfileID:  f.seed.MemberProfileID,
		UserID:     f.seed.AdminUserID,
	}
}

func TestMenuService_Menu(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	anon, err := f.service.Menu(ctx, f.anonymous(), f.seed.MenuID, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(anon, `<nav class="menu-main-menu-nav" id="menu-main-menu">`), anon)
	assert.Contains(t, anon, ">Home<")
	assert.Contains(t, anon, ">Sign in<")
	assert.NotContains(t, anon, ">Members<")
	assert.Contains(t, anon, `href="/about"`)

	member, err := f.service.Menu(ctx, f.member(), f.seed.MenuID, nil)
	require.NoError(t, err)
	assert.Contains(t, member, ">Members<")
	assert.NotContains(t, member, ">Sign in<")

	assert.Equal(t, int64(2), f.calls.Load())
}

func TestMenuService_CachesPerProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.service.Menu(ctx, f.anonymous(), f.seed.MenuID, nil)
	require.NoError(t, err)
	second, err := f.service.Menu(ctx, f.anonymous(), f.seed.MenuID, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), f.calls.Load())

	html, ok, err := f.cache.Get(ctx, f.anonymous().CacheKey(f.seed.MenuID))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, html)

	_, ok, err = f.cache.Get(ctx, f.member().CacheKey(f.seed.MenuID))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMenuService_ServesCachedHTML(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.cache.Put(ctx, f.anonymous().CacheKey(f.seed.MenuID), "<nav>cached</nav>"))

	got, err := f.service.Menu(ctx, f.anonymous(), f.seed.MenuID, nil)
	require.NoError(t, err)
	assert.Equal(t, "<nav>cached</nav>", got)
	assert.Equal(t, int64(0), f.calls.Load())
}

func TestMenuService_NameOverrideBypassesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	name := "Top Bar"

	got, err := f.service.Menu(ctx, f.anonymous(), f.seed.MenuID, &name)
	require.NoError(t, err)
	assert.Contains(t, got, `id="menu-top-bar"`)

	_, ok, err := f.cache.Get(ctx, f.anonymous().CacheKey(f.seed.MenuID))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMenuService_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Menu(context.Background(), f.anonymous(), 9999, nil)
	assert.ErrorIs(t, err, menu.ErrMenuNotFound)
}

type brokenCache struct {
	cache.MenuCache
	puts int
}

func (c *brokenCache) Get(context.Context, model.CacheKey) (string, bool, error) {
	return "", false, errors.New("backend down")
}

func (c *brokenCache) Put(context.Context, model.CacheKey, string) error {
	c.puts++
	return errors.New("backend down")
}

func TestMenuService_CacheFailuresAreNotFatal(t *testing.T) {
	f := newFixture(t)
	broken := &brokenCache{MenuCache: f.cache}
	f.service.menuCache = broken

	got, err := f.service.Menu(context.Background(), f.anonymous(), f.seed.MenuID, nil)
	require.NoError(t, err)
	assert.Contains(t, got, ">Home<")
	assert.Equal(t, 1, broken.puts)
}

func TestMenuEventHandler(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	logger := testutil.TestLoggerSilent()

	bus := event.NewBus(logger)
	NewMenuEventHandler(f.cache, metrics.New(), logger, store.DemoCompanyID).Subscribe(bus)

	warm := func() {
		t.Helper()
		_, err := f.service.Menu(ctx, f.anonymous(), f.seed.MenuID, nil)
		require.NoError(t, err)
		_, err = f.service.Menu(ctx, f.member(), f.seed.MenuID, nil)
		require.NoError(t, err)
	}
	cached := func(v model.Viewer) bool {
		t.Helper()
		_, ok, err := f.cache.Get(ctx, v.CacheKey(f.seed.MenuID))
		require.NoError(t, err)
		return ok
	}

	t.Run("profile changed", func(t *testing.T) {
		warm()
		_, err := bus.Publish(ctx, model.EventProfileChanged, model.ProfileEvent{
			CompanyID: store.DemoCompanyID, ProfileID: f.seed.MemberProfileID,
		})
		require.NoError(t, err)
		assert.False(t, cached(f.member()))
		assert.True(t, cached(f.anonymous()))
	})

	t.Run("profile obsolete uses default company", func(t *testing.T) {
		warm()
		_, err := bus.Publish(ctx, model.EventProfileObsolete, model.ProfileEvent{
			ProfileID: f.seed.AnonymousProfileID,
		})
		require.NoError(t, err)
		assert.False(t, cached(f.anonymous()))
		assert.True(t, cached(f.member()))
	})

	t.Run("flush all", func(t *testing.T) {
		warm()
		_, err := bus.Publish(ctx, model.EventFlushAllCaches, model.FlushEvent{CompanyID: store.DemoCompanyID})
		require.NoError(t, err)
		assert.False(t, cached(f.anonymous()))
		assert.False(t, cached(f.member()))
	})

	t.Run("flush all of another company", func(t *testing.T) {
		warm()
		_, err := bus.Publish(ctx, model.EventFlushAllCaches, model.FlushEvent{CompanyID: 2})
		require.NoError(t, err)
		assert.True(t, cached(f.anonymous()))
	})

	t.Run("wrong payload", func(t *testing.T) {
		_, err := bus.Publish(ctx, model.EventProfileChanged, "profile 7")
		assert.Error(t, err)
	})
}
