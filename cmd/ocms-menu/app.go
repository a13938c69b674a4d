// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/ocms-menu/internal/authority"
	"github.com/olegiv/ocms-menu/internal/cache"
	"github.com/olegiv/ocms-menu/internal/config"
	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/menu"
	"github.com/olegiv/ocms-menu/internal/metrics"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/obfuscate"
	"github.com/olegiv/ocms-menu/internal/scheduler"
	"github.com/olegiv/ocms-menu/internal/service"
	"github.com/olegiv/ocms-menu/internal/session"
	"github.com/olegiv/ocms-menu/internal/store"
)

// app holds the wired components served by the router.
type app struct {
	cfg       *config.Config
	db        *sql.DB
	sessions  *scs.SessionManager
	registry  *menu.Registry
	menus     *service.MenuService
	menuCache cache.MenuCache
	source    menu.Source
	ids       obfuscate.Obfuscator
	bus       *event.Bus
	scheduler *scheduler.Scheduler
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// newApp wires the menu components on top of an open, migrated database.
func newApp(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*app, error) {
	ids, err := obfuscate.New(cfg.Obfuscator, cfg.ObfuscatorKey)
	if err != nil {
		return nil, fmt.Errorf("creating obfuscator: %w", err)
	}

	menuCache, err := cache.NewMenuCache(cfg.CacheConfig(), db, logger)
	if err != nil {
		return nil, fmt.Errorf("creating menu cache: %w", err)
	}

	m := metrics.New()
	queries := store.New(db)
	source := menu.NewStoreSource(queries)

	registry := menu.NewRegistry(logger)
	renderer := menu.NewRenderer(ids, menu.PageURLs{Obfuscator: ids})
	if err := registry.Register(model.GeneratorCore, menu.NewDefaultGenerator(source, authority.New(queries), renderer)); err != nil {
		_ = menuCache.Close()
		return nil, err
	}
	if err := registry.Register(model.GeneratorStatic, menu.NewStaticGenerator(source)); err != nil {
		_ = menuCache.Close()
		return nil, err
	}

	bus := event.NewBus(logger)
	service.NewMenuEventHandler(menuCache, m, logger, cfg.CompanyID).Subscribe(bus)

	sched := scheduler.New(bus, queries, cfg.CompanyID, logger)
	if err := sched.ScheduleFlush(cfg.CacheFlushSchedule); err != nil {
		_ = menuCache.Close()
		return nil, err
	}

	return &app{
		cfg:       cfg,
		db:        db,
		sessions:  session.New(db, cfg.DBDriver, cfg.IsDevelopment()),
		registry:  registry,
		menus:     service.NewMenuService(source, registry, menuCache, m, logger),
		menuCache: menuCache,
		source:    source,
		ids:       ids,
		bus:       bus,
		scheduler: sched,
		metrics:   m,
		logger:    logger,
	}, nil
}

// Close stops the scheduler and releases the menu cache.
func (a *app) Close() error {
	a.scheduler.Stop()
	return a.menuCache.Close()
}
