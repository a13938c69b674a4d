// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service glues the menu pipeline to the cache and the event bus.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/olegiv/ocms-menu/internal/cache"
	"github.com/olegiv/ocms-menu/internal/menu"
	"github.com/olegiv/ocms-menu/internal/metrics"
	"github.com/olegiv/ocms-menu/internal/model"
)

// MenuService returns the markup of menus, serving it from the menu cache
// when possible and generating it on a miss.
type MenuService struct {
	source    menu.Source
	registry  *menu.Registry
	menuCache cache.MenuCache
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewMenuService creates a MenuService.
func NewMenuService(source menu.Source, registry *menu.Registry, menuCache cache.MenuCache, m *metrics.Metrics, logger *slog.Logger) *MenuService {
	return &MenuService{
		source:    source,
		registry:  registry,
		menuCache: menuCache,
		metrics:   m,
		logger:    logger,
	}
}

// Menu returns the markup of a menu for viewer. A cached copy is used when
// present; otherwise the generator selected by the menu renders it and the
// result is stored. A name override changes the markup, so such renders
// bypass the cache entirely.
func (s *MenuService) Menu(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error) {
	if name != nil {
		return s.generate(ctx, viewer, menuID, name)
	}

	key := viewer.CacheKey(menuID)

	html, ok, err := s.menuCache.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.CacheLookups.Increment(metrics.ResultError)
		s.logger.Warn("menu cache read failed",
			"category", model.EventCategoryCache,
			"menu_id", menuID,
			"company_id", viewer.CompanyID,
			"profile_id", viewer.ProfileID,
			"error", err,
		)
	case ok:
		s.metrics.CacheLookups.Increment(metrics.ResultHit)
		return html, nil
	default:
		s.metrics.CacheLookups.Increment(metrics.ResultMiss)
	}

	html, err = s.generate(ctx, viewer, menuID, nil)
	if err != nil {
		return "", err
	}

	if err := s.menuCache.Put(ctx, key, html); err != nil {
		s.metrics.CacheWrites.Increment(metrics.ResultError)
		s.logger.Warn("menu cache write failed",
			"category", model.EventCategoryCache,
			"menu_id", menuID,
			"company_id", viewer.CompanyID,
			"profile_id", viewer.ProfileID,
			"error", err,
		)
	} else {
		s.metrics.CacheWrites.Increment(metrics.ResultOK)
	}

	return html, nil
}

// generate dispatches to the generator selected by the menu.
func (s *MenuService) generate(ctx context.Context, viewer model.Viewer, menuID int64, name *string) (string, error) {
	details, err := s.source.GetMenuDetails(ctx, menuID)
	if err != nil {
		return "", err
	}

	generator, err := s.registry.Get(details.Generator)
	if err != nil {
		s.metrics.Renders.Increment(details.Generator, metrics.ResultError)
		return "", err
	}

	start := time.Now()
	html, err := generator.Generate(ctx, viewer, menuID, name)
	s.metrics.ObserveRender(details.Generator, time.Since(start))
	if err != nil {
		s.metrics.Renders.Increment(details.Generator, metrics.ResultError)
		return "", err
	}
	s.metrics.Renders.Increment(details.Generator, metrics.ResultOK)

	s.logger.Debug("menu generated",
		"menu_id", menuID,
		"generator", details.Generator,
		"profile_id", viewer.ProfileID,
		"language_id", viewer.LanguageID,
		"bytes", len(html),
	)
	return html, nil
}

// CacheStats reports usage of the menu cache.
func (s *MenuService) CacheStats(ctx context.Context) (cache.Stats, error) {
	return s.menuCache.Stats(ctx)
}
