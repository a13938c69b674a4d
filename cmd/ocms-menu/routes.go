// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/ocms-menu/internal/handler"
	"github.com/olegiv/ocms-menu/internal/menu"
	"github.com/olegiv/ocms-menu/internal/middleware"
	"github.com/olegiv/ocms-menu/internal/store"
	"github.com/olegiv/ocms-menu/web"
)

// Route paths.
const (
	RouteHealth       = "/health"
	RouteMetrics      = "/metrics"
	RouteStatic       = "/static/*"
	RouteMenu         = "/menus/{menuID}"
	RouteMenuActive   = "/menus/{menuID}/active"
	RouteAdmin        = "/admin"
	RouteProfileEvent = "/events/profile-changed/{profileID}"
	RouteObsoleteEvt  = "/events/profile-obsolete/{profileID}"
	RouteCacheFlush   = "/cache/flush"
	RouteCacheStats   = "/cache/stats"
)

// requestTimeout bounds the handling of one request.
const requestTimeout = 30 * time.Second

func (a *app) routes() (http.Handler, error) {
	menuHandler := handler.NewMenuHandler(a.menus, menu.NewMarker(a.source, a.ids), a.ids, a.logger)
	eventsHandler := handler.NewEventsHandler(a.bus, a.cfg.CompanyID, a.logger)
	cacheHandler := handler.NewCacheHandler(a.bus, a.menus, a.cfg.CompanyID, a.logger)
	healthHandler := handler.NewHealthHandler(a.db, a.menuCache, a.cfg.AdminToken)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}

	securityConfig := middleware.DefaultSecurityHeadersConfig(a.cfg.IsDevelopment())
	securityConfig.ExcludePaths = []string{RouteMetrics}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.SecurityHeaders(securityConfig))

	r.Get(RouteHealth, healthHandler.Health)
	r.Get(RouteHealth+"/live", healthHandler.Liveness)
	r.Get(RouteHealth+"/ready", healthHandler.Readiness)
	r.Handle(RouteMetrics, a.metrics.Handler())
	r.Handle(RouteStatic, http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Group(func(r chi.Router) {
		if a.cfg.RateLimitRPS > 0 {
			r.Use(middleware.NewRateLimiter(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst).Middleware())
		}
		r.Use(a.sessions.LoadAndSave)
		r.Use(middleware.LoadViewer(a.sessions, store.New(a.db), middleware.ViewerDefaults{
			CompanyID:          a.cfg.CompanyID,
			LanguageID:         a.cfg.DefaultLanguageID,
			AnonymousProfileID: a.cfg.AnonymousProfileID,
		}, a.logger))

		r.Get(RouteMenu, menuHandler.Menu)
		r.Get(RouteMenuActive, menuHandler.Active)
	})

	if a.cfg.AdminEnabled() {
		r.Route(RouteAdmin, func(r chi.Router) {
			r.Use(middleware.AdminToken(a.cfg.AdminToken))
			r.Post(RouteProfileEvent, eventsHandler.ProfileChanged)
			r.Post(RouteObsoleteEvt, eventsHandler.ProfileObsolete)
			r.Post(RouteCacheFlush, cacheHandler.Flush)
			r.Get(RouteCacheStats, cacheHandler.Stats)
		})
	} else {
		a.logger.Info("admin endpoints disabled, set OCMS_ADMIN_TOKEN to enable them")
	}

	return r, nil
}
