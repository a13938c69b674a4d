// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/service"
)

// CacheHandler handles menu cache management routes.
type CacheHandler struct {
	bus       *event.Bus
	menus     *service.MenuService
	companyID int64
	logger    *slog.Logger
}

// NewCacheHandler creates a new CacheHandler.
func NewCacheHandler(bus *event.Bus, menus *service.MenuService, companyID int64, logger *slog.Logger) *CacheHandler {
	return &CacheHandler{
		bus:       bus,
		menus:     menus,
		companyID: companyID,
		logger:    logger,
	}
}

// Flush handles POST /admin/cache/flush. It raises the flush-all event so
// every subscriber drops its caches, not only the menu cache.
func (h *CacheHandler) Flush(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyParam(r, h.companyID)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	e, err := h.bus.Publish(r.Context(), model.EventFlushAllCaches, model.FlushEvent{CompanyID: companyID})
	if err != nil {
		h.logger.Error("failed to flush caches",
			"category", model.EventCategoryCache,
			"company_id", companyID,
			"error", err,
		)
		writeJSONError(w, http.StatusInternalServerError, "Failed to flush caches")
		return
	}

	writeJSONSuccess(w, map[string]any{
		"event":      model.EventFlushAllCaches,
		"event_id":   e.ID.String(),
		"company_id": companyID,
	})
}

// Stats handles GET /admin/cache/stats.
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.menus.CacheStats(r.Context())
	if err != nil {
		h.logger.Error("failed to read cache stats", "category", model.EventCategoryCache, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to read cache stats")
		return
	}

	writeJSONSuccess(w, map[string]any{"stats": stats})
}
