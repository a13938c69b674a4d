// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/ocms-menu/internal/menu"
	"github.com/olegiv/ocms-menu/internal/middleware"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/obfuscate"
	"github.com/olegiv/ocms-menu/internal/service"
)

// MenuHandler serves rendered menus and active item markers.
type MenuHandler struct {
	menus  *service.MenuService
	marker *menu.Marker
	ids    obfuscate.Obfuscator
	logger *slog.Logger
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menus *service.MenuService, marker *menu.Marker, ids obfuscate.Obfuscator, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		menus:  menus,
		marker: marker,
		ids:    ids,
		logger: logger,
	}
}

// Menu handles GET /menus/{menuID}. The optional ?name= query parameter
// overrides the name used for CSS classes and the nav id.
func (h *MenuHandler) Menu(w http.ResponseWriter, r *http.Request) {
	menuID, ok := parseIDParam(r, "menuID")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Invalid menu ID")
		return
	}

	viewer, ok := middleware.ViewerFromContext(r.Context())
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "Viewer not resolved")
		return
	}

	var name *string
	if q := r.URL.Query(); q.Has("name") {
		v := q.Get("name")
		name = &v
	}

	html, err := h.menus.Menu(r.Context(), viewer, menuID, name)
	if err != nil {
		switch {
		case errors.Is(err, menu.ErrMenuNotFound):
			writeJSONError(w, http.StatusNotFound, "Menu not found")
		default:
			h.logger.Error("failed to render menu",
				"category", model.EventCategoryMenu,
				"menu_id", menuID,
				"profile_id", viewer.ProfileID,
				"error", err,
			)
			writeJSONError(w, http.StatusInternalServerError, "Failed to render menu")
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// The markup depends on the session.
	w.Header().Set("Cache-Control", "private, no-cache")
	w.Header().Set("Vary", "Cookie, Accept-Language")
	_, _ = w.Write([]byte(html))
}

// Active handles GET /menus/{menuID}/active?page={code}[&tree=1]. It returns
// the script statement marking the item linking to the page, or 204 when no
// item does.
func (h *MenuHandler) Active(w http.ResponseWriter, r *http.Request) {
	menuID, ok := parseIDParam(r, "menuID")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Invalid menu ID")
		return
	}

	code := r.URL.Query().Get("page")
	if code == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing page")
		return
	}
	pageID, err := h.ids.Decode(code, model.LabelPage)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid page")
		return
	}

	tree := r.URL.Query().Get("tree")
	script, err := h.marker.Mark(r.Context(), menuID, pageID, tree == "1" || tree == "true")
	if err != nil {
		h.logger.Error("failed to mark active menu item",
			"category", model.EventCategoryMenu,
			"menu_id", menuID,
			"page_id", pageID,
			"error", err,
		)
		writeJSONError(w, http.StatusInternalServerError, "Failed to mark active menu item")
		return
	}

	if script == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write([]byte(script))
}
