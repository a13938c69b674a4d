// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/model"
)

// EventsHandler raises invalidation events on behalf of other systems, for
// example after the permissions of a profile were edited.
type EventsHandler struct {
	bus       *event.Bus
	companyID int64
	logger    *slog.Logger
}

// NewEventsHandler creates a new EventsHandler. companyID is used when a
// request does not name a company.
func NewEventsHandler(bus *event.Bus, companyID int64, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		bus:       bus,
		companyID: companyID,
		logger:    logger,
	}
}

// ProfileChanged handles POST /admin/events/profile-changed/{profileID}.
func (h *EventsHandler) ProfileChanged(w http.ResponseWriter, r *http.Request) {
	h.publishProfileEvent(w, r, model.EventProfileChanged)
}

// ProfileObsolete handles POST /admin/events/profile-obsolete/{profileID}.
func (h *EventsHandler) ProfileObsolete(w http.ResponseWriter, r *http.Request) {
	h.publishProfileEvent(w, r, model.EventProfileObsolete)
}

func (h *EventsHandler) publishProfileEvent(w http.ResponseWriter, r *http.Request, name string) {
	profileID, ok := parseIDParam(r, "profileID")
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Invalid profile ID")
		return
	}
	companyID, ok := companyParam(r, h.companyID)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	e, err := h.bus.Publish(r.Context(), name, model.ProfileEvent{
		CompanyID: companyID,
		ProfileID: profileID,
	})
	if err != nil {
		h.logger.Error("failed to handle profile event",
			"category", model.EventCategoryProfile,
			"event", name,
			"profile_id", profileID,
			"error", err,
		)
		writeJSONError(w, http.StatusInternalServerError, "Failed to handle event")
		return
	}

	writeJSONSuccess(w, map[string]any{
		"event":      name,
		"event_id":   e.ID.String(),
		"company_id": companyID,
		"profile_id": profileID,
	})
}

// companyParam reads the optional ?company= query parameter.
func companyParam(r *http.Request, fallback int64) (int64, bool) {
	raw := r.URL.Query().Get("company")
	if raw == "" {
		return fallback, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
