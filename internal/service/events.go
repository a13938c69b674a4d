// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegiv/ocms-menu/internal/cache"
	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/metrics"
	"github.com/olegiv/ocms-menu/internal/model"
)

// MenuEventHandler drops cached menus when the data they were rendered from
// may have changed.
type MenuEventHandler struct {
	menuCache cache.MenuCache
	metrics   *metrics.Metrics
	logger    *slog.Logger
	companyID int64
}

// NewMenuEventHandler creates a MenuEventHandler. companyID is used for
// events that do not name a company.
func NewMenuEventHandler(menuCache cache.MenuCache, m *metrics.Metrics, logger *slog.Logger, companyID int64) *MenuEventHandler {
	return &MenuEventHandler{
		menuCache: menuCache,
		metrics:   m,
		logger:    logger,
		companyID: companyID,
	}
}

// Subscribe registers the handler for profile and flush events.
func (h *MenuEventHandler) Subscribe(bus *event.Bus) {
	bus.SubscribeFunc(model.EventProfileChanged, "menu.flush_profile", h.HandleProfileEvent)
	bus.SubscribeFunc(model.EventProfileObsolete, "menu.flush_profile", h.HandleProfileEvent)
	bus.SubscribeFunc(model.EventFlushAllCaches, "menu.flush_all", h.HandleFlushAllEvent)
}

// HandleProfileEvent flushes the menus of the profile named by a
// model.ProfileEvent.
func (h *MenuEventHandler) HandleProfileEvent(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(model.ProfileEvent)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}
	companyID := h.company(payload.CompanyID)

	if err := h.menuCache.FlushForProfile(ctx, companyID, payload.ProfileID); err != nil {
		h.metrics.Events.Increment(e.Name, metrics.ResultError)
		return err
	}
	h.metrics.CacheFlushes.Increment(metrics.ScopeProfile)
	h.metrics.Events.Increment(e.Name, metrics.ResultOK)

	h.logger.Info("menu cache flushed for profile",
		"event", e.Name,
		"event_id", e.ID,
		"company_id", companyID,
		"profile_id", payload.ProfileID,
	)
	return nil
}

// HandleFlushAllEvent flushes every menu of the company named by a
// model.FlushEvent.
func (h *MenuEventHandler) HandleFlushAllEvent(ctx context.Context, e event.Event) error {
	var companyID int64
	switch payload := e.Payload.(type) {
	case model.FlushEvent:
		companyID = payload.CompanyID
	case nil:
	default:
		return fmt.Errorf("unexpected payload %T for %s", e.Payload, e.Name)
	}
	companyID = h.company(companyID)

	if err := h.menuCache.Flush(ctx, companyID); err != nil {
		h.metrics.Events.Increment(e.Name, metrics.ResultError)
		return err
	}
	h.metrics.CacheFlushes.Increment(metrics.ScopeCompany)
	h.metrics.Events.Increment(e.Name, metrics.ResultOK)

	h.logger.Info("menu cache flushed",
		"event", e.Name,
		"event_id", e.ID,
		"company_id", companyID,
	)
	return nil
}

func (h *MenuEventHandler) company(id int64) int64 {
	if id == 0 {
		return h.companyID
	}
	return id
}
