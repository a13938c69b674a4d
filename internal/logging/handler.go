// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that also records warnings and
// errors in the event log table, so cache and rendering failures stay
// visible after the process output is gone.
package logging

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
)

// EventLogHandler wraps another slog.Handler and writes records at or above
// its level to the event log.
type EventLogHandler struct {
	inner   slog.Handler
	queries *store.Queries
	level   slog.Level
	attrs   []slog.Attr
}

// NewEventLogHandler creates an EventLogHandler recording WARN and above.
func NewEventLogHandler(inner slog.Handler, db *sql.DB) *EventLogHandler {
	return NewEventLogHandlerWithLevel(inner, db, slog.LevelWarn)
}

// NewEventLogHandlerWithLevel creates an EventLogHandler with a custom
// minimum level.
func NewEventLogHandlerWithLevel(inner slog.Handler, db *sql.DB, level slog.Level) *EventLogHandler {
	return &EventLogHandler{
		inner:   inner,
		queries: store.New(db),
		level:   level,
	}
}

// Enabled implements slog.Handler.
func (h *EventLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *EventLogHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.record(r)
	}

	return nil
}

// WithAttrs implements slog.Handler. The attributes are kept so that they
// end up in the metadata of recorded events.
func (h *EventLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(append(merged, h.attrs...), attrs...)
	return &EventLogHandler{
		inner:   h.inner.WithAttrs(attrs),
		queries: h.queries,
		level:   h.level,
		attrs:   merged,
	}
}

// WithGroup implements slog.Handler.
func (h *EventLogHandler) WithGroup(name string) slog.Handler {
	return &EventLogHandler{
		inner:   h.inner.WithGroup(name),
		queries: h.queries,
		level:   h.level,
		attrs:   h.attrs,
	}
}

func (h *EventLogHandler) record(r slog.Record) {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	// The request context may already be cancelled when a failure is logged.
	_ = h.queries.CreateEvent(context.Background(), store.CreateEventParams{
		Level:     eventLevel(r.Level),
		Category:  category(r.Message, attrs),
		Message:   r.Message,
		Metadata:  metadata(attrs),
		CreatedAt: r.Time,
	})
}

func eventLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.EventLevelError
	case level >= slog.LevelWarn:
		return model.EventLevelWarning
	default:
		return model.EventLevelInfo
	}
}

// category returns the "category" attribute, or a guess based on the
// message when there is none.
func category(message string, attrs []slog.Attr) string {
	for _, a := range attrs {
		if a.Key == "category" {
			if v := a.Value.String(); v != "" {
				return v
			}
		}
	}

	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "cache"):
		return model.EventCategoryCache
	case strings.Contains(msg, "profile"):
		return model.EventCategoryProfile
	case strings.Contains(msg, "menu"):
		return model.EventCategoryMenu
	default:
		return model.EventCategorySystem
	}
}

// metadata encodes the attributes, minus the category, as a flat JSON
// object. Later attributes win over earlier ones with the same key.
func metadata(attrs []slog.Attr) string {
	fields := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Key == "category" || a.Key == "" {
			continue
		}
		fields[a.Key] = a.Value.Resolve().String()
	}
	if len(fields) == 0 {
		return "{}"
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return "{}"
	}
	return string(b)
}
