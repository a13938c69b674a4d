// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package event provides a synchronous in-process event bus. Components
// that change state publish named events; other components subscribe to
// keep derived data, such as cached menus, consistent.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one published occurrence.
type Event struct {
	ID         uuid.UUID
	Name       string
	Payload    any
	OccurredAt time.Time
}

// HandlerFunc handles an event. If it returns an error, subsequent handlers
// are not called.
type HandlerFunc func(ctx context.Context, e Event) error

// Handler wraps a HandlerFunc with metadata.
type Handler struct {
	Name     string      // Name of the handler for debugging
	Priority int         // Lower priority runs first (default: 0)
	Fn       HandlerFunc // The actual handler function
}

// Bus dispatches events to subscribed handlers.
type Bus struct {
	handlers map[string][]Handler
	logger   *slog.Logger
	mu       sync.RWMutex
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Subscribe adds a handler for the named event.
func (b *Bus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Copy so that a Publish in flight keeps its own slice.
	existing := b.handlers[eventName]
	handlers := make([]Handler, 0, len(existing)+1)
	handlers = append(append(handlers, existing...), handler)
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].Priority < handlers[j].Priority
	})
	b.handlers[eventName] = handlers

	b.logger.Debug("event handler subscribed",
		"event", eventName,
		"handler", handler.Name,
		"priority", handler.Priority,
	)
}

// SubscribeFunc is a convenience method to subscribe a function with
// default priority.
func (b *Bus) SubscribeFunc(eventName, handlerName string, fn HandlerFunc) {
	b.Subscribe(eventName, Handler{Name: handlerName, Fn: fn})
}

// Publish delivers an event to every handler of its name, in priority order,
// on the calling goroutine. It returns the event as delivered.
func (b *Bus) Publish(ctx context.Context, eventName string, payload any) (Event, error) {
	e := Event{
		ID:         uuid.New(),
		Name:       eventName,
		Payload:    payload,
		OccurredAt: time.Now(),
	}

	b.mu.RLock()
	handlers := b.handlers[eventName]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("event without handlers", "event", eventName, "event_id", e.ID)
		return e, nil
	}

	b.logger.Debug("publishing event", "event", eventName, "event_id", e.ID, "handlers", len(handlers))

	for _, handler := range handlers {
		if err := handler.Fn(ctx, e); err != nil {
			b.logger.Error("event handler error",
				"event", eventName,
				"event_id", e.ID,
				"handler", handler.Name,
				"error", err,
			)
			return e, fmt.Errorf("event %s handler %s: %w", eventName, handler.Name, err)
		}
	}

	return e, nil
}

// HandlerCount returns the number of handlers subscribed to an event.
func (b *Bus) HandlerCount(eventName string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[eventName])
}

// Events returns the names of all events with subscribers, sorted.
func (b *Bus) Events() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
