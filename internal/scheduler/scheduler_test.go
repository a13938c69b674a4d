// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/goleak"

	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
	"github.com/olegiv/ocms-menu/internal/testutil"
)

func TestScheduleFlush(t *testing.T) {
	logger := testutil.TestLoggerSilent()

	tests := []struct {
		name    string
		spec    string
		jobs    int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"hourly", "@hourly", 1, false},
		{"nightly", "0 3 * * *", 1, false},
		{"invalid", "every night", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(event.NewBus(logger), nil, 1, logger)

			err := s.ScheduleFlush(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ScheduleFlush() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := s.Jobs(); got != tt.jobs {
				t.Errorf("Jobs() = %d, want %d", got, tt.jobs)
			}
		})
	}
}

func TestFlush(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := testutil.TestLoggerSilent()
	bus := event.NewBus(logger)

	var got []model.FlushEvent
	bus.SubscribeFunc(model.EventFlushAllCaches, "recorder", func(_ context.Context, e event.Event) error {
		got = append(got, e.Payload.(model.FlushEvent))
		return nil
	})

	queries := store.New(db)
	s := New(bus, queries, 7, logger)
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if len(got) != 1 || got[0].CompanyID != 7 {
		t.Errorf("published = %+v, want one flush of company 7", got)
	}

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Category != model.EventCategoryCache {
		t.Errorf("Category = %q, want %q", events[0].Category, model.EventCategoryCache)
	}
}

func TestFlush_HandlerError(t *testing.T) {
	logger := testutil.TestLoggerSilent()
	bus := event.NewBus(logger)
	bus.SubscribeFunc(model.EventFlushAllCaches, "failing", func(context.Context, event.Event) error {
		return errors.New("cache down")
	})

	if err := New(bus, nil, 1, logger).Flush(context.Background()); err == nil {
		t.Error("Flush() should return the handler error")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger := testutil.TestLoggerSilent()
	s := New(event.NewBus(logger), nil, 1, logger)
	if err := s.ScheduleFlush("@every 1h"); err != nil {
		t.Fatalf("ScheduleFlush() error = %v", err)
	}

	s.Start()
	s.Stop()
}
