// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic jobs, such as dropping every cached menu
// on a fixed schedule.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/ocms-menu/internal/event"
	"github.com/olegiv/ocms-menu/internal/model"
	"github.com/olegiv/ocms-menu/internal/store"
)

// jobTimeout bounds a single run of a job.
const jobTimeout = time.Minute

// Scheduler runs cron jobs.
type Scheduler struct {
	bus       *event.Bus
	queries   *store.Queries
	companyID int64
	cron      *cron.Cron
	logger    *slog.Logger
}

// New creates a new scheduler instance. queries may be nil, in which case
// job runs are only logged and not recorded in the event log.
func New(bus *event.Bus, queries *store.Queries, companyID int64, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		bus:       bus,
		queries:   queries,
		companyID: companyID,
		cron:      cron.New(),
		logger:    logger,
	}
}

// ScheduleFlush adds a job raising the flush-all event on the standard cron
// schedule spec. An empty spec adds nothing.
func (s *Scheduler) ScheduleFlush(spec string) error {
	if spec == "" {
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := s.Flush(ctx); err != nil {
			s.logger.Error("scheduled cache flush failed",
				"category", model.EventCategoryCache,
				"company_id", s.companyID,
				"error", err,
			)
		}
	})
	if err != nil {
		return fmt.Errorf("adding flush job %q: %w", spec, err)
	}
	return nil
}

// Flush raises the flush-all event for the company of the scheduler and
// records it in the event log.
func (s *Scheduler) Flush(ctx context.Context) error {
	e, err := s.bus.Publish(ctx, model.EventFlushAllCaches, model.FlushEvent{CompanyID: s.companyID})
	if err != nil {
		return err
	}

	s.logger.Info("scheduled cache flush", "company_id", s.companyID, "event_id", e.ID)

	if s.queries == nil {
		return nil
	}

	metadata, _ := json.Marshal(map[string]any{
		"company_id": s.companyID,
		"event_id":   e.ID.String(),
	})
	if err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     model.EventLevelInfo,
		Category:  model.EventCategoryCache,
		Message:   "Menu caches flushed by scheduler",
		Metadata:  string(metadata),
		CreatedAt: e.OccurredAt,
	}); err != nil {
		s.logger.Warn("failed to log scheduled flush event", "error", err)
	}

	return nil
}

// Jobs returns the number of scheduled jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

// Start begins running the scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", s.Jobs())
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
