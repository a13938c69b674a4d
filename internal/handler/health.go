// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/olegiv/ocms-menu/internal/cache"
	"github.com/olegiv/ocms-menu/internal/version"
)

// Health check statuses.
const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDegraded  = "degraded"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	db         *sql.DB
	menuCache  cache.MenuCache
	adminToken string
	startTime  time.Time
}

// NewHealthHandler creates a new health handler. Callers presenting
// adminToken as a bearer token get the detailed report.
func NewHealthHandler(db *sql.DB, menuCache cache.MenuCache, adminToken string) *HealthHandler {
	return &HealthHandler{
		db:         db,
		menuCache:  menuCache,
		adminToken: adminToken,
		startTime:  time.Now(),
	}
}

// HealthStatusPublic is the minimal health response for unauthenticated callers.
type HealthStatusPublic struct {
	Status string `json:"status"`
}

// HealthStatus is the detailed health report.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains system-level information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAllocMB   uint64 `json:"mem_alloc_mb"`
}

// Health handles GET /health. A broken database makes the service
// unhealthy; a broken cache only degrades it since menus can still be
// generated.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbCheck := h.checkDatabase(r.Context())
	cacheCheck := h.checkCache(r.Context())

	overall := statusHealthy
	switch {
	case dbCheck.Status != statusHealthy:
		overall = statusUnhealthy
	case cacheCheck.Status != statusHealthy:
		overall = statusDegraded
	}

	code := http.StatusOK
	if overall == statusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	if !h.isAdmin(r) {
		writeJSON(w, code, HealthStatusPublic{Status: overall})
		return
	}

	status := HealthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   version.Get(),
		Checks: map[string]Check{
			"database": dbCheck,
			"cache":    cacheCheck,
		},
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = systemInfo()
	}

	writeJSON(w, code, status)
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if check := h.checkDatabase(r.Context()); check.Status != statusHealthy {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not_ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *HealthHandler) isAdmin(r *http.Request) bool {
	if h.adminToken == "" {
		return false
	}
	scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(raw), []byte(h.adminToken)) == 1
}

func (h *HealthHandler) checkDatabase(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.PingContext(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{Status: statusUnhealthy, Message: err.Error(), Latency: latency.String()}
	}
	return Check{Status: statusHealthy, Message: "Connected", Latency: latency.String()}
}

func (h *HealthHandler) checkCache(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	stats, err := h.menuCache.Stats(ctx)
	latency := time.Since(start)

	if err != nil {
		return Check{Status: statusDegraded, Message: err.Error(), Latency: latency.String()}
	}
	return Check{Status: statusHealthy, Message: stats.Backend, Latency: latency.String()}
}

func systemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAllocMB:   m.Alloc / 1024 / 1024,
	}
}
