// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics exposes Prometheus counters for menu rendering, the menu
// cache and invalidation events.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ocms_menu"

// Label values.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
	ResultOK    = "ok"

	ScopeCompany = "company"
	ScopeProfile = "profile"
)

// IncrementalCounter is a labelled counter.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter wraps a CounterVec.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series with the given label values.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry creates and registers a counter.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{Name: name, Help: help, vec: vec}
}

// Metrics holds every collector of the service in its own registry.
type Metrics struct {
	registry *prometheus.Registry

	CacheLookups  *Counter // result
	CacheWrites   *Counter // result
	CacheFlushes  *Counter // scope
	Renders       *Counter // generator, result
	Events        *Counter // event, result
	renderSeconds *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	renderSeconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "render_duration_seconds",
		Help:      "Time spent generating menus on cache misses.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"generator"})
	reg.MustRegister(renderSeconds)

	return &Metrics{
		registry:      reg,
		CacheLookups:  NewCounterWithRegistry(reg, "cache_lookups_total", "Menu cache lookups by result.", "result"),
		CacheWrites:   NewCounterWithRegistry(reg, "cache_writes_total", "Menu cache writes by result.", "result"),
		CacheFlushes:  NewCounterWithRegistry(reg, "cache_flushes_total", "Menu cache invalidations by scope.", "scope"),
		Renders:       NewCounterWithRegistry(reg, "renders_total", "Menu generations by generator and result.", "generator", "result"),
		Events:        NewCounterWithRegistry(reg, "events_total", "Invalidation events handled.", "event", "result"),
		renderSeconds: renderSeconds,
	}
}

// ObserveRender records the duration of one generation.
func (m *Metrics) ObserveRender(generator string, d time.Duration) {
	m.renderSeconds.WithLabelValues(generator).Observe(d.Seconds())
}

// Registry returns the registry of m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
