// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxClients bounds the number of per client limiters kept in memory.
const maxClients = 10000

// idleAfter is how long a client must be quiet before its limiter may be
// dropped to make room.
const idleAfter = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters hands out one token bucket per client key.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

func newClientLimiters(rps float64, burst int) *clientLimiters {
	return &clientLimiters{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// allow reports whether key may make a request now.
func (cl *clientLimiters) allow(key string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := cl.now()
	c, ok := cl.clients[key]
	if !ok {
		if len(cl.clients) >= maxClients {
			cl.evictIdle(now)
		}
		c = &client{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// evictIdle drops quiet clients, or everyone when nobody is quiet.
func (cl *clientLimiters) evictIdle(now time.Time) {
	for key, c := range cl.clients {
		if now.Sub(c.lastSeen) > idleAfter {
			delete(cl.clients, key)
		}
	}
	if len(cl.clients) >= maxClients {
		clear(cl.clients)
	}
}

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	clients *clientLimiters
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second with
// the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{clients: newClientLimiters(rps, burst)}
}

// Middleware returns the rate limiting middleware.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)
			if !rl.clients.allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				WriteAPIError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Rate limit exceeded. Please slow down.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP returns the client address, preferring proxy headers.
func getClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	// X-Forwarded-For can contain multiple IPs; the first is the client.
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
