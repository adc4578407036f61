// Package ratelimit provides a keyed in-memory request limiter.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter bounds request frequency per client key.
// State is process-local; this is explicitly not a distributed rate limiter.
type Limiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter that allows max requests per window for each key.
// A token bucket of size max refilling at max/window approximates the
// rolling window.
func New(max int, window time.Duration) *Limiter {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		clients:   make(map[string]*client),
		limit:     rate.Every(window / time.Duration(max)),
		burst:     max,
		idleAfter: window,
		lastSweep: time.Now(),
	}
}

// Allow reports whether the request identified by key may proceed,
// consuming one slot when it does. Safe for concurrent use.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.Allow()
}

// sweep drops keys idle for longer than the window. Called with mu held.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}
	l.lastSweep = now
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.idleAfter {
			delete(l.clients, key)
		}
	}
}
