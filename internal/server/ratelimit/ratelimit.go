// Package ratelimit provides per-client rate limiting for the analyze
// endpoints using a token bucket per client.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a steady request rate with a burst capacity.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills based on elapsed time, then consumes one token if available.
// Returns whether the request is allowed, the remaining tokens, when the
// bucket will be full again, and on denial how long until one token is
// available. One token is enough to admit the next request, so retryAfter
// is much shorter than the full-bucket horizon.
func (b *tokenBucket) take() (allowed bool, remaining int, reset time.Time, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > float64(b.capacity) {
		b.tokens = float64(b.capacity)
	}
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens--
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < float64(b.capacity) {
		deficit := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
	}
	if !allowed {
		retryAfter = time.Duration((1.0 - b.tokens) / b.refillRate * float64(time.Second))
	}
	return allowed, remaining, reset, retryAfter
}

// Info describes the outcome of one rate limit decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings.
type Config struct {
	Disabled        bool
	PerMinute       int // sustained requests per minute per client
	Burst           int // burst capacity per client
	CleanupInterval time.Duration
	IdleEviction    time.Duration
}

// Limiter manages one token bucket per client.
type Limiter struct {
	mu         sync.Mutex
	cfg        Config
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	stop       chan struct{}
	ticker     *time.Ticker
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(cfg Config) *Limiter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 30
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.PerMinute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}
	if cfg.IdleEviction <= 0 {
		cfg.IdleEviction = time.Hour
	}

	l := &Limiter{
		cfg:        cfg,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}
	if !cfg.Disabled {
		l.stop = make(chan struct{})
		l.ticker = time.NewTicker(cfg.CleanupInterval)
		go l.cleanupLoop()
	}
	return l
}

// Allow decides whether a request from the given client may proceed.
func (l *Limiter) Allow(clientID string) Info {
	if l.cfg.Disabled {
		return Info{Allowed: true}
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = newTokenBucket(l.cfg.Burst, float64(l.cfg.PerMinute)/60.0)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	allowed, remaining, reset, retryAfter := bucket.take()
	return Info{
		Allowed:    allowed,
		Limit:      l.cfg.PerMinute,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets that have not been used recently.
func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-l.cfg.IdleEviction)
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, id)
			delete(l.lastAccess, id)
		}
	}
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
