// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket. Tokens refill at a steady rate up to the
// burst capacity.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, refillRate float64) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (b *bucket) allow() (bool, int, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	reset := now
	if b.tokens < float64(b.capacity) {
		deficit := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

// Info reports the limit state for one decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks one bucket per client and rule.
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	access  map[string]time.Time
	mu      sync.Mutex

	cleanupStop chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{Enabled: true, DefaultLimit: 1000, DefaultWindow: time.Minute}
	}
	l := &Limiter{
		config:      config,
		buckets:     make(map[string]*bucket),
		access:      make(map[string]time.Time),
		cleanupStop: make(chan struct{}),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow decides whether a request from the client may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	rule := l.config.match(path, method)
	key := clientID + "|" + rule.key()

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(rule.burst(), rule.refillRate())
		l.buckets[key] = b
	}
	l.access[key] = time.Now()
	l.mu.Unlock()

	allowed, remaining, reset := b.allow()
	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		info.RetryAfter = time.Until(reset)
	}
	return allowed, info
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.cleanupStop)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.dropIdle(2 * l.config.CleanupInterval)
		case <-l.cleanupStop:
			return
		}
	}
}

func (l *Limiter) dropIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.access {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.access, key)
		}
	}
}
