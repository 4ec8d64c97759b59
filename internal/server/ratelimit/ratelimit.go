// Package ratelimit provides per-client rate limiting using token buckets.
// The analysis endpoints call a paid embedding API, so they get a much
// stricter budget than plain reads.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// Rule assigns a budget to endpoints sharing a path prefix and method.
type Rule struct {
	PathPrefix string
	Method     string
	Limit      int           // requests per Window
	Window     time.Duration // refill window
	Burst      int           // bucket capacity, defaults to Limit
}

// Config holds limiter configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
}

// DefaultConfig returns the limiter configuration for the analyzer API.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			// Embedding-backed endpoints: each request costs API calls.
			{PathPrefix: "/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{PathPrefix: "/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		},
	}
}

type bucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func (b *bucket) allow(now time.Time) bool {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(b.capacity, b.tokens+elapsed*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Limiter tracks a token bucket per (client, rule) pair.
type Limiter struct {
	config  *Config
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

// NewLimiter creates a limiter with the given configuration. A nil config
// uses DefaultConfig.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow reports whether clientID may call method path right now. The
// health endpoint is never limited.
func (l *Limiter) Allow(clientID, path, method string) bool {
	if !l.config.Enabled || path == "/health" {
		return true
	}

	limit, window, burst := l.config.DefaultLimit, l.config.DefaultWindow, l.config.DefaultLimit
	key := clientID + "|default"
	for _, rule := range l.config.Rules {
		if rule.Method == method && strings.HasPrefix(path, rule.PathPrefix) {
			limit, window = rule.Limit, rule.Window
			burst = rule.Burst
			if burst == 0 {
				burst = rule.Limit
			}
			key = clientID + "|" + rule.PathPrefix + "|" + rule.Method
			break
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			capacity:   float64(burst),
			refillRate: float64(limit) / window.Seconds(),
			tokens:     float64(burst),
			lastRefill: l.now(),
		}
		l.buckets[key] = b
	}

	return b.allow(l.now())
}
