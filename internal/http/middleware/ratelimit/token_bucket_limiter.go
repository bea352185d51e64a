package ratelimit

import (
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // token refill per second
	Burst      int           // bucket capacity
	TTL        time.Duration // evict buckets idle longer than this (0 keeps all)
	MaxBuckets int           // cap on tracked keys (0 means unlimited)
}

// TokenBucketLimiter keeps one token bucket per key.
type TokenBucketLimiter struct {
	cfg   Config
	clock Clock

	mu      sync.Mutex
	buckets map[string]*bucket
	swept   time.Time
}

type bucket struct {
	level    float64
	refilled time.Time
	touched  time.Time
}

// NewTokenBucketLimiter creates a limiter with the given config and clock.
// A nil clock falls back to the system clock.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// NewTokenBucketPerWindow expresses the limit as "limit requests per window".
func NewTokenBucketPerWindow(clock Clock, limit int, window, ttl time.Duration, maxBuckets int) *TokenBucketLimiter {
	if window <= 0 {
		window = time.Second
	}
	if limit <= 0 {
		limit = 1
	}
	return NewTokenBucketLimiter(clock, Config{
		Rate:       float64(limit) / window.Seconds(),
		Burst:      limit,
		TTL:        ttl,
		MaxBuckets: maxBuckets,
	})
}

// Allow reports whether key may proceed and consumes one token if so.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			return false
		}
		b = &bucket{level: float64(l.cfg.Burst), refilled: now}
		l.buckets[key] = b
	}

	b.refill(now, l.cfg.Rate, float64(l.cfg.Burst))
	b.touched = now

	if b.level < 1 {
		return false
	}
	b.level--
	return true
}

func (b *bucket) refill(now time.Time, rate, burst float64) {
	dt := now.Sub(b.refilled)
	if dt <= 0 {
		return
	}
	b.level += dt.Seconds() * rate
	if b.level > burst {
		b.level = burst
	}
	b.refilled = now
}

// sweep drops idle buckets, at most once per sweep interval. Callers must hold mu.
func (l *TokenBucketLimiter) sweep(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}

	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	if !l.swept.IsZero() && now.Sub(l.swept) < interval {
		return
	}
	l.swept = now

	for k, b := range l.buckets {
		if now.Sub(b.touched) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}
