package service

import (
	"sync"
	"time"
)

const (
	// bucketSweepInterval is how often the background sweep runs.
	bucketSweepInterval = 5 * time.Minute
	// bucketStaleAfter is how long a key may sit untouched before its
	// bucket is dropped.
	bucketStaleAfter = 10 * time.Minute
)

// TokenBucket is an in-memory per-key rate limiter using the token bucket
// algorithm. The generate endpoint keys it by user ID so one user cannot
// hammer the upstream text provider. Safe for concurrent use; stale buckets
// are cleaned up in the background.
type TokenBucket struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens added per second
	capacity float64 // maximum tokens
	now      func() time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// refill credits tokens for the time elapsed since the last touch,
// capped at capacity.
func (b *bucket) refill(now time.Time, rate, capacity float64) {
	b.tokens = min(b.tokens+now.Sub(b.last).Seconds()*rate, capacity)
	b.last = now
}

// NewTokenBucket creates a rate limiter that allows up to capacity requests
// per key, refilling at the given rate (tokens per second). It starts a
// background goroutine that periodically removes stale buckets.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	tb := newTokenBucket(rate, capacity, time.Now)
	go tb.sweepLoop()
	return tb
}

// newTokenBucket wires an explicit clock and starts no background sweep.
func newTokenBucket(rate, capacity float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		now:      now,
	}
}

// Allow reports whether the given key may proceed under the rate limit.
// Each call consumes one token; a new key starts with a full bucket.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.now()
	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}
	b.refill(now, tb.rate, tb.capacity)

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (tb *TokenBucket) sweepLoop() {
	ticker := time.NewTicker(bucketSweepInterval)
	for range ticker.C {
		tb.sweep()
	}
}

// sweep drops buckets idle for longer than bucketStaleAfter.
func (tb *TokenBucket) sweep() {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	cutoff := tb.now().Add(-bucketStaleAfter)
	for key, b := range tb.buckets {
		if b.last.Before(cutoff) {
			delete(tb.buckets, key)
		}
	}
}
