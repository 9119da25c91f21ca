package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is an in-memory sliding window counter keyed by an arbitrary
// string (the client IP for public pages).
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time
	swept   time.Time
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// TooMany reports whether key has reached maxHits within the window.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()

	return len(r.prune(key)) >= r.maxHits
}

// Hit records one occurrence for key.
func (r *MemoryLimiter) Hit(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep()
	r.history[key] = append(r.prune(key), r.now())
}

// sweep drops every expired key, at most once per window.
func (r *MemoryLimiter) sweep() {
	now := r.now()
	if now.Sub(r.swept) < r.window {
		return
	}

	r.swept = now

	for key := range r.history {
		r.prune(key)
	}
}

func (r *MemoryLimiter) prune(key string) []time.Time {
	now := r.now()
	slice := r.history[key]

	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) == 0 {
		delete(r.history, key)

		return nil
	}

	r.history[key] = pruned

	return pruned
}
