package server

import (
	"sync"
	"time"
)

// RateLimiter enforces one fixed request budget per client key over a
// sliding window.
type RateLimiter struct {
	mu            sync.Mutex
	limits        map[string]*rateLimit
	limit         int
	windowSeconds int
}

type rateLimit struct {
	count     int
	windowEnd time.Time
}

func NewRateLimiter(limit, windowSeconds int) *RateLimiter {
	return &RateLimiter{
		limits:        make(map[string]*rateLimit),
		limit:         limit,
		windowSeconds: windowSeconds,
	}
}

// Allow records a request for key and reports whether it fits the window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	window := time.Duration(rl.windowSeconds) * time.Second

	if rl.limits[key] == nil || now.After(rl.limits[key].windowEnd) {
		rl.limits[key] = &rateLimit{
			count:     1,
			windowEnd: now.Add(window),
		}
		return true
	}

	if rl.limits[key].count < rl.limit {
		rl.limits[key].count++
		return true
	}

	return false
}

// StartCleanup evicts stale windows in the background.
func (rl *RateLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			rl.mu.Lock()
			now := time.Now()
			for key, limit := range rl.limits {
				if now.After(limit.windowEnd.Add(5 * time.Minute)) {
					delete(rl.limits, key)
				}
			}
			rl.mu.Unlock()
		}
	}()
}
