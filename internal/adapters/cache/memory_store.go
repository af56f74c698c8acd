package cache

import (
	"context"
	"sync"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/providers"
)

// MemoryRateLimitStore keeps fixed-window counters in process memory.
// It backs the rate limiter when Redis is unavailable.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	now     func() time.Time
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// NewMemoryRateLimitStore creates an in-process rate limit store
func NewMemoryRateLimitStore() providers.RateLimitStore {
	return newMemoryRateLimitStore(time.Now)
}

func newMemoryRateLimitStore(now func() time.Time) *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]*memoryWindow),
		now:     now,
	}
}

// Increment counts a hit in the key's current window
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		s.sweep(now)
		w = &memoryWindow{resetAt: now.Add(window)}
		s.windows[key] = w
	}

	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

// sweep drops expired windows so idle clients do not accumulate
func (s *MemoryRateLimitStore) sweep(now time.Time) {
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}
