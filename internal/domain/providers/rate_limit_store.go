package providers

import (
	"context"
	"time"
)

// RateLimitStore counts hits per key within a fixed window
type RateLimitStore interface {
	// Increment adds one hit to key and returns the count in the current
	// window together with the time left until the window resets
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}
