package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimitStore_Increment(t *testing.T) {
	current := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	store := newMemoryRateLimitStore(func() time.Time { return current })
	ctx := context.Background()

	count, remaining, err := store.Increment(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, remaining)

	current = current.Add(20 * time.Second)
	count, remaining, err = store.Increment(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, 40*time.Second, remaining)

	count, _, err = store.Increment(ctx, "10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "keys are counted independently")

	current = current.Add(time.Minute)
	count, remaining, err = store.Increment(ctx, "10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "window resets after expiry")
	assert.Equal(t, time.Minute, remaining)
	assert.NotContains(t, store.windows, "10.0.0.2", "expired windows are swept")
}
