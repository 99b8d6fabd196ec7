package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterEnforcesAuthPool(t *testing.T) {
	limiter := NewMemoryLimiter(Config{Prefix: PoolAuth, Limit: 10, Window: 60 * time.Second})
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		result, err := limiter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, result.Allowed, "attempt %d should be admitted", i+1)
		assert.Equal(t, 10-(i+1), result.Remaining)
	}

	result, err := limiter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, result.Allowed, "11th attempt within the window must be rejected")
	assert.Equal(t, 10, result.Limit)
	assert.InDelta(t, 60, result.RetryAfter.Seconds(), 1)
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(Config{Prefix: PoolGeneral, Limit: 1, Window: time.Minute})
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "a different client IP uses its own counter")
}

func TestMemoryLimiterWindowResets(t *testing.T) {
	limiter := NewMemoryLimiter(Config{Prefix: PoolMutation, Limit: 1, Window: 60 * time.Second})
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	current = current.Add(61 * time.Second)

	fresh, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, fresh.Allowed, "a new window starts after the reset time")
}
