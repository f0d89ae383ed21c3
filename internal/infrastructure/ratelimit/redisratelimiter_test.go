package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "user:1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d within the limit", i+1)
	}

	allowed, err := limiter.Allow(ctx, "user:1", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "sixth request exceeds the limit")
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "user:1", 3, time.Minute)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(ctx, "user:2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "a different key has its own budget")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "user:1", 3, time.Minute)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow(ctx, "user:1", 3, time.Minute)
	require.NoError(t, err)
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "user:1"))

	allowed, err = limiter.Allow(ctx, "user:1", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "reset clears the window")
}

func TestRedisRateLimiter_ZeroLimitDisables(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	allowed, err := limiter.Allow(context.Background(), "user:1", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}
