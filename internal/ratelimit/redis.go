package ratelimit

import (
	"context"
	"fmt"
	"time"

	"travelog/pkg/cache"
	"travelog/pkg/logger"
)

// RedisLimiter keeps window counters in Redis so every instance behind a
// load balancer sees the same counts. The counter is INCRed per request and
// given the window TTL on first hit.
type RedisLimiter struct {
	cache  *cache.RedisCache
	config Config
	logger *logger.Logger
}

func NewRedisLimiter(cache *cache.RedisCache, config Config, log *logger.Logger) *RedisLimiter {
	return &RedisLimiter{
		cache:  cache,
		config: config,
		logger: log,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (*Result, error) {
	counterKey := fmt.Sprintf("ratelimit:%s:%s", l.config.Prefix, key)

	count, err := l.cache.Increment(ctx, counterKey)
	if err != nil {
		// Fail open when the counter store is unreachable.
		l.logger.WithError(err).Warn("rate limiter unavailable, admitting request")
		return &Result{Allowed: true, Limit: l.config.Limit, Remaining: 0}, nil
	}

	if count == 1 {
		if err := l.cache.SetExpire(ctx, counterKey, l.config.Window); err != nil {
			l.logger.WithError(err).Warn("failed to set rate limit window expiry")
		}
	}

	if int(count) > l.config.Limit {
		retryAfter := l.config.Window
		if ttl, err := l.cache.GetTTL(ctx, counterKey); err == nil && ttl > 0 {
			retryAfter = ttl
		}
		return &Result{
			Allowed:    false,
			Limit:      l.config.Limit,
			Remaining:  0,
			RetryAfter: retryAfter,
		}, nil
	}

	return &Result{
		Allowed:   true,
		Limit:     l.config.Limit,
		Remaining: l.config.Limit - int(count),
	}, nil
}

var _ Limiter = (*RedisLimiter)(nil)
var _ Limiter = (*MemoryLimiter)(nil)

// NewPools builds the three standard pools: general 100/60s, auth 10/60s,
// mutation 30/60s. With a nil cache the in-memory implementation is used.
func NewPools(c *cache.RedisCache, log *logger.Logger, general, auth, mutation Config) *Pools {
	build := func(cfg Config) Limiter {
		if c != nil {
			return NewRedisLimiter(c, cfg, log)
		}
		return NewMemoryLimiter(cfg)
	}
	return &Pools{
		General:  build(general),
		Auth:     build(auth),
		Mutation: build(mutation),
	}
}

// DefaultConfigs returns the standard pool settings.
func DefaultConfigs() (general, auth, mutation Config) {
	general = Config{Prefix: PoolGeneral, Limit: 100, Window: 60 * time.Second}
	auth = Config{Prefix: PoolAuth, Limit: 10, Window: 60 * time.Second}
	mutation = Config{Prefix: PoolMutation, Limit: 30, Window: 60 * time.Second}
	return general, auth, mutation
}
