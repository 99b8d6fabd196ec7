package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of a single admission attempt.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter admits or rejects requests for a key (client IP) within a fixed
// window. The in-process implementation suffices on a single node; behind
// multiple instances the Redis implementation shares counters, so the two
// are interchangeable behind this interface.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Pool names key the three independent limiter pools.
const (
	PoolGeneral  = "general"
	PoolAuth     = "auth"
	PoolMutation = "mutation"
)

// Config holds one pool's window settings.
type Config struct {
	Prefix string
	Limit  int
	Window time.Duration
}

// Pools bundles the three limiters the router installs.
type Pools struct {
	General  Limiter
	Auth     Limiter
	Mutation Limiter
}
