package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryWindow struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a process-wide fixed-window counter keyed by client IP.
// Counters reset on process restart and are not shared across instances.
type MemoryLimiter struct {
	mu      sync.Mutex
	config  Config
	windows map[string]*memoryWindow
	now     func() time.Time
}

func NewMemoryLimiter(config Config) *MemoryLimiter {
	return &MemoryLimiter{
		config:  config,
		windows: make(map[string]*memoryWindow),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(l.config.Window)}
		l.windows[key] = w
	}

	w.count++
	if w.count > l.config.Limit {
		return &Result{
			Allowed:    false,
			Limit:      l.config.Limit,
			Remaining:  0,
			RetryAfter: w.resetAt.Sub(now),
		}, nil
	}

	return &Result{
		Allowed:   true,
		Limit:     l.config.Limit,
		Remaining: l.config.Limit - w.count,
	}, nil
}
