// Package ratelimit caps requests per client per minute using a shared
// counter. Counter failures let the request through.
package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const checkTimeout = 2 * time.Second

// Counter is implemented by the Redis cache.
type Counter interface {
	IncrementRateLimit(ctx context.Context, subject string) (int64, error)
}

type Limiter struct {
	counter Counter
	limit   int64
	logger  *zap.Logger
}

// New returns a Limiter allowing limit requests per subject per minute. A nil
// counter or a non-positive limit gives a limiter that allows everything.
func New(counter Counter, limit int, logger *zap.Logger) *Limiter {
	return &Limiter{
		counter: counter,
		limit:   int64(limit),
		logger:  logger,
	}
}

func (l *Limiter) Enabled() bool {
	return l != nil && l.counter != nil && l.limit > 0
}

func (l *Limiter) Limit() int {
	return int(l.limit)
}

// Allow counts a request for subject and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, subject string) bool {
	if !l.Enabled() {
		return true
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	count, err := l.counter.IncrementRateLimit(ctx, subject)
	if err != nil {
		l.logger.Error("failed to check rate limit",
			zap.String("subject", subject),
			zap.Error(err),
		)
		return true
	}

	if count > l.limit {
		l.logger.Warn("rate limit exceeded",
			zap.String("subject", subject),
			zap.Int64("count", count),
		)
		return false
	}

	return true
}
