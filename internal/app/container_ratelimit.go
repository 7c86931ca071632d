package app

import (
	"mdelivery-zones/internal/config"
	"mdelivery-zones/internal/http/middleware/ratelimit"
	"mdelivery-zones/internal/logx"
	"mdelivery-zones/internal/metrics"
)

func newRateLimiter(cfg *config.Config, clock ratelimit.Clock) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewKeyedLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

func newRateLimitMiddleware(logger logx.Logger, m *metrics.Registry, limiter ratelimit.Limiter) *ratelimit.Middleware {
	return ratelimit.New(logger, m.RateLimited, limiter)
}
