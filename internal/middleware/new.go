package middleware

import (
	"github.com/Farhanb1/simple-vanilla-todo/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int // <= 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
