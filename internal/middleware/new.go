package middleware

import (
	"time"

	"pacekeeper/pkg/log"
)

// Config tunes the per-client limiter. Zero values take the defaults.
type Config struct {
	RequestsPerMin int
	MaxClients     int
	ClientTTL      time.Duration
}

const (
	DefaultRequestsPerMin = 120
	DefaultMaxClients     = 1000
	DefaultClientTTL      = 5 * time.Minute
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = DefaultRequestsPerMin
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = DefaultMaxClients
	}
	if cfg.ClientTTL <= 0 {
		cfg.ClientTTL = DefaultClientTTL
	}
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg),
	}
}
