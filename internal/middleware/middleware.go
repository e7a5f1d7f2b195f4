// Package middleware holds the HTTP middleware shared by every route.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ppopeskul/convoflow/internal/config"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit       rate.Limit
	RateLimitBurst  int
	RateLimitPrefix string

	RequestTimeout time.Duration
}

// NewConfig maps the middleware section of the application config. CORS
// stays off unless enabled.
func NewConfig(cfg *config.MiddlewareConfig, logger *zap.Logger) *Config {
	c := &Config{
		Logger:          logger,
		RateLimit:       rate.Limit(cfg.RateLimit),
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPrefix: "/api",
		RequestTimeout:  config.Seconds(cfg.RequestTimeout),
	}
	if cfg.EnableCORS {
		c.CORS = DefaultCORSConfig()
		if len(cfg.AllowedOrigins) > 0 {
			c.CORS.AllowedOrigins = cfg.AllowedOrigins
		}
	}
	return c
}

// Chain builds the middleware stack. It is meant for chi's Use so that the
// matched route pattern is known when metrics are recorded.
func Chain(config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	return func(handler http.Handler) http.Handler {
		// outermost last
		h := handler

		if config.RequestTimeout > 0 {
			h = Timeout(config.RequestTimeout)(h)
		}

		if config.RateLimit > 0 {
			h = rateLimiter.ForPrefix(config.RateLimitPrefix)(h)
		}

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = Metrics(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}
}
