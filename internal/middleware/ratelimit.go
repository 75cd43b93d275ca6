package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"playlisttracker/internal/config"
)

const (
	bypassHeader     = "X-Rate-Limit-Bypass"
	retryAfterSecond = "1"

	msgRateLimited   = "Too many requests."
	msgInternalError = "Internal server error."
)

// probe endpoints are never limited
var unlimitedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RateLimit applies a per-client token bucket keyed by the client IP.
func RateLimit(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if unlimitedPaths[c.Path()] {
				return true
			}
			if len(secret) == 0 {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("method", c.Request().Method),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", retryAfterSecond)
			return c.String(http.StatusTooManyRequests, msgRateLimited)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.String(http.StatusInternalServerError, msgInternalError)
		},
	})
}
