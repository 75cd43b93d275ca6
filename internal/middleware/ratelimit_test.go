package middleware_test

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlisttracker/internal/config"
	"playlisttracker/internal/middleware"
)

func newLimitedEcho(cfg *config.RateLimitConfig) *echo.Echo {
	e := echo.New()
	e.Use(middleware.RateLimit(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/urls", ok)
	e.GET("/health", ok)
	return e
}

func doRequest(e *echo.Echo, path, ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":12345"
	if bypass != "" {
		req.Header.Set("X-Rate-Limit-Bypass", bypass)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsRequestsUnderLimit(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 10, Burst: 5, ExpireMinutes: 1})

	for i := range 5 {
		rec := doRequest(e, "/urls", "192.168.1.1", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should succeed", i)
	}
}

func TestRateLimit_BlocksRequestsOverLimit(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 1, Burst: 2, ExpireMinutes: 1})

	var rateLimited bool
	for range 10 {
		if doRequest(e, "/urls", "192.168.1.2", "").Code == http.StatusTooManyRequests {
			rateLimited = true
			break
		}
	}

	assert.True(t, rateLimited, "expected at least one request to be rate limited")
}

func TestRateLimit_Returns429PlainText(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	doRequest(e, "/urls", "192.168.1.3", "")
	rec := doRequest(e, "/urls", "192.168.1.3", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "Too many requests.", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestRateLimit_DifferentIPsHaveSeparateLimits(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	assert.Equal(t, http.StatusOK, doRequest(e, "/urls", "192.168.1.4", "").Code, "IP1 first request should succeed")
	assert.Equal(t, http.StatusOK, doRequest(e, "/urls", "192.168.1.5", "").Code, "IP2 first request should succeed")
}

func TestRateLimit_HealthIsNeverLimited(t *testing.T) {
	e := newLimitedEcho(&config.RateLimitConfig{RPS: 0.1, Burst: 1, ExpireMinutes: 1})

	for i := range 5 {
		rec := doRequest(e, "/health", "192.168.1.9", "")
		assert.Equal(t, http.StatusOK, rec.Code, "health probe %d should succeed", i)
	}
}

func TestRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantSecond int
	}{
		{"correct secret", "test_secret", "test_secret", http.StatusOK},
		{"wrong secret", "test_secret", "wrong_secret", http.StatusTooManyRequests},
		{"bypass disabled when secret empty", "", "any_value", http.StatusTooManyRequests},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitedEcho(&config.RateLimitConfig{
				RPS:           0.1,
				Burst:         1,
				ExpireMinutes: 1,
				BypassSecret:  tt.secret,
			})
			ip := fmt.Sprintf("10.0.0.%d", i+1)

			doRequest(e, "/urls", ip, tt.header)
			rec := doRequest(e, "/urls", ip, tt.header)

			assert.Equal(t, tt.wantSecond, rec.Code)
		})
	}
}
