package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"playlisttracker/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request. Paths are route templates
// (/urls/:id), never raw request paths.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			statusCode := c.Response().Status
			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       cmp.Or(c.Path(), "/"),
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
				Error:      errStr,
			})

			return err
		}
	}
}
