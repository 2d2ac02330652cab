package http

import (
	"strconv"
	"time"

	"distribution/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware(m *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			handler := ctx.Path()
			status := ctx.Response().Status
			m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))

			return err
		}
	}
}
