package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"freightmatch/internal/observability"
)

// MetricsMiddleware records request counts and latency per route. The route
// template is used as the path label so ids do not explode cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			started := time.Now()

			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			method := ctx.Request().Method
			path := ctx.Path()
			statusLabel := strconv.Itoa(status)

			observability.HTTPRequestsTotal.WithLabelValues(method, path, statusLabel).Inc()
			observability.HTTPRequestDuration.WithLabelValues(method, path, statusLabel).Observe(time.Since(started).Seconds())

			return err
		}
	}
}
