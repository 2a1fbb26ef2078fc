package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// Timeout puts a deadline on the request context so every store round-trip
// downstream is bounded. Handlers map the resulting context errors like any
// other store failure.
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
