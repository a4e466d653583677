package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order.
// The order is important:
//  1. RequestID - First, to generate/propagate request ID for all subsequent logging
//  2. RequestLogger - Second, logs all requests with request ID
//  3. RateLimit - Third, throttled requests are still logged
//  4. Recover - Last, catches panics in the handler chain
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, rateLimit RateLimitConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(RateLimit(rateLimit))
	e.Use(Recover(log))
}

// Chain returns the standard middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, rateLimit RateLimitConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RateLimit(rateLimit),
		Recover(log),
	}
}
