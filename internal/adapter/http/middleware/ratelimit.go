package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/flight-deals/cheapest-itinerary-service/internal/adapter/http/response"
)

// RateLimitConfig controls the per-client request throttle.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate allowed per client IP.
	RequestsPerSecond float64

	// Burst is the number of requests a client may send above the sustained
	// rate before being throttled.
	Burst int

	// ExpiresIn is how long an idle client's limiter state is kept.
	ExpiresIn time.Duration
}

// DefaultRateLimitConfig returns the default throttle configuration.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		Burst:             20,
		ExpiresIn:         3 * time.Minute,
	}
}

// RateLimit returns middleware that throttles requests per client IP using a
// token bucket. Throttled requests receive the same 503 "service busy"
// response as an upstream rate limit, so clients handle both cases uniformly.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(config.RequestsPerSecond),
		Burst:     config.Burst,
		ExpiresIn: config.ExpiresIn,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.InternalServerError(c)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.RateLimited(c)
		},
	})
}
