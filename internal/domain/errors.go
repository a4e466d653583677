package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search core. Handlers map these to HTTP responses
// with errors.Is.
var (
	// ErrInvalidRequest indicates the search criteria failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoItineraries indicates the search completed but produced no
	// usable candidates. This is a "no results" outcome, not a failure.
	ErrNoItineraries = errors.New("no itineraries found")

	// ErrRateLimited indicates the upstream schedules provider rejected a
	// lookup for being too busy. Unlike other provider failures it aborts
	// the whole search so the boundary can answer "service busy" instead
	// of "no results".
	ErrRateLimited = errors.New("schedule provider rate limited")

	// ErrScheduleUnavailable indicates a schedule lookup failed for a
	// reason other than rate limiting or "no data".
	ErrScheduleUnavailable = errors.New("schedule data unavailable")
)

// ScheduleError wraps a failure from a schedules provider with the provider
// name and the airport whose departures were being fetched.
type ScheduleError struct {
	// Provider is the name of the schedules provider that failed
	Provider string

	// Airport is the IATA code of the airport being queried
	Airport string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *ScheduleError) Error() string {
	return fmt.Sprintf("provider %s: departures for %s: %v", e.Provider, e.Airport, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError creates a ScheduleError for a failed departure lookup.
func NewScheduleError(provider, airport string, err error) *ScheduleError {
	return &ScheduleError{
		Provider: provider,
		Airport:  airport,
		Err:      err,
	}
}

// IsRateLimited reports whether err carries the rate-limit signal anywhere
// in its chain.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
