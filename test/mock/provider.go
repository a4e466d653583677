// Package mock provides test doubles for the itinerary search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific departure boards).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// ScheduleProvider is a configurable mock implementation of
// domain.ScheduleProvider. It serves per-airport departure boards and
// supports configurable delays and errors for testing timeout and
// partial-failure scenarios.
type ScheduleProvider struct {
	name       string
	departures map[string][]domain.FlightSegment
	errs       map[string]error
	err        error
	delay      time.Duration
	callCount  int
	mu         sync.Mutex
}

// NewScheduleProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewScheduleProvider(name string) *ScheduleProvider {
	return &ScheduleProvider{
		name:       name,
		departures: make(map[string][]domain.FlightSegment),
		errs:       make(map[string]error),
	}
}

// WithDepartures configures the departure board for an airport.
func (p *ScheduleProvider) WithDepartures(airport string, segments []domain.FlightSegment) *ScheduleProvider {
	p.departures[airport] = segments
	return p
}

// WithAirportError configures an error for lookups of a single airport.
func (p *ScheduleProvider) WithAirportError(airport string, err error) *ScheduleProvider {
	p.errs[airport] = err
	return p
}

// WithError configures the provider to fail every lookup with err.
func (p *ScheduleProvider) WithError(err error) *ScheduleProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *ScheduleProvider) WithDelay(d time.Duration) *ScheduleProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *ScheduleProvider) Name() string {
	return p.name
}

// Departures implements domain.ScheduleProvider. It respects context
// cancellation, applies the configured delay, and returns the configured
// board or error for the airport.
func (p *ScheduleProvider) Departures(ctx context.Context, airport string, window domain.DepartureWindow) ([]domain.FlightSegment, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}
	if err, ok := p.errs[airport]; ok {
		return nil, err
	}

	return p.departures[airport], nil
}

// CallCount returns the number of times Departures was called.
func (p *ScheduleProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *ScheduleProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure ScheduleProvider implements domain.ScheduleProvider at compile time.
var _ domain.ScheduleProvider = (*ScheduleProvider)(nil)
