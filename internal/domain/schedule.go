package domain

import (
	"context"
	"sync"
)

//go:generate mockgen -source=schedule.go -destination=mock_schedule.go -package=domain

// DepartureWindow bounds a departures lookup to a time span relative to now.
// It mirrors the offset/duration parameters of schedule APIs: the window
// starts OffsetMinutes from now and spans DurationMinutes.
type DepartureWindow struct {
	// OffsetMinutes is the start of the window relative to now (may be negative)
	OffsetMinutes int

	// DurationMinutes is the length of the window
	DurationMinutes int
}

// ScheduleProvider supplies scheduled departures for an airport.
// Implementations must be safe for concurrent use: the search orchestrator
// fans out hub lookups in parallel.
type ScheduleProvider interface {
	// Name returns the unique identifier of this provider.
	Name() string

	// Departures returns all known scheduled departures from the given
	// airport within the window. An empty slice with a nil error means
	// "no data", which is not a failure. Rate limiting is reported as an
	// error wrapping ErrRateLimited.
	Departures(ctx context.Context, airport string, window DepartureWindow) ([]FlightSegment, error)
}

// ProviderRegistry holds registered schedule providers keyed by name.
// It is safe for concurrent use.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]ScheduleProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]ScheduleProvider),
	}
}

// Register adds a provider to the registry. A provider with the same name
// replaces the previous registration.
func (r *ProviderRegistry) Register(p ScheduleProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider with the given name, if registered.
func (r *ProviderRegistry) Get(name string) (ScheduleProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	return p, ok
}

// Count returns the number of registered providers.
func (r *ProviderRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// Names returns the names of all registered providers.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
