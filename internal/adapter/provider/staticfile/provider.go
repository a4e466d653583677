// Package staticfile implements a ScheduleProvider backed by a JSON fixture
// file. It serves deterministic departure boards for local development and
// demos, with flight times expressed relative to the current time so the
// fixtures never go stale.
package staticfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "staticfile"

// Provider serves departures from a JSON fixture file.
type Provider struct {
	path  string
	clock timeutil.Clock
}

// scheduleFile is the on-disk fixture format. Departure times are minutes
// relative to "now" so fixtures stay valid indefinitely.
type scheduleFile struct {
	Airports map[string][]scheduleEntry `json:"airports"`
}

type scheduleEntry struct {
	Destination        string `json:"destination"`
	Airline            string `json:"airline"`
	FlightNumber       string `json:"flight_number"`
	DepartureInMinutes int64  `json:"departure_in_minutes"`
	DurationMinutes    int64  `json:"duration_minutes"`
}

// NewProvider creates a static schedule provider reading from the given file.
func NewProvider(path string, clock timeutil.Clock) *Provider {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Provider{
		path:  path,
		clock: clock,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Departures returns the fixture departures from the given airport that fall
// inside the window. The file is re-read on every call so fixtures can be
// edited without restarting the service.
func (p *Provider) Departures(ctx context.Context, airport string, window domain.DepartureWindow) ([]domain.FlightSegment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, domain.NewScheduleError(ProviderName, airport,
			fmt.Errorf("%w: reading schedule fixture: %v", domain.ErrScheduleUnavailable, err))
	}

	var file scheduleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, domain.NewScheduleError(ProviderName, airport,
			fmt.Errorf("%w: malformed schedule fixture: %v", domain.ErrScheduleUnavailable, err))
	}

	entries := file.Airports[strings.ToUpper(airport)]
	now := p.clock.Now()
	windowStart := now.Add(time.Duration(window.OffsetMinutes) * time.Minute)
	windowEnd := windowStart.Add(time.Duration(window.DurationMinutes) * time.Minute)

	segments := make([]domain.FlightSegment, 0, len(entries))
	for _, entry := range entries {
		if entry.Destination == "" || entry.DurationMinutes <= 0 {
			continue
		}

		departure := now.Add(time.Duration(entry.DepartureInMinutes) * time.Minute)
		if departure.Before(windowStart) || departure.After(windowEnd) {
			continue
		}

		segments = append(segments, domain.FlightSegment{
			Origin:           strings.ToUpper(airport),
			Destination:      strings.ToUpper(entry.Destination),
			Airline:          entry.Airline,
			FlightNumber:     entry.FlightNumber,
			DepartureTimeUTC: departure.Unix(),
			ArrivalTimeUTC:   departure.Add(time.Duration(entry.DurationMinutes) * time.Minute).Unix(),
		})
	}

	return segments, nil
}
