package timeutil

import (
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// Departure window sizing. Schedule APIs cap a single departures query at a
// 12-hour span, so a dated search is centred on noon UTC of that day.
const (
	// WindowDuration is the span of one departures lookup.
	WindowDuration = 12 * time.Hour

	// halfWindow positions a dated window around noon.
	halfWindow = WindowDuration / 2
)

// WindowFor computes the departures window for an optional travel date.
//
// With no date the window starts now and spans the full duration. With a
// date (YYYY-MM-DD) the window covers 06:00-18:00 UTC of that day, expressed
// as an offset from now. An unparseable date falls back to the no-date
// window; the date has already been validated at the boundary.
func WindowFor(date string, clock Clock) domain.DepartureWindow {
	if date == "" {
		return domain.DepartureWindow{
			OffsetMinutes:   0,
			DurationMinutes: int(WindowDuration.Minutes()),
		}
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return domain.DepartureWindow{
			OffsetMinutes:   0,
			DurationMinutes: int(WindowDuration.Minutes()),
		}
	}

	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	offset := noon.Sub(clock.Now()) - halfWindow

	return domain.DepartureWindow{
		OffsetMinutes:   int(offset.Minutes()),
		DurationMinutes: int(WindowDuration.Minutes()),
	}
}
