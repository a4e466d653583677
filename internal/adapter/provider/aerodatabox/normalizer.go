package aerodatabox

import (
	"strings"
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// defaultLegDuration is assumed when the board omits the scheduled arrival
// time for a leg.
const defaultLegDuration = 2 * time.Hour

// normalize converts raw board departures into domain flight segments.
// Entries without a usable destination or departure time are dropped, as are
// codeshare duplicates of an operated flight.
func normalize(origin string, flights []boardFlight) []domain.FlightSegment {
	segments := make([]domain.FlightSegment, 0, len(flights))

	for _, f := range flights {
		segment, ok := normalizeFlight(origin, f)
		if !ok {
			continue
		}
		segments = append(segments, segment)
	}

	return segments
}

// normalizeFlight converts a single board entry. The second return value is
// false when the entry cannot be used.
func normalizeFlight(origin string, f boardFlight) (domain.FlightSegment, bool) {
	if isCodeshare(f.CodeshareStatus) {
		return domain.FlightSegment{}, false
	}

	destination := movementIATA(f.Arrival)
	if destination == "" {
		return domain.FlightSegment{}, false
	}

	departure, ok := movementTime(f.Departure)
	if !ok {
		return domain.FlightSegment{}, false
	}

	arrival, ok := movementTime(f.Arrival)
	if !ok {
		// Boards occasionally omit the arrival side entirely.
		arrival = departure.Add(defaultLegDuration)
	}
	if !arrival.After(departure) {
		return domain.FlightSegment{}, false
	}

	return domain.FlightSegment{
		Origin:           origin,
		Destination:      destination,
		Airline:          f.Airline.Name,
		FlightNumber:     strings.TrimSpace(f.Number),
		DepartureTimeUTC: departure.Unix(),
		ArrivalTimeUTC:   arrival.Unix(),
	}, true
}

// isCodeshare reports whether the entry is a codeshare duplicate rather than
// the operated flight.
func isCodeshare(status string) bool {
	return strings.EqualFold(status, "IsCodeshared")
}

// movementIATA extracts the airport code from one end of a leg.
func movementIATA(m boardMovement) string {
	if m.Airport == nil {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(m.Airport.IATA))
}

// movementTime parses the scheduled UTC time from one end of a leg.
func movementTime(m boardMovement) (time.Time, bool) {
	if m.ScheduledTime == nil || m.ScheduledTime.UTC == "" {
		return time.Time{}, false
	}
	return parseBoardTime(m.ScheduledTime.UTC)
}

// parseBoardTime parses the timestamp formats the board is known to emit:
// RFC3339 and the compact "2006-01-02 15:04Z" form.
func parseBoardTime(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04Z", "2006-01-02 15:04:05Z"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
