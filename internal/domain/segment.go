// Package domain contains the core business entities and rules for the
// cheapest-itinerary search service. These entities are provider-agnostic and
// form the foundation upon which all other components are built.
package domain

// FlightSegment represents one non-stop flight leg between two airports.
// Segments are read-only projections of external schedule data: they are
// created once per search and never mutated.
type FlightSegment struct {
	// Origin is the IATA code of the departure airport (e.g., "LAX")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// Airline is the free-text name of the operating carrier
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "EK-216"), if known
	FlightNumber string `json:"flightNumber,omitempty"`

	// DepartureTimeUTC is the scheduled departure in Unix seconds (UTC)
	DepartureTimeUTC int64 `json:"departureTimeUTC"`

	// ArrivalTimeUTC is the scheduled arrival in Unix seconds (UTC).
	// For any usable segment ArrivalTimeUTC > DepartureTimeUTC.
	ArrivalTimeUTC int64 `json:"arrivalTimeUTC"`

	// DurationSeconds is the flight duration. Zero means "derive from the
	// timestamps" via Duration().
	DurationSeconds int64 `json:"durationSeconds,omitempty"`
}

// Duration returns the segment duration in seconds, deriving it from the
// departure and arrival timestamps when the explicit field is unset.
func (s FlightSegment) Duration() int64 {
	if s.DurationSeconds > 0 {
		return s.DurationSeconds
	}
	return s.ArrivalTimeUTC - s.DepartureTimeUTC
}

// Layover represents the ground time between two connected segments at a
// shared airport.
type Layover struct {
	// Airport is the IATA code of the connection airport. It equals the
	// destination of the inbound segment and the origin of the outbound one.
	Airport string `json:"airport"`

	// ArrivalTimeUTC is when the inbound segment lands, Unix seconds (UTC)
	ArrivalTimeUTC int64 `json:"arrivalTimeUTC"`

	// DepartureTimeUTC is when the outbound segment leaves, Unix seconds (UTC)
	DepartureTimeUTC int64 `json:"departureTimeUTC"`

	// DurationSeconds is DepartureTimeUTC - ArrivalTimeUTC
	DurationSeconds int64 `json:"durationSeconds"`
}
