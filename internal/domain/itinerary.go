package domain

// TripType identifies whether an itinerary covers one direction or both.
type TripType string

// Supported trip types.
const (
	// TripOneWay is a single outbound journey (default)
	TripOneWay TripType = "one-way"

	// TripRoundTrip is an outbound journey plus return
	TripRoundTrip TripType = "round-trip"
)

// IsValid checks if the trip type is a supported value.
func (t TripType) IsValid() bool {
	switch t {
	case TripOneWay, TripRoundTrip:
		return true
	default:
		return false
	}
}

// Itinerary is a priced, ordered journey of one or more connected segments.
// Itineraries are constructed by the assembler, immutable once returned, and
// live only for the duration of one search request.
type Itinerary struct {
	// ID is a unique identifier for this itinerary (generated internally)
	ID string `json:"id"`

	// Price is the synthesized fare in whole currency units, never negative
	Price int `json:"price"`

	// Route is the ordered, non-empty sequence of segments; slice order is
	// travel order
	Route []FlightSegment `json:"route"`

	// Layovers holds one entry per adjacent segment pair, so its length is
	// len(Route)-1. Absent for direct itineraries.
	Layovers []Layover `json:"layovers,omitempty"`

	// TripType is one-way or round-trip
	TripType TripType `json:"tripType"`

	// TotalDurationSeconds spans from first departure to last arrival
	TotalDurationSeconds int64 `json:"totalDurationSeconds"`

	// Stops is len(Route)-1
	Stops int `json:"stops"`

	// BookingLink is an opaque external URL for following up on the fare
	BookingLink string `json:"bookingLink,omitempty"`
}

// IsWellFormed reports whether the itinerary satisfies the structural
// invariants a consumer may rely on: a non-empty route and a non-negative
// price. Candidates failing this check are skipped by the cheapest selector.
func (i Itinerary) IsWellFormed() bool {
	return len(i.Route) > 0 && i.Price >= 0
}

// Origin returns the departure airport of the whole journey.
// Returns an empty string for a malformed itinerary with no route.
func (i Itinerary) Origin() string {
	if len(i.Route) == 0 {
		return ""
	}
	return i.Route[0].Origin
}

// FinalDestination returns the arrival airport of the whole journey.
// Returns an empty string for a malformed itinerary with no route.
func (i Itinerary) FinalDestination() string {
	if len(i.Route) == 0 {
		return ""
	}
	return i.Route[len(i.Route)-1].Destination
}
