// Package usecase contains the business logic for cheapest-itinerary search:
// connection validation, itinerary assembly, hub ranking, candidate search,
// and cheapest selection.
package usecase

import (
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// Layover bounds for a legal same-itinerary connection.
const (
	// MinLayover is the shortest plausible connection time.
	MinLayover = 45 * time.Minute

	// MaxLayover is the longest gap still treated as one itinerary.
	MaxLayover = 24 * time.Hour
)

// Reasons a connection can fail validation.
const (
	ReasonAirportMismatch = "airports don't match"
	ReasonLayoverTooShort = "layover too short"
	ReasonLayoverTooLong  = "layover too long"
)

// ConnectionInfo is the result of validating two adjacent segments.
type ConnectionInfo struct {
	// IsValid reports whether the segments form a legal connection
	IsValid bool

	// LayoverSeconds is the gap between arrival and onward departure.
	// Only meaningful when the airports matched; it is also populated for
	// out-of-bounds layovers so callers can report why validation failed.
	LayoverSeconds int64

	// Reason explains a failed validation
	Reason string
}

// ValidateConnection decides whether two adjacent flight segments form a
// legal connection and computes the layover duration.
//
// It is a pure function: no side effects, no I/O. Segments with arbitrary,
// even backwards-in-time data are accepted; a negative layover simply fails
// the minimum-layover check.
func ValidateConnection(first, second domain.FlightSegment) ConnectionInfo {
	// The arrival airport of the first segment must match the departure
	// airport of the second.
	if first.Destination != second.Origin {
		return ConnectionInfo{
			IsValid: false,
			Reason:  ReasonAirportMismatch,
		}
	}

	layover := second.DepartureTimeUTC - first.ArrivalTimeUTC

	if layover < int64(MinLayover.Seconds()) {
		return ConnectionInfo{
			IsValid:        false,
			LayoverSeconds: layover,
			Reason:         ReasonLayoverTooShort,
		}
	}

	if layover > int64(MaxLayover.Seconds()) {
		return ConnectionInfo{
			IsValid:        false,
			LayoverSeconds: layover,
			Reason:         ReasonLayoverTooLong,
		}
	}

	return ConnectionInfo{
		IsValid:        true,
		LayoverSeconds: layover,
	}
}
