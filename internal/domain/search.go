package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchCriteria defines the parameters for a cheapest-itinerary search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "LAX")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// TripType is one-way or round-trip (default: one-way)
	TripType TripType `json:"tripType"`

	// Date is the optional travel date in YYYY-MM-DD format.
	// Empty means "search departures around now".
	Date string `json:"date,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	// Validate origin
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	// Validate destination
	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	// Origin and destination must be different
	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	// Validate trip type
	if !s.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: one-way, round-trip; got %q", ErrInvalidRequest, s.TripType)
	}

	// Validate date (optional)
	if s.Date != "" {
		if !dateRegex.MatchString(s.Date) {
			return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.Date)
		}
		if _, err := time.Parse("2006-01-02", s.Date); err != nil {
			return fmt.Errorf("%w: date is not a valid date: %s", ErrInvalidRequest, s.Date)
		}
	}

	return nil
}

// SetDefaults normalizes airport codes and applies default values to empty
// optional fields.
func (s *SearchCriteria) SetDefaults() {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	if s.TripType == "" {
		s.TripType = TripOneWay
	}
}

// CacheKey returns a stable key identifying this search for memoization.
// Two criteria with the same key are interchangeable searches.
func (s SearchCriteria) CacheKey() string {
	return s.Origin + "|" + s.Destination + "|" + string(s.TripType) + "|" + s.Date
}
