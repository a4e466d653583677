// Package http provides the HTTP handler layer for the itinerary search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"
)

// SearchItinerariesRequest represents the request body for a cheapest-itinerary
// search.
type SearchItinerariesRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "LAX")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport or a metro city
	// code (e.g., "JFK", "NYC")
	Destination string `json:"destination"`

	// TripType is "one-way" or "round-trip" (optional, default "one-way")
	TripType string `json:"tripType,omitempty"`

	// Date is the optional travel date in YYYY-MM-DD format
	Date string `json:"date,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validTripTypes defines the accepted trip type values. Empty defaults to
// one-way.
var validTripTypes = map[string]bool{
	"one-way":    true,
	"round-trip": true,
	"":           true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport codes are normalized to uppercase as a side effect.
func (r *SearchItinerariesRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateTripType(errs)
	r.validateDate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchItinerariesRequest) validateOrigin(errs *ValidationErrors) {
	if strings.TrimSpace(r.Origin) == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(strings.TrimSpace(r.Origin))
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchItinerariesRequest) validateDestination(errs *ValidationErrors) {
	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(strings.TrimSpace(r.Destination))
	if !airportCodePattern.MatchString(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchItinerariesRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin == "" || r.Destination == "" {
		return
	}
	if strings.EqualFold(strings.TrimSpace(r.Origin), strings.TrimSpace(r.Destination)) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchItinerariesRequest) validateTripType(errs *ValidationErrors) {
	if !validTripTypes[strings.ToLower(r.TripType)] {
		errs.Add("tripType", "tripType must be one of: one-way, round-trip")
	}
}

func (r *SearchItinerariesRequest) validateDate(errs *ValidationErrors) {
	if r.Date == "" {
		return
	}
	if !datePattern.MatchString(r.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs.Add("date", "date is not a valid calendar date")
	}
}
