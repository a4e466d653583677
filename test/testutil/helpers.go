// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// LoadFixtureJSON loads a JSON file from the docs directory at the project
// root. This is a convenience function for loading schedule fixtures.
func LoadFixtureJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	fixturePath := filepath.Join(projectRoot, "docs", filename)

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("Failed to load fixture file %s: %v", filename, err)
	}
	return data
}

// FixturePath returns the absolute path of a file in the docs directory.
func FixturePath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "docs", filename)
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// Segment builds a flight segment with the given route and times.
// Airline and flight number get placeholder values.
func Segment(origin, destination string, departureUTC, arrivalUTC int64) domain.FlightSegment {
	return domain.FlightSegment{
		Origin:           origin,
		Destination:      destination,
		Airline:          "Test Airways",
		FlightNumber:     "TA100",
		DepartureTimeUTC: departureUTC,
		ArrivalTimeUTC:   arrivalUTC,
	}
}

// Board builds a departure board from segments sharing one origin.
func Board(segments ...domain.FlightSegment) []domain.FlightSegment {
	return segments
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
