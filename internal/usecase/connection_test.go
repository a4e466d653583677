package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// segment builds a FlightSegment for connection tests.
func segment(origin, destination string, departure, arrival int64) domain.FlightSegment {
	return domain.FlightSegment{
		Origin:           origin,
		Destination:      destination,
		Airline:          "Test Air",
		DepartureTimeUTC: departure,
		ArrivalTimeUTC:   arrival,
	}
}

func TestValidateConnection(t *testing.T) {
	const arrival = int64(1_760_000_000)

	tests := []struct {
		name        string
		first       domain.FlightSegment
		second      domain.FlightSegment
		wantValid   bool
		wantLayover int64
		wantReason  string
	}{
		{
			name:       "airport mismatch is invalid",
			first:      segment("LAX", "DXB", arrival-28_800, arrival),
			second:     segment("DOH", "JFK", arrival+7_200, arrival+36_000),
			wantValid:  false,
			wantReason: ReasonAirportMismatch,
		},
		{
			name:        "two hour layover is valid",
			first:       segment("LAX", "DXB", arrival-28_800, arrival),
			second:      segment("DXB", "JFK", arrival+7_200, arrival+36_000),
			wantValid:   true,
			wantLayover: 7_200,
		},
		{
			name:        "exactly 45 minutes is valid",
			first:       segment("LAX", "DXB", arrival-28_800, arrival),
			second:      segment("DXB", "JFK", arrival+2_700, arrival+36_000),
			wantValid:   true,
			wantLayover: 2_700,
		},
		{
			name:        "one second under 45 minutes is too short",
			first:       segment("LAX", "DXB", arrival-28_800, arrival),
			second:      segment("DXB", "JFK", arrival+2_699, arrival+36_000),
			wantValid:   false,
			wantLayover: 2_699,
			wantReason:  ReasonLayoverTooShort,
		},
		{
			name:        "exactly 24 hours is valid",
			first:       segment("LAX", "DXB", arrival-28_800, arrival),
			second:      segment("DXB", "JFK", arrival+86_400, arrival+120_000),
			wantValid:   true,
			wantLayover: 86_400,
		},
		{
			name:        "one second over 24 hours is too long",
			first:       segment("LAX", "DXB", arrival-28_800, arrival),
			second:      segment("DXB", "JFK", arrival+86_401, arrival+120_000),
			wantValid:   false,
			wantLayover: 86_401,
			wantReason:  ReasonLayoverTooLong,
		},
		{
			name:        "onward departs before arrival",
			first:       segment("LAX", "DXB", arrival-28_800, arrival),
			second:      segment("DXB", "JFK", arrival-3_600, arrival+36_000),
			wantValid:   false,
			wantLayover: -3_600,
			wantReason:  ReasonLayoverTooShort,
		},
		{
			name: "backwards-in-time first segment does not panic",
			// Arrival precedes departure; the negative layover just fails
			// the minimum-layover check.
			first:       segment("LAX", "DXB", arrival, arrival-28_800),
			second:      segment("DXB", "JFK", arrival-30_000, arrival),
			wantValid:   false,
			wantLayover: -1_200,
			wantReason:  ReasonLayoverTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateConnection(tt.first, tt.second)

			assert.Equal(t, tt.wantValid, got.IsValid)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, got.Reason)
			}
			if tt.wantReason != ReasonAirportMismatch {
				assert.Equal(t, tt.wantLayover, got.LayoverSeconds)
			}
		})
	}
}

func TestValidateConnection_IsPure(t *testing.T) {
	first := segment("LAX", "DXB", 1_760_000_000, 1_760_028_800)
	second := segment("DXB", "JFK", 1_760_036_000, 1_760_086_400)

	before1, before2 := first, second
	for i := 0; i < 3; i++ {
		got := ValidateConnection(first, second)
		assert.True(t, got.IsValid)
		assert.Equal(t, int64(7_200), got.LayoverSeconds)
	}
	assert.Equal(t, before1, first, "inputs must not be mutated")
	assert.Equal(t, before2, second, "inputs must not be mutated")
}
