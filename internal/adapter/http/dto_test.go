package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{name: "hours and minutes", seconds: 2*3600 + 30*60, expected: "2h 30m"},
		{name: "whole hours", seconds: 3 * 3600, expected: "3h"},
		{name: "minutes only", seconds: 45 * 60, expected: "45m"},
		{name: "zero", seconds: 0, expected: "0m"},
		{name: "negative clamps to zero", seconds: -60, expected: "0m"},
		{name: "long haul", seconds: 26*3600 + 5*60, expected: "26h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.seconds))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "2025-10-09T08:53:20Z", formatTimestamp(1_760_000_000))
}

func TestToSearchResultDTO(t *testing.T) {
	result := &domain.SearchResult{
		Criteria: domain.SearchCriteria{
			Origin:      "LAX",
			Destination: "JFK",
			TripType:    domain.TripOneWay,
		},
		Itinerary: domain.Itinerary{
			ID:    "itin-1",
			Price: 375,
			Route: []domain.FlightSegment{
				{
					Origin:           "LAX",
					Destination:      "DXB",
					Airline:          "Emirates",
					FlightNumber:     "EK216",
					DepartureTimeUTC: 1_760_000_000,
					ArrivalTimeUTC:   1_760_050_000,
				},
				{
					Origin:           "DXB",
					Destination:      "JFK",
					Airline:          "Emirates",
					FlightNumber:     "EK201",
					DepartureTimeUTC: 1_760_060_000,
					ArrivalTimeUTC:   1_760_110_000,
				},
			},
			Layovers: []domain.Layover{
				{
					Airport:          "DXB",
					ArrivalTimeUTC:   1_760_050_000,
					DepartureTimeUTC: 1_760_060_000,
					DurationSeconds:  10_000,
				},
			},
			TripType:             domain.TripOneWay,
			TotalDurationSeconds: 110_000,
			Stops:                1,
			BookingLink:          "https://www.google.com/search?q=flights+LAX-JFK",
		},
		Metadata: domain.SearchMetadata{
			CandidatesEvaluated: 4,
			HubsExplored:        3,
			SearchTimeMs:        87,
			CacheHit:            true,
		},
	}

	dto := ToSearchResultDTO(result)

	require.NotNil(t, dto)
	assert.Equal(t, "LAX", dto.Criteria.Origin)
	assert.Equal(t, "one-way", dto.Criteria.TripType)
	assert.Equal(t, 375, dto.Itinerary.Price)
	assert.Equal(t, "USD", dto.Itinerary.Currency)
	assert.Equal(t, 1, dto.Itinerary.Stops)
	require.Len(t, dto.Itinerary.Route, 2)
	assert.Equal(t, "EK216", dto.Itinerary.Route[0].FlightNumber)
	require.Len(t, dto.Itinerary.Layovers, 1)
	assert.Equal(t, "DXB", dto.Itinerary.Layovers[0].Airport)
	assert.Equal(t, "2h 46m", dto.Itinerary.Layovers[0].Duration.Formatted)
	assert.True(t, dto.Metadata.CacheHit)
	assert.Equal(t, 3, dto.Metadata.HubsExplored)
}

func TestToSearchResultDTO_Nil(t *testing.T) {
	assert.Nil(t, ToSearchResultDTO(nil))
}
