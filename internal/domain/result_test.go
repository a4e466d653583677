package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResult_Clone(t *testing.T) {
	original := &SearchResult{
		Criteria: SearchCriteria{Origin: "LAX", Destination: "SYD", TripType: TripOneWay},
		Itinerary: Itinerary{
			ID:    "itin-1",
			Price: 812,
			Route: []FlightSegment{
				{Origin: "LAX", Destination: "DXB", DepartureTimeUTC: 1_760_000_000, ArrivalTimeUTC: 1_760_015_000},
				{Origin: "DXB", Destination: "SYD", DepartureTimeUTC: 1_760_020_000, ArrivalTimeUTC: 1_760_050_000},
			},
			Layovers: []Layover{
				{Airport: "DXB", ArrivalTimeUTC: 1_760_015_000, DepartureTimeUTC: 1_760_020_000, DurationSeconds: 5000},
			},
			Stops: 1,
		},
	}

	clone := original.Clone()

	require.Equal(t, original, clone)

	clone.Itinerary.Route[0].Origin = "XXX"
	clone.Itinerary.Layovers[0].Airport = "XXX"
	clone.Metadata.CacheHit = true

	assert.Equal(t, "LAX", original.Itinerary.Route[0].Origin)
	assert.Equal(t, "DXB", original.Itinerary.Layovers[0].Airport)
	assert.False(t, original.Metadata.CacheHit)
}

func TestSearchResult_Clone_EmptySlices(t *testing.T) {
	original := &SearchResult{Itinerary: Itinerary{ID: "direct"}}

	clone := original.Clone()

	require.Equal(t, original, clone)
	assert.Nil(t, clone.Itinerary.Route)
	assert.Nil(t, clone.Itinerary.Layovers)
}
