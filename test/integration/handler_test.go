package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/test/mock"
)

func TestSearchEndpoint_DirectFlight(t *testing.T) {
	provider := mock.NewScheduleProvider("test").
		WithDepartures("LAX", DirectBoard())

	ts := NewTestServer(CreateUseCase(provider))

	resp := ts.SearchRequest(DefaultSearchRequest())

	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)

	assert.Equal(t, "LAX", result.Criteria.Origin)
	assert.Equal(t, "JFK", result.Criteria.Destination)
	assert.Equal(t, "one-way", result.Criteria.TripType)

	require.Len(t, result.Itinerary.Route, 1)
	assert.Equal(t, "LAX", result.Itinerary.Route[0].Origin)
	assert.Equal(t, "JFK", result.Itinerary.Route[0].Destination)
	assert.Equal(t, 0, result.Itinerary.Stops)
	assert.Empty(t, result.Itinerary.Layovers)
	assert.Positive(t, result.Itinerary.Price)
	assert.Equal(t, "USD", result.Itinerary.Currency)
	assert.NotEmpty(t, result.Itinerary.ID)
	assert.Contains(t, result.Itinerary.BookingLink, "LAX-JFK")

	// Two direct candidates were priced
	assert.Equal(t, 2, result.Metadata.CandidatesEvaluated)
	assert.Equal(t, 0, result.Metadata.HubsExplored)
	assert.False(t, result.Metadata.CacheHit)
}

func TestSearchEndpoint_OneStopThroughHub(t *testing.T) {
	ts := NewTestServer(CreateUseCase(HubProvider()))

	resp := ts.SearchRequest(SearchRequestBody{Origin: "LAX", Destination: "SYD"})

	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)

	require.Len(t, result.Itinerary.Route, 2)
	assert.Equal(t, "DXB", result.Itinerary.Route[0].Destination)
	assert.Equal(t, "SYD", result.Itinerary.Route[1].Destination)
	assert.Equal(t, 1, result.Itinerary.Stops)

	require.Len(t, result.Itinerary.Layovers, 1)
	assert.Equal(t, "DXB", result.Itinerary.Layovers[0].Airport)

	assert.Positive(t, result.Metadata.HubsExplored)
}

func TestSearchEndpoint_RoundTrip(t *testing.T) {
	provider := mock.NewScheduleProvider("test").
		WithDepartures("LAX", DirectBoard())

	ts := NewTestServer(CreateUseCase(provider))

	resp := ts.SearchRequest(SearchRequestBody{
		Origin:      "LAX",
		Destination: "JFK",
		TripType:    "round-trip",
	})

	require.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseSearchResult()
	require.NoError(t, err)

	assert.Equal(t, "round-trip", result.Itinerary.TripType)

	// The booking link is built from the route alone; trip type affects the
	// fare, not the link.
	assert.Contains(t, result.Itinerary.BookingLink, "LAX-JFK")
	assert.NotContains(t, result.Itinerary.BookingLink, "round")
}

func TestSearchEndpoint_ValidationErrors(t *testing.T) {
	ts := NewTestServer(CreateUseCase(mock.NewScheduleProvider("test")))

	tests := []struct {
		name  string
		body  SearchRequestBody
		field string
	}{
		{
			name:  "missing origin",
			body:  SearchRequestBody{Destination: "JFK"},
			field: "origin",
		},
		{
			name:  "bad destination code",
			body:  SearchRequestBody{Origin: "LAX", Destination: "NEW YORK"},
			field: "destination",
		},
		{
			name:  "same endpoints",
			body:  SearchRequestBody{Origin: "LAX", Destination: "LAX"},
			field: "destination",
		},
		{
			name:  "unknown trip type",
			body:  SearchRequestBody{Origin: "LAX", Destination: "JFK", TripType: "open-jaw"},
			field: "tripType",
		},
		{
			name:  "bad date",
			body:  SearchRequestBody{Origin: "LAX", Destination: "JFK", Date: "tomorrow"},
			field: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.SearchRequest(tt.body)

			require.Equal(t, http.StatusBadRequest, resp.Code)

			errResp, err := resp.ParseError()
			require.NoError(t, err)
			assert.Equal(t, "validation_error", errResp["code"])

			details, ok := errResp["details"].(map[string]interface{})
			require.True(t, ok, "validation response should carry details")
			assert.Contains(t, details, tt.field)
		})
	}
}

func TestSearchEndpoint_NoResults(t *testing.T) {
	// Origin board has no flight to the destination and no hub connections
	provider := mock.NewScheduleProvider("test").
		WithDepartures("LAX", DirectBoard())

	ts := NewTestServer(CreateUseCase(provider))

	resp := ts.SearchRequest(SearchRequestBody{Origin: "LAX", Destination: "SYD"})

	require.Equal(t, http.StatusNotFound, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "no_results", errResp["code"])
}

func TestSearchEndpoint_UpstreamRateLimited(t *testing.T) {
	provider := mock.NewScheduleProvider("test").
		WithError(domain.NewScheduleError("test", "LAX", domain.ErrRateLimited))

	ts := NewTestServer(CreateUseCase(provider))

	resp := ts.SearchRequest(DefaultSearchRequest())

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "rate_limited", errResp["code"])
	assert.Contains(t, errResp["message"], "busy")
}

func TestSearchEndpoint_UpstreamUnavailable(t *testing.T) {
	provider := mock.NewScheduleProvider("test").
		WithError(domain.NewScheduleError("test", "LAX", domain.ErrScheduleUnavailable))

	ts := NewTestServer(CreateUseCase(provider))

	resp := ts.SearchRequest(DefaultSearchRequest())

	require.Equal(t, http.StatusBadGateway, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "upstream_error", errResp["code"])
}

func TestSearchEndpoint_MalformedBody(t *testing.T) {
	ts := NewTestServer(CreateUseCase(mock.NewScheduleProvider("test")))

	resp := ts.Do(Request{
		Method:      http.MethodPost,
		Path:        "/api/v1/itineraries/search",
		Body:        "{not json",
		ContentType: "application/json",
	})

	// The string marshals to a JSON string, which does not bind to the
	// request struct
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHealthEndpoint(t *testing.T) {
	ts := NewTestServer(CreateUseCase(mock.NewScheduleProvider("test")))

	resp := ts.HealthRequest()

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, string(resp.Body), "ok")
}
