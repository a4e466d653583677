// Package integration provides helpers and integration tests for the
// itinerary search system. Integration tests verify that components work
// together correctly, including HTTP handlers, use cases, and mock schedule
// providers.
package integration

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-deals/cheapest-itinerary-service/internal/adapter/http"
	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/timeutil"
	"github.com/flight-deals/cheapest-itinerary-service/internal/usecase"
	"github.com/flight-deals/cheapest-itinerary-service/test/mock"
	"github.com/flight-deals/cheapest-itinerary-service/test/testutil"
)

// BaseDeparture is the reference departure time used by all integration
// boards. The test clock sits one hour before it so every board entry falls
// inside the default search window.
const BaseDeparture int64 = 1_760_000_000

// TestClock returns a clock fixed one hour before BaseDeparture.
func TestClock() *timeutil.MockClock {
	return timeutil.NewMockClock(time.Unix(BaseDeparture-3600, 0).UTC())
}

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.ItinerarySearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest executes an itinerary search request with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResult parses the response body as a SearchResultDTO.
func (r *Response) ParseSearchResult() (*httpAdapter.SearchResultDTO, error) {
	var result httpAdapter.SearchResultDTO
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TripType    string `json:"tripType,omitempty"`
	Date        string `json:"date,omitempty"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:      "LAX",
		Destination: "JFK",
	}
}

// DirectBoard returns a LAX departure board with two direct JFK flights and
// one unrelated departure.
func DirectBoard() []domain.FlightSegment {
	return testutil.Board(
		testutil.Segment("LAX", "JFK", BaseDeparture, BaseDeparture+20_000),
		testutil.Segment("LAX", "JFK", BaseDeparture+7200, BaseDeparture+27_000),
		testutil.Segment("LAX", "SFO", BaseDeparture, BaseDeparture+4000),
	)
}

// HubProvider returns a provider where LAX has no direct flight to SYD but
// DXB offers a valid onward connection.
func HubProvider() *mock.ScheduleProvider {
	return mock.NewScheduleProvider("test").
		WithDepartures("LAX", testutil.Board(
			testutil.Segment("LAX", "DXB", BaseDeparture, BaseDeparture+15_000),
		)).
		WithDepartures("DXB", testutil.Board(
			testutil.Segment("DXB", "SYD", BaseDeparture+20_000, BaseDeparture+50_000),
		))
}

// CreateUseCase creates a search use case over the given provider with a
// deterministic assembler and the shared test clock.
func CreateUseCase(provider domain.ScheduleProvider) usecase.ItinerarySearchUseCase {
	return CreateUseCaseWithConfig(provider, nil)
}

// CreateUseCaseWithConfig creates a search use case with custom configuration.
func CreateUseCaseWithConfig(provider domain.ScheduleProvider, config *usecase.Config) usecase.ItinerarySearchUseCase {
	assembler := usecase.NewAssemblerWithRand(rand.New(rand.NewSource(1)))
	return usecase.NewItinerarySearchUseCase(provider, assembler, TestClock(), zerolog.Nop(), config)
}
