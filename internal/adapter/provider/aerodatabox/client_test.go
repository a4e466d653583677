package aerodatabox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/retry"
)

const boardJSON = `{
	"departures": [
		{
			"number": "EK216",
			"airline": {"name": "Emirates"},
			"departure": {
				"airport": {"iata": "LAX"},
				"scheduledTime": {"utc": "2026-09-15 08:30Z"}
			},
			"arrival": {
				"airport": {"iata": "DXB"},
				"scheduledTime": {"utc": "2026-09-16 00:45Z"}
			}
		},
		{
			"number": "UA9999",
			"airline": {"name": "United"},
			"departure": {
				"scheduledTime": {"utc": "2026-09-15 09:00Z"}
			},
			"arrival": {}
		}
	]
}`

// rewriteTransport redirects all requests to the test server regardless of
// the https host the client builds.
type rewriteTransport struct {
	target *url.URL
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	httpClient := &http.Client{
		Transport: &rewriteTransport{target: target},
		Timeout:   5 * time.Second,
	}

	return NewClient("test-key", "test-host.example.com",
		WithHTTPClient(httpClient),
		WithRetryConfig(retry.Config{MaxAttempts: 1, RetryIf: retry.SkipPermanent}),
	)
}

func TestClient_Name(t *testing.T) {
	client := NewClient("key", "host")
	assert.Equal(t, "aerodatabox", client.Name())
}

func TestClient_ImplementsInterface(t *testing.T) {
	var _ domain.ScheduleProvider = (*Client)(nil)
}

func TestClient_Departures_Success(t *testing.T) {
	var capturedPath, capturedQuery, capturedKey, capturedHost string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedQuery = r.URL.RawQuery
		capturedKey = r.Header.Get("x-rapidapi-key")
		capturedHost = r.Header.Get("x-rapidapi-host")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(boardJSON))
	})

	window := domain.DepartureWindow{OffsetMinutes: -360, DurationMinutes: 720}
	segments, err := client.Departures(context.Background(), "LAX", window)

	require.NoError(t, err)
	require.Len(t, segments, 1, "entry without arrival airport should be dropped")
	assert.Equal(t, "DXB", segments[0].Destination)
	assert.Equal(t, "EK216", segments[0].FlightNumber)

	assert.Equal(t, "/flights/airports/iata/LAX", capturedPath)
	assert.Contains(t, capturedQuery, "offsetMinutes=-360")
	assert.Contains(t, capturedQuery, "durationMinutes=720")
	assert.Contains(t, capturedQuery, "direction=Departure")
	assert.Equal(t, "test-key", capturedKey)
	assert.Equal(t, "test-host.example.com", capturedHost)
}

func TestClient_Departures_RateLimited(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	})
	client.retryCfg = retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   1,
		RetryIf:      retry.SkipPermanent,
	}

	_, err := client.Departures(context.Background(), "LAX", domain.DepartureWindow{DurationMinutes: 720})

	require.Error(t, err)
	assert.True(t, domain.IsRateLimited(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "429 must not be retried")

	var schedErr *domain.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, "aerodatabox", schedErr.Provider)
	assert.Equal(t, "LAX", schedErr.Airport)
}

func TestClient_Departures_ServerErrorRetried(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(boardJSON))
	})
	client.retryCfg = retry.Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   1,
		RetryIf:      retry.SkipPermanent,
	}

	segments, err := client.Departures(context.Background(), "LAX", domain.DepartureWindow{DurationMinutes: 720})

	require.NoError(t, err)
	assert.Len(t, segments, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_Departures_ServerErrorExhaustsRetries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Departures(context.Background(), "LAX", domain.DepartureWindow{DurationMinutes: 720})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleUnavailable)
	assert.False(t, domain.IsRateLimited(err))
}

func TestClient_Departures_MalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := client.Departures(context.Background(), "LAX", domain.DepartureWindow{DurationMinutes: 720})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleUnavailable)
	assert.Contains(t, err.Error(), "malformed")
}

func TestClient_Departures_MissingCredentials(t *testing.T) {
	client := NewClient("", "")

	_, err := client.Departures(context.Background(), "LAX", domain.DepartureWindow{DurationMinutes: 720})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleUnavailable)
	assert.Contains(t, err.Error(), "credentials")
}

func TestClient_Departures_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.Write([]byte(boardJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Departures(ctx, "LAX", domain.DepartureWindow{DurationMinutes: 720})

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context canceled") ||
		strings.Contains(err.Error(), "canceled"))
}
