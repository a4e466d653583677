// Package aerodatabox implements a ScheduleProvider backed by the AeroDataBox
// departures API on RapidAPI. The API has no route-search endpoint, so the
// client fetches the full departure board for an airport and leaves route
// filtering to the caller.
package aerodatabox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "aerodatabox"

const defaultRequestTimeout = 10 * time.Second

// Client fetches departure boards from the AeroDataBox API.
type Client struct {
	apiKey     string
	apiHost    string
	httpClient *http.Client
	retryCfg   retry.Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryConfig overrides the retry behavior for upstream calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) {
		c.retryCfg = cfg
	}
}

// NewClient creates an AeroDataBox client. apiKey and apiHost are the
// RapidAPI credentials for the subscription.
func NewClient(apiKey, apiHost string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		apiHost: apiHost,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
		retryCfg: retry.ScheduleConfig,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return ProviderName
}

// Departures fetches the scheduled departures from the given airport within
// the window. Rate-limit responses are reported as domain.ErrRateLimited and
// are not retried; transient transport errors are retried with backoff.
func (c *Client) Departures(ctx context.Context, airport string, window domain.DepartureWindow) ([]domain.FlightSegment, error) {
	if c.apiKey == "" || c.apiHost == "" {
		return nil, domain.NewScheduleError(ProviderName, airport,
			fmt.Errorf("%w: missing RapidAPI credentials", domain.ErrScheduleUnavailable))
	}

	url := c.boardURL(airport, window)

	segments, err := retry.DoWithResult(ctx, func() ([]domain.FlightSegment, error) {
		return c.fetchBoard(ctx, url, airport)
	}, c.retryCfg)
	if err != nil {
		// Unwrap the retry marker so callers see the domain error.
		var permanent *retry.Permanent
		if errors.As(err, &permanent) {
			err = permanent.Err
		}
		return nil, err
	}

	return segments, nil
}

// boardURL builds the departures endpoint URL for an airport and window.
func (c *Client) boardURL(airport string, window domain.DepartureWindow) string {
	return fmt.Sprintf(
		"https://%s/flights/airports/iata/%s?offsetMinutes=%d&durationMinutes=%d&withLeg=true&direction=Departure&withCancelled=false&withCodeshared=false&withCargo=false&withPrivate=false&withLocation=false",
		c.apiHost, airport, window.OffsetMinutes, window.DurationMinutes,
	)
}

// fetchBoard performs a single departure board request.
func (c *Client) fetchBoard(ctx context.Context, url, airport string) ([]domain.FlightSegment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.NewPermanent(domain.NewScheduleError(ProviderName, airport, err))
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewScheduleError(ProviderName, airport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		// Retrying a throttled subscription only burns more quota.
		return nil, retry.NewPermanent(domain.NewScheduleError(ProviderName, airport, domain.ErrRateLimited))
	case resp.StatusCode >= 500:
		return nil, domain.NewScheduleError(ProviderName, airport,
			fmt.Errorf("%w: upstream status %d", domain.ErrScheduleUnavailable, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, retry.NewPermanent(domain.NewScheduleError(ProviderName, airport,
			fmt.Errorf("%w: upstream status %d", domain.ErrScheduleUnavailable, resp.StatusCode)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewScheduleError(ProviderName, airport, err)
	}

	var board boardResponse
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, retry.NewPermanent(domain.NewScheduleError(ProviderName, airport,
			fmt.Errorf("%w: malformed board payload: %v", domain.ErrScheduleUnavailable, err)))
	}

	return normalize(airport, board.Departures), nil
}
