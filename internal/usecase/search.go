package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/timeutil"
)

// Default search parameters.
const (
	// DefaultMaxHubCandidates caps how many hubs one search will probe.
	DefaultMaxHubCandidates = 5

	// DefaultMinHubConnection is the orchestrator-level floor for the gap
	// between hub arrival and onward departure. It is stricter than the
	// assembler's minimum layover; both checks apply, this one governs.
	DefaultMinHubConnection = time.Hour

	// DefaultGlobalTimeout bounds one whole search.
	DefaultGlobalTimeout = 10 * time.Second

	// DefaultHubFetchTimeout bounds a single hub departures lookup.
	DefaultHubFetchTimeout = 4 * time.Second
)

// ItinerarySearchUseCase defines the interface for cheapest-itinerary
// search operations.
type ItinerarySearchUseCase interface {
	// Search finds the single cheapest itinerary between the criteria's
	// origin and destination: direct flights when they exist, otherwise
	// synthesized one-stop connections through candidate hubs.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}

// Config contains configuration options for the search use case.
type Config struct {
	MaxHubCandidates int
	MinHubConnection time.Duration
	GlobalTimeout    time.Duration
	HubFetchTimeout  time.Duration
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		MaxHubCandidates: DefaultMaxHubCandidates,
		MinHubConnection: DefaultMinHubConnection,
		GlobalTimeout:    DefaultGlobalTimeout,
		HubFetchTimeout:  DefaultHubFetchTimeout,
	}
}

// itinerarySearch implements ItinerarySearchUseCase.
type itinerarySearch struct {
	schedules domain.ScheduleProvider
	assembler *Assembler
	clock     timeutil.Clock
	log       zerolog.Logger
	cfg       Config
}

// NewItinerarySearchUseCase creates the search use case. If config is nil,
// defaults are used; zero-valued fields inside a supplied config fall back
// to their defaults individually.
func NewItinerarySearchUseCase(schedules domain.ScheduleProvider, assembler *Assembler, clock timeutil.Clock, log zerolog.Logger, config *Config) ItinerarySearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.MaxHubCandidates > 0 {
			cfg.MaxHubCandidates = config.MaxHubCandidates
		}
		if config.MinHubConnection > 0 {
			cfg.MinHubConnection = config.MinHubConnection
		}
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.HubFetchTimeout > 0 {
			cfg.HubFetchTimeout = config.HubFetchTimeout
		}
	}

	if assembler == nil {
		assembler = NewAssembler()
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &itinerarySearch{
		schedules: schedules,
		assembler: assembler,
		clock:     clock,
		log:       log,
		cfg:       cfg,
	}
}

// hubProbe is one hub airport worth exploring: the segment that reaches it
// plus, after the fetch, the first onward segment toward the destination.
type hubProbe struct {
	hub     string
	inbound domain.FlightSegment
}

// hubResult is the outcome of one hub departures fetch.
type hubResult struct {
	probe   hubProbe
	onward  *domain.FlightSegment
	err     error
	elapsed time.Duration
}

// Search implements ItinerarySearchUseCase.Search.
func (s *itinerarySearch) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	start := s.clock.Now()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.GlobalTimeout)
	defer cancel()

	window := timeutil.WindowFor(criteria.Date, s.clock)

	originFlights, err := s.schedules.Departures(ctx, criteria.Origin, window)
	if err != nil {
		// The origin departure set is required: any fetch failure here
		// aborts the search, with rate limiting kept distinguishable.
		if domain.IsRateLimited(err) {
			return nil, domain.NewScheduleError(s.schedules.Name(), criteria.Origin, err)
		}
		return nil, domain.NewScheduleError(s.schedules.Name(), criteria.Origin,
			fmt.Errorf("%w: %v", domain.ErrScheduleUnavailable, err))
	}

	candidates := s.directCandidates(originFlights, criteria)

	hubsExplored := 0
	if len(candidates) == 0 {
		hubCandidates, probed, hubErr := s.hubCandidates(ctx, originFlights, criteria)
		if hubErr != nil {
			return nil, hubErr
		}
		hubsExplored = probed
		candidates = hubCandidates
	}

	cheapest := FindCheapest(candidates)
	if cheapest == nil {
		return nil, domain.ErrNoItineraries
	}

	s.log.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Int("candidates", len(candidates)).
		Int("price", cheapest.Price).
		Int("stops", cheapest.Stops).
		Msg("Cheapest itinerary selected")

	return &domain.SearchResult{
		Criteria:  criteria,
		Itinerary: *cheapest,
		Metadata: domain.SearchMetadata{
			CandidatesEvaluated: len(candidates),
			HubsExplored:        hubsExplored,
			SearchTimeMs:        s.clock.Now().Sub(start).Milliseconds(),
		},
	}, nil
}

// directCandidates assembles a one-segment candidate for every origin
// departure that reaches the destination, honoring city-code aliases.
// Segments missing required fields are unusable and silently skipped.
func (s *itinerarySearch) directCandidates(originFlights []domain.FlightSegment, criteria domain.SearchCriteria) []domain.Itinerary {
	var candidates []domain.Itinerary
	for _, flight := range originFlights {
		if !usableSegment(flight) {
			continue
		}
		if !MatchesDestination(flight.Destination, criteria.Destination) {
			continue
		}
		if itinerary := s.assembler.CombineSegments([]domain.FlightSegment{flight}, criteria.TripType); itinerary != nil {
			candidates = append(candidates, *itinerary)
		}
	}
	return candidates
}

// hubProbes picks up to MaxHubCandidates origin departures that arrive at a
// hub airport, one per hub, in discovery order.
//
// Hub priority scores exist (see PrioritizeHubs) but do not reorder
// exploration; discovery order is kept so results are reproducible against
// the schedule feed. TODO: decide whether ranked order should gate which
// hubs are probed once per-hub success rates are measured.
func (s *itinerarySearch) hubProbes(originFlights []domain.FlightSegment, criteria domain.SearchCriteria) []hubProbe {
	seen := make(map[string]bool, s.cfg.MaxHubCandidates)
	var probes []hubProbe

	for _, flight := range originFlights {
		if len(probes) >= s.cfg.MaxHubCandidates {
			break
		}
		hub := flight.Destination
		if !usableSegment(flight) || seen[hub] || !IsHub(hub) {
			continue
		}
		if hub == criteria.Origin || hub == criteria.Destination {
			continue
		}
		seen[hub] = true
		probes = append(probes, hubProbe{hub: hub, inbound: flight})
	}

	return probes
}

// hubCandidates fans out one departures lookup per candidate hub, joins the
// results, and assembles a two-segment itinerary for every hub with a valid
// onward flight. A rate-limited hub lookup aborts the whole search; any
// other per-hub failure just drops that hub.
func (s *itinerarySearch) hubCandidates(ctx context.Context, originFlights []domain.FlightSegment, criteria domain.SearchCriteria) ([]domain.Itinerary, int, error) {
	probes := s.hubProbes(originFlights, criteria)
	if len(probes) == 0 {
		return nil, 0, nil
	}

	// Buffered channel so no probe goroutine blocks on send.
	results := make(chan hubResult, len(probes))

	var wg sync.WaitGroup
	for _, probe := range probes {
		wg.Add(1)
		go func(p hubProbe) {
			defer wg.Done()
			s.probeHub(ctx, p, criteria, results)
		}(probe)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var assembled []hubResult
	for result := range results {
		if result.err != nil {
			if domain.IsRateLimited(result.err) {
				// Rate limiting must not be swallowed as a missing hub:
				// the boundary needs to answer "service busy".
				return nil, len(probes), result.err
			}
			s.log.Warn().
				Str("hub", result.probe.hub).
				Err(result.err).
				Msg("Hub lookup failed, dropping hub")
			continue
		}
		if result.onward == nil {
			continue
		}
		assembled = append(assembled, result)
	}

	// Assembly runs on the caller's goroutine after the fan-in completes.
	var candidates []domain.Itinerary
	for _, result := range assembled {
		segments := []domain.FlightSegment{result.probe.inbound, *result.onward}
		if itinerary := s.assembler.CombineSegments(segments, criteria.TripType); itinerary != nil {
			candidates = append(candidates, *itinerary)
		}
	}

	return candidates, len(probes), nil
}

// probeHub fetches one hub's departures and selects the first onward flight
// to the destination that satisfies the minimum hub connection time.
func (s *itinerarySearch) probeHub(ctx context.Context, probe hubProbe, criteria domain.SearchCriteria, results chan<- hubResult) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.HubFetchTimeout)
	defer cancel()

	start := time.Now()

	// One panicking lookup must not take down the whole search.
	defer func() {
		if r := recover(); r != nil {
			results <- hubResult{
				probe:   probe,
				err:     fmt.Errorf("hub lookup panic: %v", r),
				elapsed: time.Since(start),
			}
		}
	}()

	window := timeutil.WindowFor(criteria.Date, s.clock)
	departures, err := s.schedules.Departures(ctx, probe.hub, window)
	if err != nil {
		results <- hubResult{
			probe:   probe,
			err:     domain.NewScheduleError(s.schedules.Name(), probe.hub, err),
			elapsed: time.Since(start),
		}
		return
	}

	earliestDeparture := probe.inbound.ArrivalTimeUTC + int64(s.cfg.MinHubConnection.Seconds())

	var onward *domain.FlightSegment
	for i := range departures {
		flight := departures[i]
		if !usableSegment(flight) {
			continue
		}
		if !MatchesDestination(flight.Destination, criteria.Destination) {
			continue
		}
		if flight.DepartureTimeUTC < earliestDeparture {
			continue
		}
		onward = &flight
		break
	}

	results <- hubResult{
		probe:   probe,
		onward:  onward,
		elapsed: time.Since(start),
	}
}

// usableSegment reports whether a schedule entry carries the fields the
// search needs. Entries missing required data are unusable, not fatal.
func usableSegment(s domain.FlightSegment) bool {
	return s.Origin != "" && s.Destination != "" && s.DepartureTimeUTC > 0 && s.ArrivalTimeUTC > 0
}

// Ensure itinerarySearch implements ItinerarySearchUseCase at compile time.
var _ ItinerarySearchUseCase = (*itinerarySearch)(nil)
