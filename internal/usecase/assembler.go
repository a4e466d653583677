package usecase

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// Pricing constants. No live fare feed exists, so prices are synthesized
// from flight duration plus bounded noise.
const (
	// segmentBaseFare is the flat per-segment contribution.
	segmentBaseFare = 150.0

	// farePerHour is the per-flight-hour contribution.
	farePerHour = 30.0

	// fareNoiseCeiling bounds the random per-segment variance, exclusive.
	fareNoiseCeiling = 100.0

	// connectionFee is the flat surcharge per layover.
	connectionFee = 50.0

	// roundTripFactor approximates a return fare from a one-way fare.
	roundTripFactor = 1.85
)

// Assembler combines ordered flight segments into priced itineraries.
// The random source drives fare variance; inject a seeded source in tests
// for reproducible prices. The source is mutex-guarded, so one Assembler
// can serve concurrent searches.
type Assembler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewAssembler creates an Assembler with entropy-seeded pricing.
func NewAssembler() *Assembler {
	return NewAssemblerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewAssemblerWithRand creates an Assembler with the given random source.
func NewAssemblerWithRand(rng *rand.Rand) *Assembler {
	return &Assembler{rng: rng}
}

// CombineSegments validates the adjacent pairs of an ordered segment list
// and produces a priced Itinerary, or nil if any pair is not a legal
// connection. No partial itineraries are ever produced: the first invalid
// pair discards the whole combination.
func (a *Assembler) CombineSegments(segments []domain.FlightSegment, tripType domain.TripType) *domain.Itinerary {
	if len(segments) == 0 {
		return nil
	}

	layovers := make([]domain.Layover, 0, len(segments)-1)
	for i := 0; i < len(segments)-1; i++ {
		connection := ValidateConnection(segments[i], segments[i+1])
		if !connection.IsValid {
			return nil
		}

		layovers = append(layovers, domain.Layover{
			Airport:          segments[i].Destination,
			ArrivalTimeUTC:   segments[i].ArrivalTimeUTC,
			DepartureTimeUTC: segments[i+1].DepartureTimeUTC,
			DurationSeconds:  connection.LayoverSeconds,
		})
	}

	price := a.price(segments, len(layovers), tripType)
	totalDuration := segments[len(segments)-1].ArrivalTimeUTC - segments[0].DepartureTimeUTC

	itinerary := &domain.Itinerary{
		ID:                   uuid.New().String(),
		Price:                price,
		Route:                segments,
		TripType:             tripType,
		TotalDurationSeconds: totalDuration,
		Stops:                len(segments) - 1,
		BookingLink:          bookingLink(segments),
	}
	if len(layovers) > 0 {
		itinerary.Layovers = layovers
	}

	return itinerary
}

// price synthesizes a fare for the route. Each segment contributes a flat
// base, a duration factor, and bounded random variance; each layover adds a
// flat connection fee. Round-trip fares scale the floored one-way fare and
// add one more variance draw.
func (a *Assembler) price(segments []domain.FlightSegment, layoverCount int, tripType domain.TripType) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	base := 0.0
	for _, segment := range segments {
		hours := float64(segment.Duration()) / 3600
		base += segmentBaseFare + hours*farePerHour + a.rng.Float64()*fareNoiseCeiling
	}

	total := int(math.Floor(base + float64(layoverCount)*connectionFee))

	if tripType == domain.TripRoundTrip {
		total = int(math.Floor(float64(total)*roundTripFactor + a.rng.Float64()*fareNoiseCeiling))
	}

	return total
}

// bookingLink builds a stable, human-followable search URL for the route.
func bookingLink(segments []domain.FlightSegment) string {
	pairs := make([]string, 0, len(segments))
	for _, segment := range segments {
		pairs = append(pairs, segment.Origin+"-"+segment.Destination)
	}
	return "https://www.google.com/search?q=flights+" + strings.Join(pairs, "+")
}
