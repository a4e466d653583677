package http

import (
	"strings"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// ToDomainCriteria converts a validated SearchItinerariesRequest to
// domain.SearchCriteria with defaults applied.
func ToDomainCriteria(req *SearchItinerariesRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:      strings.ToUpper(strings.TrimSpace(req.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(req.Destination)),
		TripType:    domain.TripType(strings.ToLower(req.TripType)),
		Date:        req.Date,
	}
	criteria.SetDefaults()
	return criteria
}
