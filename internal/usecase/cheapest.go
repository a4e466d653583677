package usecase

import "github.com/flight-deals/cheapest-itinerary-service/internal/domain"

// FindCheapest returns the lowest-priced well-formed itinerary from the
// candidate list, or nil when the list is empty or every candidate is
// malformed. The comparison is strict less-than, so the earliest-indexed
// candidate wins price ties. The input is never mutated.
func FindCheapest(candidates []domain.Itinerary) *domain.Itinerary {
	var cheapest *domain.Itinerary

	for i := range candidates {
		// Malformed candidates (no route, negative price) are skipped,
		// not reported: they simply don't compete.
		if !candidates[i].IsWellFormed() {
			continue
		}
		if cheapest == nil || candidates[i].Price < cheapest.Price {
			cheapest = &candidates[i]
		}
	}

	if cheapest == nil {
		return nil
	}

	// Return a copy so callers cannot mutate the candidate list through
	// the winner.
	winner := *cheapest
	return &winner
}
