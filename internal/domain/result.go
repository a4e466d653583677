package domain

// SearchResult is the outcome of a successful cheapest-itinerary search.
type SearchResult struct {
	// Criteria echoes the normalized search parameters
	Criteria SearchCriteria `json:"criteria"`

	// Itinerary is the single cheapest itinerary found
	Itinerary Itinerary `json:"itinerary"`

	// Metadata describes how the search ran
	Metadata SearchMetadata `json:"metadata"`
}

// Clone returns a copy of the result whose itinerary slices are independent
// of the receiver's, so callers can mutate one without affecting the other.
func (r *SearchResult) Clone() *SearchResult {
	copied := *r
	if r.Itinerary.Route != nil {
		copied.Itinerary.Route = append([]FlightSegment(nil), r.Itinerary.Route...)
	}
	if r.Itinerary.Layovers != nil {
		copied.Itinerary.Layovers = append([]Layover(nil), r.Itinerary.Layovers...)
	}
	return &copied
}

// SearchMetadata contains information about the search execution.
type SearchMetadata struct {
	// CandidatesEvaluated is how many assembled itineraries competed
	CandidatesEvaluated int `json:"candidates_evaluated"`

	// HubsExplored is how many hub airports were probed for a one-stop
	// connection (zero when a direct flight existed)
	HubsExplored int `json:"hubs_explored"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`

	// CacheHit indicates whether the result came from the memoization cache
	CacheHit bool `json:"cache_hit"`
}
