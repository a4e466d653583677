package usecase

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// Default memoization settings.
const (
	// DefaultCacheTTL is how long an identical search is answered from cache.
	DefaultCacheTTL = 5 * time.Minute

	// cacheCleanupInterval is how often expired entries are purged.
	cacheCleanupInterval = 10 * time.Minute
)

// cachedItinerarySearch memoizes successful search results for a time
// window, keyed by the normalized criteria. Only successful results are
// cached: "no results" and provider failures always re-run, since upstream
// schedules may recover within the window.
type cachedItinerarySearch struct {
	next  ItinerarySearchUseCase
	cache *gocache.Cache
	log   zerolog.Logger
}

// NewCachedItinerarySearch wraps a search use case with TTL memoization.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedItinerarySearch(next ItinerarySearchUseCase, ttl time.Duration, log zerolog.Logger) ItinerarySearchUseCase {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedItinerarySearch{
		next:  next,
		cache: gocache.New(ttl, cacheCleanupInterval),
		log:   log,
	}
}

// Search implements ItinerarySearchUseCase.Search with memoization.
func (c *cachedItinerarySearch) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	key := criteria.CacheKey()

	if cached, found := c.cache.Get(key); found {
		if result, ok := cached.(*domain.SearchResult); ok {
			c.log.Debug().Str("key", key).Msg("Search served from cache")
			copied := result.Clone()
			copied.Metadata.CacheHit = true
			return copied, nil
		}
	}

	result, err := c.next.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, result, gocache.DefaultExpiration)
	return result, nil
}

// Ensure cachedItinerarySearch implements ItinerarySearchUseCase at compile time.
var _ ItinerarySearchUseCase = (*cachedItinerarySearch)(nil)
