package http

import (
	"time"

	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
)

// SearchResultDTO is the data transfer object for a successful search.
// It matches the API output format with snake_case fields.
type SearchResultDTO struct {
	Criteria  CriteriaDTO  `json:"criteria"`
	Metadata  MetadataDTO  `json:"metadata"`
	Itinerary ItineraryDTO `json:"itinerary"`
}

// CriteriaDTO echoes the normalized search parameters.
type CriteriaDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TripType    string `json:"trip_type"`
	Date        string `json:"date,omitempty"`
}

// MetadataDTO contains information about the search execution.
type MetadataDTO struct {
	CandidatesEvaluated int   `json:"candidates_evaluated"`
	HubsExplored        int   `json:"hubs_explored"`
	SearchTimeMs        int64 `json:"search_time_ms"`
	CacheHit            bool  `json:"cache_hit"`
}

// ItineraryDTO is the data transfer object for an itinerary.
type ItineraryDTO struct {
	ID            string       `json:"id"`
	Price         int          `json:"price"`
	Currency      string       `json:"currency"`
	Route         []SegmentDTO `json:"route"`
	Layovers      []LayoverDTO `json:"layovers,omitempty"`
	TripType      string       `json:"trip_type"`
	Stops         int          `json:"stops"`
	TotalDuration DurationDTO  `json:"total_duration"`
	BookingLink   string       `json:"booking_link,omitempty"`
}

// SegmentDTO represents one flight leg.
type SegmentDTO struct {
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	Airline      string      `json:"airline"`
	FlightNumber string      `json:"flight_number,omitempty"`
	Departure    string      `json:"departure"`
	Arrival      string      `json:"arrival"`
	Duration     DurationDTO `json:"duration"`
}

// LayoverDTO represents the ground time at a connection airport.
type LayoverDTO struct {
	Airport   string      `json:"airport"`
	Arrival   string      `json:"arrival"`
	Departure string      `json:"departure"`
	Duration  DurationDTO `json:"duration"`
}

// DurationDTO carries a duration in seconds plus a display string.
type DurationDTO struct {
	TotalSeconds int64  `json:"total_seconds"`
	Formatted    string `json:"formatted"`
}

// fareCurrency is the fixed currency of synthesized fares.
const fareCurrency = "USD"

// ToSearchResultDTO converts a domain SearchResult to its response DTO.
func ToSearchResultDTO(result *domain.SearchResult) *SearchResultDTO {
	if result == nil {
		return nil
	}

	return &SearchResultDTO{
		Criteria: CriteriaDTO{
			Origin:      result.Criteria.Origin,
			Destination: result.Criteria.Destination,
			TripType:    string(result.Criteria.TripType),
			Date:        result.Criteria.Date,
		},
		Metadata: MetadataDTO{
			CandidatesEvaluated: result.Metadata.CandidatesEvaluated,
			HubsExplored:        result.Metadata.HubsExplored,
			SearchTimeMs:        result.Metadata.SearchTimeMs,
			CacheHit:            result.Metadata.CacheHit,
		},
		Itinerary: toItineraryDTO(result.Itinerary),
	}
}

// toItineraryDTO converts a domain Itinerary to its DTO.
func toItineraryDTO(itinerary domain.Itinerary) ItineraryDTO {
	route := make([]SegmentDTO, 0, len(itinerary.Route))
	for _, segment := range itinerary.Route {
		route = append(route, SegmentDTO{
			Origin:       segment.Origin,
			Destination:  segment.Destination,
			Airline:      segment.Airline,
			FlightNumber: segment.FlightNumber,
			Departure:    formatTimestamp(segment.DepartureTimeUTC),
			Arrival:      formatTimestamp(segment.ArrivalTimeUTC),
			Duration:     toDurationDTO(segment.Duration()),
		})
	}

	var layovers []LayoverDTO
	for _, layover := range itinerary.Layovers {
		layovers = append(layovers, LayoverDTO{
			Airport:   layover.Airport,
			Arrival:   formatTimestamp(layover.ArrivalTimeUTC),
			Departure: formatTimestamp(layover.DepartureTimeUTC),
			Duration:  toDurationDTO(layover.DurationSeconds),
		})
	}

	return ItineraryDTO{
		ID:            itinerary.ID,
		Price:         itinerary.Price,
		Currency:      fareCurrency,
		Route:         route,
		Layovers:      layovers,
		TripType:      string(itinerary.TripType),
		Stops:         itinerary.Stops,
		TotalDuration: toDurationDTO(itinerary.TotalDurationSeconds),
		BookingLink:   itinerary.BookingLink,
	}
}

// formatTimestamp renders Unix seconds as RFC3339 UTC.
func formatTimestamp(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format(time.RFC3339)
}

// toDurationDTO renders seconds as both a number and an "Xh Ym" string.
func toDurationDTO(seconds int64) DurationDTO {
	return DurationDTO{
		TotalSeconds: seconds,
		Formatted:    formatDuration(seconds),
	}
}

// formatDuration formats a second count as "Xh Ym", "Xh", or "Ym".
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	switch {
	case hours > 0 && minutes > 0:
		return itoa(hours) + "h " + itoa(minutes) + "m"
	case hours > 0:
		return itoa(hours) + "h"
	default:
		return itoa(minutes) + "m"
	}
}

// itoa converts a small non-negative int to a string.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
