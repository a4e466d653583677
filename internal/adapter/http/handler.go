// Package http provides the HTTP handler layer for the itinerary search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/cheapest-itinerary-service/internal/adapter/http/response"
	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary search endpoints.
type ItineraryHandler struct {
	useCase usecase.ItinerarySearchUseCase
}

// NewItineraryHandler creates a new ItineraryHandler with the given use case.
func NewItineraryHandler(uc usecase.ItinerarySearchUseCase) *ItineraryHandler {
	return &ItineraryHandler{
		useCase: uc,
	}
}

// SearchItineraries handles POST /api/v1/itineraries/search
//
// @Summary Search for the cheapest itinerary
// @Description Finds the cheapest direct or one-stop itinerary between two airports
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body SearchItinerariesRequest true "Search criteria"
// @Success 200 {object} SearchResultDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "No itineraries found"
// @Failure 502 {object} response.ErrorDetail "Schedule data unavailable"
// @Failure 503 {object} response.ErrorDetail "Upstream rate limited"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/search [post]
func (h *ItineraryHandler) SearchItineraries(c echo.Context) error {
	var req SearchItinerariesRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req)

	result, err := h.useCase.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResult(c, ToSearchResultDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
// Rate limiting is checked before the generic schedule error because a
// throttled provider reports both.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	if domain.IsRateLimited(err) {
		return response.RateLimited(c)
	}

	if errors.Is(err, domain.ErrNoItineraries) {
		return response.NoResults(c)
	}

	if errors.Is(err, domain.ErrScheduleUnavailable) {
		return response.UpstreamUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
