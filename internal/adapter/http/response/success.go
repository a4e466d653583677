// Package response provides standardized HTTP response builders for the
// itinerary search API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// SearchResult writes a 200 OK response with the cheapest itinerary found.
func SearchResult(c echo.Context, result interface{}) error {
	return c.JSON(http.StatusOK, result)
}
