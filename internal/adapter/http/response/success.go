package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// ChartEntries is the number of loaded redemption chart entries
	ChartEntries int `json:"chart_entries"`
}

// Health writes a health check response.
func Health(c echo.Context, chartEntries int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:       "ok",
		ChartEntries: chartEntries,
	})
}
