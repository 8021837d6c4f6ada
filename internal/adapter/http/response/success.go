package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// ActiveSessions is the number of live search sessions
	ActiveSessions int `json:"activeSessions"`
}

// Health writes a health check response.
func Health(c echo.Context, activeSessions int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:         "ok",
		ActiveSessions: activeSessions,
	})
}
