package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and the versioned API routes.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/cities", h.ListCities)

	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.PATCH("/:id/query", h.UpdateQuery)
	sessions.POST("/:id/search", h.RunSearch)
	sessions.POST("/:id/reset", h.ResetSession)
}
