package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the health check and the versioned valuation API.
func RegisterRoutes(e *echo.Echo, h *ValuationHandler) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/routes", h.ListRoutes)
	api.POST("/valuations", h.Evaluate)
}

// RegisterSwagger serves the Swagger UI under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
