package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance.
// RequestID runs first so the logger and the recovery handler can see the ID;
// Recover runs innermost so a panic still produces a logged 500.
func Setup(e *echo.Echo, log *logger.Logger) {
	e.Use(Chain(log, DefaultRecoveryConfig())...)
}

// Chain returns the middleware in registration order, for use with route groups.
func Chain(log *logger.Logger, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, recoveryConfig),
	}
}
