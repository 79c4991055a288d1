package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-value-engine/internal/adapter/http/response"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
)

// RecoveryConfig configures the panic recovery middleware.
type RecoveryConfig struct {
	// DisablePrintStack omits the stack trace from the panic log entry
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{}
}

// Recover returns middleware that turns a handler panic into a logged 500 response.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var panicMsg string
				if e, ok := r.(error); ok {
					panicMsg = e.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.WithRequestID(GetRequestID(c)).Error().Str("panic", panicMsg)
				if !config.DisablePrintStack {
					event = event.Str("stack", string(debug.Stack()))
				}
				event.Msg("Panic recovered")

				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
