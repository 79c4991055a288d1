package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs each HTTP request on completion.
// 5xx responses log at error level, 4xx at warn, everything else at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// Let Echo's error handler write the response before logging the status
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			reqLog := log.WithRequestID(GetRequestID(c))

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
