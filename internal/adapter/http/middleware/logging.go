package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
)

// quietPaths are logged at debug level since probes and scrapers hit them constantly.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogger returns middleware that logs every HTTP request on completion.
// The session ID is added when the route carries one.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				// let echo's error handler write the response before logging the status
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			status := res.Status

			reqLog := log.WithRequestID(GetRequestID(c))
			if sessionID := c.Param("id"); sessionID != "" {
				reqLog = reqLog.WithSession(sessionID)
			}

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			case quietPaths[req.URL.Path]:
				event = reqLog.Debug()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
