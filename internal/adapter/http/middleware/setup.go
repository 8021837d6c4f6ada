package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line carries it
//  2. RequestLogger
//  3. Metrics, when an observer is given
//  4. Recover, innermost, so a panic still produces a logged 500
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, observer RequestObserver) {
	for _, m := range Chain(log, observer, DefaultRecoveryConfig()) {
		e.Use(m)
	}
}

// Chain returns the middleware stack as a slice for use with route groups.
func Chain(log *logger.Logger, observer RequestObserver, recovery RecoveryConfig) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
	}
	if observer != nil {
		chain = append(chain, Metrics(observer))
	}
	return append(chain, RecoverWithConfig(log, recovery))
}
