package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	RequestServed(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports every request to observer.
// Requests that matched no route are reported under "unmatched" to keep label cardinality bounded.
func Metrics(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			observer.RequestServed(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
