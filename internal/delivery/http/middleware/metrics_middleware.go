package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that matched no route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// RequestObserver receives one observation per HTTP request.
type RequestObserver interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request counts and latencies by route template.
type MetricsMiddleware struct {
	observer RequestObserver
}

func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		m.observer.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))

		return nil
	}
}
