// Package metrics exposes prometheus instrumentation for searches and sessions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SearchesTotal  *prometheus.CounterVec
	LookupDuration prometheus.Histogram
	ActiveSessions prometheus.Gauge
	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	registry       *prometheus.Registry
}

// NewMetrics creates the metrics on a dedicated registry, so several instances
// (one per test, for example) never collide on registration.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of settled searches by outcome",
		}, []string{"outcome", "failure"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Time spent waiting for the connection lookup service",
			Buckets:   prometheus.DefBuckets,
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "The number of live search sessions",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		registry: reg,
	}
}

// SearchSettled records one settled search.
// lookup is zero when validation failed before any request was sent.
func (m *Metrics) SearchSettled(state domain.ResultState, failure domain.FailureKind, lookup time.Duration) {
	m.SearchesTotal.WithLabelValues(string(state), string(failure)).Inc()
	if lookup > 0 {
		m.LookupDuration.Observe(lookup.Seconds())
	}
}

// SessionsChanged records the current number of live sessions.
func (m *Metrics) SessionsChanged(active int) {
	m.ActiveSessions.Set(float64(active))
}

// RequestServed records one HTTP request. route is the registered path template.
func (m *Metrics) RequestServed(method, route string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
