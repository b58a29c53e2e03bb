// Package metrics holds the Prometheus registry and HTTP instruments for
// the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	httpRequestsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by endpoint, method and status.",
		},
		[]string{"endpoint", "method", "status"},
	)

	httpRequestDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by endpoint, method and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Registry returns the registry served on /metrics.
func Registry() *prometheus.Registry {
	return registry
}

// RecordHTTPRequest increments the request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	httpRequestsTotal.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes request latency in seconds.
func RecordHTTPRequestDuration(endpoint, method, status string, seconds float64) {
	httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(seconds)
}
