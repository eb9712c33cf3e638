// Package metrics records engine request metrics.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "esdex",
			Name:      "engine_request_duration_seconds",
			Help:      "Engine request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "operation", "status"},
	)

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "esdex",
			Name:      "engine_requests_total",
			Help:      "Total number of engine requests",
		},
		[]string{"method", "operation", "status"},
	)
)

func init() {
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(requestsTotal)
}

// ObserveRequest records one engine round trip. status is the numeric HTTP
// status, or "error" when no response was received.
func ObserveRequest(method, operation, status string, seconds float64) {
	requestDuration.WithLabelValues(method, operation, status).Observe(seconds)
	requestsTotal.WithLabelValues(method, operation, status).Inc()
}

// OperationFromPath maps a request path to a low-cardinality operation label.
// API endpoints end in an underscore segment (_search, _query, _refresh);
// everything else addresses a single document.
func OperationFromPath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return "unknown"
	}
	if strings.HasPrefix(last, "_") && last != "_all" {
		return strings.TrimPrefix(last, "_")
	}
	return "document"
}
