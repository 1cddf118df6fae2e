// Package metrics holds the Prometheus collectors of the dashboard. They are
// registered with the default registry on package init and exposed on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "capsule"

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: matched route template (e.g. "/inventory/:id"), or "unmatched"
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5},
	},
	[]string{"method", "route", "status"},
)

// ActivityRecordFailures counts activity entries that could not be written.
// The originating operation still succeeded.
var ActivityRecordFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_record_failures_total",
		Help:      "Total number of activity trail writes that failed and were dropped.",
	},
)

// InventoryMutations counts successful inventory changes.
// Label:
//   - op: "add" or "delete"
var InventoryMutations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_mutations_total",
		Help:      "Total number of successful inventory additions and deletions.",
	},
	[]string{"op"},
)
