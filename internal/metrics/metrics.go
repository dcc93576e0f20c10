// Package metrics defines the Prometheus metrics exported by the portal.
// All metrics are registered with the default registry on package init via
// promauto and served by promhttp on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mtarp_portal"

// HTTPRequestsTotal counts served HTTP requests.
// Labels:
//   - method: HTTP method
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served, by method and status.",
	},
	[]string{"method", "status"},
)

// HTTPRequestDuration measures request handling time.
// Label:
//   - method: HTTP method
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// AuthRequestsTotal counts calls to the external auth endpoint.
// Labels:
//   - action: "login" or "register"
//   - outcome: "ok", "app_error" or "transport_error"
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of auth endpoint calls, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// AuthRequestDuration measures round trips to the auth endpoint.
// Label:
//   - action: "login" or "register"
var AuthRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_request_duration_seconds",
		Help:      "Duration of auth endpoint calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)

// PanicsRecoveredTotal counts handler panics caught by the recovery middleware
var PanicsRecoveredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panics_recovered_total",
		Help:      "Total number of panics recovered while serving HTTP requests.",
	},
)

// ObserveHTTPRequest records one served request
func ObserveHTTPRequest(method string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveAuthRequest records one auth endpoint call
func ObserveAuthRequest(action, outcome string, d time.Duration) {
	AuthRequestsTotal.WithLabelValues(action, outcome).Inc()
	AuthRequestDuration.WithLabelValues(action).Observe(d.Seconds())
}
