// Package metrics holds the Prometheus collectors for SunEye.
// Collectors live on a dedicated registry that is exposed at /metrics
// when the MCP server runs over HTTP.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
	OutcomeCancelled = "cancelled"
)

var (
	// Registry is the dedicated Prometheus registry for SunEye.
	Registry = prometheus.NewRegistry()

	// BackendRequests counts analysis service calls by endpoint and outcome.
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "suneye_backend_requests_total", Help: "Analysis service requests by endpoint and outcome."},
		[]string{"endpoint", "outcome"},
	)

	// BackendDuration records analysis service latency in seconds.
	BackendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "suneye_backend_request_duration_seconds",
			Help:    "Analysis service request duration in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"endpoint"},
	)

	// Submissions counts analysis submissions by input mode and outcome.
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "suneye_submissions_total", Help: "Analysis submissions by input mode and outcome."},
		[]string{"mode", "outcome"},
	)

	// Exports counts artifact exports by outcome.
	Exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "suneye_exports_total", Help: "Result exports by outcome."},
		[]string{"outcome"},
	)
)

var regOnce sync.Once

// Register adds all collectors to Registry. Safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(BackendRequests)
		Registry.MustRegister(BackendDuration)
		Registry.MustRegister(Submissions)
		Registry.MustRegister(Exports)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler serves Registry in the Prometheus text format.
func Handler() http.Handler {
	Register()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveBackend records one analysis service call.
func ObserveBackend(endpoint, outcome string, elapsed time.Duration) {
	BackendRequests.WithLabelValues(endpoint, outcome).Inc()
	BackendDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
