// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	aggregationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "focusflow",
		Subsystem: "analytics",
		Name:      "aggregation_duration_seconds",
		Help:      "Time spent computing an analytics view.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}, []string{"view"})

	togglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "focusflow",
		Subsystem: "tracking",
		Name:      "toggles_total",
		Help:      "Completion toggles by resulting state.",
	}, []string{"outcome"})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "focusflow",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route template and status code.",
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(aggregationDuration, togglesTotal, httpRequestsTotal)
}

// ObserveAggregation records how long an analytics view took.
func ObserveAggregation(view string, d time.Duration) {
	aggregationDuration.WithLabelValues(view).Observe(d.Seconds())
}

// RecordToggle counts a completion toggle; completed is the state after it.
func RecordToggle(completed bool) {
	outcome := "uncompleted"
	if completed {
		outcome = "completed"
	}
	togglesTotal.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest counts a served request. Unmatched routes are grouped
// under "unmatched" to bound label cardinality.
func RecordHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
