package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide HTTP and store metrics.
// All methods are safe to call on a nil receiver so tests can skip registration.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	QueryDuration   *prometheus.HistogramVec
	QueryErrors     *prometheus.CounterVec
}

// New creates and registers all metrics with the default registry. Call once per process.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "papertrail_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern, method and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"route", "method", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "papertrail_store_query_duration_seconds",
			Help:    "Duration of store queries by query name",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"query"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "papertrail_store_query_errors_total",
			Help: "Total store query failures by query name",
		}, []string{"query"}),
	}
}

// ObserveRequest records the duration of an HTTP request.
func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}

// ObserveQuery records the duration of a store query and counts failures.
// Call with time.Now() captured at the start of the query.
func (m *Metrics) ObserveQuery(query string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err != nil {
		m.QueryErrors.WithLabelValues(query).Inc()
	}
}
