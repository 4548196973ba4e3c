package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the vote history module.
type Metrics struct {
	// Filter usage by kind ("type", "subject")
	FilterUsage *prometheus.CounterVec

	// Requests for a page past the last one
	PagesPastEnd prometheus.Counter

	// Count plus page query latency
	HistoryLatency prometheus.Histogram
}

// New creates a new Metrics instance with all vote module metrics registered.
func New() *Metrics {
	return &Metrics{
		FilterUsage: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "papertrail_vote_filter_usage_total",
			Help: "Total vote history requests using each filter kind",
		}, []string{"kind"}),

		PagesPastEnd: promauto.NewCounter(prometheus.CounterOpts{
			Name: "papertrail_vote_pages_past_end_total",
			Help: "Total vote history requests for a page beyond the last page",
		}),

		HistoryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "papertrail_vote_history_duration_seconds",
			Help:    "Duration of vote history retrieval including count and page queries",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementFilterUsage records that a request used a filter kind.
func (m *Metrics) IncrementFilterUsage(kind string) {
	if m != nil {
		m.FilterUsage.WithLabelValues(kind).Inc()
	}
}

// IncrementPagePastEnd records a request beyond the last page.
func (m *Metrics) IncrementPagePastEnd() {
	if m != nil {
		m.PagesPastEnd.Inc()
	}
}

// ObserveHistoryLatency records the total retrieval duration.
func (m *Metrics) ObserveHistoryLatency(d time.Duration) {
	if m != nil {
		m.HistoryLatency.Observe(d.Seconds())
	}
}
