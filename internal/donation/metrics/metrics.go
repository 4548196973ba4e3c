package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"papertrail/internal/donation/taxonomy"
)

// UnknownTopic is the label shared by every topic outside the taxonomy.
const UnknownTopic = "unknown"

// Metrics provides observability for the donation module.
type Metrics struct {
	// Topic lookups by topic label; unknown topics collapse into one label value
	TopicLookups *prometheus.CounterVec

	// Summary latency by kind ("all" or "topic")
	SummaryLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance with all donation module metrics registered.
// Every taxonomy topic starts at zero so dashboards see the full label set.
func New() *Metrics {
	m := &Metrics{
		TopicLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "papertrail_donation_topic_lookups_total",
			Help: "Total filtered summary requests by topic",
		}, []string{"topic"}),

		SummaryLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "papertrail_donation_summary_duration_seconds",
			Help:    "Duration of donation summary aggregation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),
	}
	for _, topic := range append(taxonomy.Topics(), UnknownTopic) {
		m.TopicLookups.WithLabelValues(topic)
	}
	return m
}

// IncrementTopicLookup counts a filtered summary request. Topics outside the
// taxonomy are counted under UnknownTopic so label cardinality stays bounded.
func (m *Metrics) IncrementTopicLookup(topic string) {
	if m == nil {
		return
	}
	if _, ok := taxonomy.Industries(topic); !ok {
		topic = UnknownTopic
	}
	m.TopicLookups.WithLabelValues(topic).Inc()
}

// ObserveSummaryLatency records the duration of one aggregation.
func (m *Metrics) ObserveSummaryLatency(kind string, d time.Duration) {
	if m != nil {
		m.SummaryLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}
