package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MutationsTotal counts collection mutations by collection and action.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hiring_mutations_total",
			Help: "Total number of record mutations",
		},
		[]string{"collection", "action"},
	)

	// QueriesTotal counts list queries by collection.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hiring_queries_total",
			Help: "Total number of list queries",
		},
		[]string{"collection"},
	)

	// QueryDuration tracks list query duration in seconds.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hiring_query_duration_seconds",
			Help:    "Duration of list queries in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs to ~400ms
		},
		[]string{"collection"},
	)

	// StoreWriteFailures counts failed whole-collection writes.
	StoreWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hiring_store_write_failures_total",
			Help: "Total number of failed record store writes",
		},
		[]string{"collection"},
	)

	// PublishFailures counts change events that could not be published.
	PublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hiring_publish_failures_total",
			Help: "Total number of change events that failed to publish",
		},
	)
)
