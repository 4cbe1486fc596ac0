// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Idea aggregation metrics track the external source fan-out
var (
	// IdeaSourceOutcomesTotal counts per-source fetch outcomes by result class
	IdeaSourceOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idea_source_outcomes_total",
			Help: "Per-source idea fetch outcomes",
		},
		[]string{"source", "outcome"},
	)

	// IdeaSourceFetchDuration measures one source's fetch latency in seconds
	IdeaSourceFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idea_source_fetch_duration_seconds",
			Help:    "Idea source fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// IdeaAggregationDuration measures a full fan-out's wall time in seconds
	IdeaAggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "idea_aggregation_duration_seconds",
			Help:    "End-to-end idea aggregation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Auth metrics track login traffic
var (
	// AuthLoginsTotal counts login attempts by result
	AuthLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total login attempts by result",
		},
		[]string{"result"},
	)
)

// Database metrics
var (
	// DBQueryDuration measures database query duration by operation
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
