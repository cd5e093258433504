package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MatchingRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_runs_total",
			Help: "Number of times the matching engine ran",
		},
	)

	MatchingResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_results",
			Help:    "Number of matches returned per run",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 10, 20},
		},
	)

	CatalogCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"result"},
	)
)
