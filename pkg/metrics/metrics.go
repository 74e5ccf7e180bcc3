// Package metrics registers the toolkit's prometheus collectors on the
// default registry. The mock backend serves them at /metrics; embedding
// applications can expose them with promhttp the same way.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// APIRequests counts API client round trips by method, route and
	// status code ("error" when the transport failed).
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ignacio_api_requests_total",
		Help: "API client requests by method, route and status.",
	}, []string{"method", "route", "status"})

	// APILatency tracks API client round-trip latency per route.
	APILatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ignacio_api_request_seconds",
		Help:    "API client request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// PendingMutations gauges optimistic ops currently awaiting settlement
	// across all ledgers.
	PendingMutations = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ignacio_pending_mutations",
		Help: "Optimistic mutations currently in flight.",
	})

	// SettlementFailures counts mutations whose real operation failed.
	SettlementFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ignacio_settlement_failures_total",
		Help: "Optimistic mutations that settled with an error, by kind.",
	}, []string{"kind"})

	// CacheHits / CacheStale / CacheMisses count fetch-cache reads.
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ignacio_cache_hits_total",
		Help: "Fetch cache reads served fresh.",
	})
	CacheStale = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ignacio_cache_stale_total",
		Help: "Fetch cache reads served stale.",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ignacio_cache_misses_total",
		Help: "Fetch cache reads with no usable entry.",
	})

	// CacheEvictions counts entries dropped by sweeps or capacity limits.
	CacheEvictions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ignacio_cache_evictions_total",
		Help: "Fetch cache entries evicted.",
	})
)

func init() {
	prometheus.MustRegister(
		APIRequests,
		APILatency,
		PendingMutations,
		SettlementFailures,
		CacheHits,
		CacheStale,
		CacheMisses,
		CacheEvictions,
	)
}
