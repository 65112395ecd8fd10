package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts responses served from the store.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hero_api_cache_hits_total",
			Help: "Total number of cached responses served",
		},
	)

	// CacheMisses counts responses produced by the wrapped handler.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hero_api_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// CacheErrors counts store failures by operation.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hero_api_cache_errors_total",
			Help: "Total number of cache store errors",
		},
		[]string{"operation"}, // "get", "set"
	)
)
