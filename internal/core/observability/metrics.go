// Package observability exposes Prometheus metrics for the geometry
// service.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"method", "route", "status"},
	)

	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geometry_parse_total",
			Help: "Geometry import attempts by format and outcome.",
		},
		[]string{"format", "outcome"},
	)

	parseDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geometry_parse_duration_seconds",
			Help:    "Duration of geometry imports in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14),
		},
		[]string{"format"},
	)

	cacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_results_total",
			Help: "Parse-cache results by outcome.",
		},
		[]string{"outcome"},
	)

	cacheOpDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Duration of cache backend operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op", "outcome"},
	)

	ingestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geometry_ingest_total",
			Help: "Ingested geometry documents by outcome.",
		},
		[]string{"outcome"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

// ObserveParse records one import attempt. The outcome label is "ok",
// or the failure class ("blank", "format").
func ObserveParse(format, outcome string, durationSeconds float64) {
	parseTotal.WithLabelValues(format, outcome).Inc()
	parseDurationSeconds.WithLabelValues(format).Observe(durationSeconds)
}

func IncCacheHit()  { cacheResults.WithLabelValues("hit").Inc() }
func IncCacheMiss() { cacheResults.WithLabelValues("miss").Inc() }

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	cacheOpDurationSeconds.WithLabelValues(op, outcome).Observe(durationSeconds)
}

func IncIngest(outcome string) {
	ingestTotal.WithLabelValues(outcome).Inc()
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
