// Package metrics holds the Prometheus collectors of the service. Collectors
// register on the default registry, which /metrics exposes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "folio"

// Upstream sources
const (
	SourceGitHub = "github"
	SourceMedium = "medium"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Number of outbound requests to upstream feeds by result",
	}, []string{"source", "result"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of outbound requests to upstream feeds",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms to ~6.4s
	}, []string{"source"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Response cache lookups by result (hit, miss, error)",
	}, []string{"source", "result"})

	recordsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_records_dropped_total",
		Help:      "Upstream entries dropped during normalization",
	}, []string{"source"})

	contactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by result",
	}, []string{"result"})
)

// ObserveUpstream records one outbound call started at start.
func ObserveUpstream(source string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	upstreamRequests.WithLabelValues(source, result).Inc()
	upstreamDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

func CacheHit(source string)   { cacheLookups.WithLabelValues(source, "hit").Inc() }
func CacheMiss(source string)  { cacheLookups.WithLabelValues(source, "miss").Inc() }
func CacheError(source string) { cacheLookups.WithLabelValues(source, "error").Inc() }

func RecordsDropped(source string, n int) {
	if n > 0 {
		recordsDropped.WithLabelValues(source).Add(float64(n))
	}
}

// ContactSubmitted records a contact form outcome: sent, invalid or failed.
func ContactSubmitted(result string) {
	contactSubmissions.WithLabelValues(result).Inc()
}
