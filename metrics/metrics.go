package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 相关媒体排序
	RelatedMediaRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "related_media_requests_total",
			Help: "Total number of related media lookups by result",
		},
		[]string{"result"}, // ok, invalid_argument, not_found, internal
	)

	RelatedMediaCandidatesScanned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "related_media_candidates_scanned",
			Help:    "Number of candidate media documents scored per lookup",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		},
	)

	RelatedMediaDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "related_media_duration_seconds",
			Help:    "Related media ranking duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// 媒体托管服务
	MediaHostRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_host_requests_total",
			Help: "Total number of media host API calls by outcome",
		},
		[]string{"operation", "outcome"}, // outcome: ok, error, circuit_open
	)

	MediaHostCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "media_host_circuit_state",
			Help: "Media host circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// RecordHTTPRequest 记录一次 HTTP 请求
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRelatedMedia 记录一次相关媒体计算
func RecordRelatedMedia(mode, result string, scanned int, duration time.Duration) {
	RelatedMediaRequests.WithLabelValues(result).Inc()
	RelatedMediaDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if scanned >= 0 {
		RelatedMediaCandidatesScanned.Observe(float64(scanned))
	}
}
