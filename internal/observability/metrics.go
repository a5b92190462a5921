package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_inscricao_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_inscricao_active_connections",
			Help: "Number of active connections",
		},
	)

	// ApplicationsSubmitted counts submission outcomes: success, invalid, error.
	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_applications_submitted_total",
			Help: "Number of membership applications submitted, by outcome",
		},
		[]string{"status"},
	)

	// ValidationFailures counts violations by step and field.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_validation_failures_total",
			Help: "Number of validation violations by step and field",
		},
		[]string{"step", "field"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// EmailsSent counts notification deliveries by recipient kind and status.
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_emails_sent_total",
			Help: "Number of notification emails by recipient and status",
		},
		[]string{"recipient", "status"},
	)

	// ReceiptsGenerated counts rendered receipts by format.
	ReceiptsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_receipts_generated_total",
			Help: "Number of receipts generated",
		},
		[]string{"format", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_cache_hits_total",
			Help: "Number of cache lookups by operation and result",
		},
		[]string{"operation", "result"},
	)

	// ExternalLookupDuration tracks postal-code lookup latency.
	ExternalLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "app_inscricao_external_lookup_duration_seconds",
			Help:    "Duration of calls to external lookup services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)

	// RateLimitRejections counts requests refused by a rate limiter.
	RateLimitRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_inscricao_rate_limit_rejections_total",
			Help: "Number of requests rejected by rate limiting",
		},
		[]string{"operation"},
	)
)
