package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RewriteRequestsTotal counts requests seen by the rewrite middleware,
	// by asset policy and by whether the path was kept or rewritten
	RewriteRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pages_spa_rewrite_requests_total",
		Help: "The number of requests classified by the root object rewrite",
	}, []string{"policy", "outcome"})

	// ProcessedRequests is the number of HTTP requests served
	ProcessedRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pages_spa_rewrite_http_requests_total",
		Help: "Total number of HTTP requests done serving",
	}, []string{"code", "method"})

	// SessionsActive is the number of HTTP requests currently being processed
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pages_spa_rewrite_http_sessions_active",
		Help: "The number of HTTP requests currently being processed",
	})

	// DiskServingFileSize metric for file size serving.
	DiskServingFileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "pages_spa_rewrite_disk_serving_file_size_bytes",
		Help: "The size in bytes for each file that has been served",
		// From 1B to 100MB in *10 increments (1 10 100 1,000 10,000 100,000 1'000,000 10'000,000 100'000,000)
		Buckets: prometheus.ExponentialBuckets(1.0, 10.0, 9),
	})

	// LimitListenerMaxConns is the configured max number of connections
	LimitListenerMaxConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pages_spa_rewrite_limit_listener_max_conns",
		Help: "The maximum number of concurrent connections allowed by the listeners",
	})

	// LimitListenerConcurrentConns is the number of connections currently open
	LimitListenerConcurrentConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pages_spa_rewrite_limit_listener_concurrent_conns",
		Help: "The number of concurrent connections accepted by the listeners",
	})

	// LimitListenerWaitingConns is the number of connections waiting for a slot
	LimitListenerWaitingConns = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pages_spa_rewrite_limit_listener_waiting_conns",
		Help: "The number of connections waiting for a free connection slot",
	})
)

// MustRegister collectors with the Prometheus client
func MustRegister() {
	prometheus.MustRegister(
		RewriteRequestsTotal,
		ProcessedRequests,
		SessionsActive,
		DiskServingFileSize,
		LimitListenerMaxConns,
		LimitListenerConcurrentConns,
		LimitListenerWaitingConns,
	)
}
