package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by path and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_http_requests_total",
		Help: "HTTP requests handled, by path and status code.",
	}, []string{"path", "status"})

	// HTTPDuration tracks request latency by path.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds, by path.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	// SourceFetches counts upstream fetch attempts by source and result.
	SourceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_source_fetches_total",
		Help: "Upstream source fetches, by source and result.",
	}, []string{"source", "result"})

	// SourceFetchErrors counts upstream failures by source and kind.
	SourceFetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_source_fetch_errors_total",
		Help: "Upstream source fetch failures, by source and error kind.",
	}, []string{"source", "kind"})
)
