package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Route quoting metrics
	RouteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_route_requests_total",
			Help: "Total number of route quote requests",
		},
		[]string{"status"},
	)

	RouteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gateway_route_duration_seconds",
		Help:    "Route quote request duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	RoutesReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gateway_routes_returned",
		Help:    "Number of normalized routes returned per request",
		Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
	})

	StaleResponses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gateway_stale_responses_total",
		Help: "Total number of aggregator responses discarded because a newer request superseded them",
	})

	// Bridge metrics
	BridgeQuotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_bridge_quotes_total",
			Help: "Total number of privacy-chain bridge quote requests",
		},
		[]string{"status"},
	)

	RelayerJobs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gateway_relayer_jobs_total",
		Help: "Total number of relayer claim jobs queued",
	})

	PollAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gateway_poll_attempts",
		Help:    "Number of status polls per confirmation wait",
		Buckets: []float64{1, 2, 3, 5, 10, 20, 30},
	})

	PollOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_poll_outcomes_total",
			Help: "Terminal outcomes of confirmation polling",
		},
		[]string{"status"},
	)

	// Catalog metrics
	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_catalog_refreshes_total",
			Help: "Total number of chain/token catalog refreshes",
		},
		[]string{"status"},
	)

	CatalogChains = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gateway_catalog_chains",
		Help: "Number of chains in the cached catalog",
	})

	CatalogTokens = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gateway_catalog_tokens",
		Help: "Number of tokens in the cached catalog",
	})

	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
