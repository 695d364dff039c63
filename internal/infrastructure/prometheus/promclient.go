package promclient

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var CacheHits = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "listings_cache_hits_total",
		Help: "cache hits by tier (base, sorted, history)",
	},
	[]string{"tier"},
)

var CacheMisses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "listings_cache_misses_total",
		Help: "cache misses by tier (base, sorted, history)",
	},
	[]string{"tier"},
)

var UpstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "upstream provider requests by provider and outcome",
	},
	[]string{"provider", "outcome"},
)

// Handler returns the /metrics handler with all collectors registered.
func Handler() http.Handler {
	reg := prometheus.NewRegistry()

	reg.MustRegister(CacheHits)
	reg.MustRegister(CacheMisses)
	reg.MustRegister(UpstreamRequests)
	reg.MustRegister(collectors.NewGoCollector())

	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
