package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	ProxyCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tronlens",
			Subsystem: "proxy",
			Name:      "cache_lookups_total",
			Help:      "Proxy cache lookups by route and result (hit, miss, error)",
		},
		[]string{"route", "result"},
	)

	ProxyUpstreamStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tronlens",
			Subsystem: "proxy",
			Name:      "upstream_responses_total",
			Help:      "Upstream responses relayed by the proxy, by status class",
		},
		[]string{"route", "class"},
	)
)

// Register adds the proxy collectors to the default registry once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(ProxyCacheLookups, ProxyUpstreamStatus)
	})
}

// StatusClass buckets an HTTP status code; 0 stands for a transport failure.
func StatusClass(code int) string {
	switch {
	case code == 0:
		return "transport_error"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
