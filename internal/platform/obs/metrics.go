package obs

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the service's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	resolveLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postcode_geo",
			Subsystem: "resolver",
			Name:      "lookups_total",
			Help:      "Postal code resolutions by the source that answered.",
		},
		[]string{"source", "found"},
	)

	remoteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postcode_geo",
			Subsystem: "resolver",
			Name:      "remote_failures_total",
			Help:      "Remote geocode lookups that degraded to not-found.",
		},
		[]string{"reason"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postcode_geo",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "postcode_geo",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)
)

func init() {
	Registry.MustRegister(
		resolveLookups,
		remoteFailures,
		httpRequests,
		httpDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// MetricsHandler exposes the registered collectors.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordLookup counts one resolution answered by source.
func RecordLookup(source string, found bool) {
	f := "false"
	if found {
		f = "true"
	}
	resolveLookups.WithLabelValues(source, f).Inc()
}

// RecordRemoteFailure counts one remote lookup that degraded to not-found.
func RecordRemoteFailure(reason string) {
	remoteFailures.WithLabelValues(reason).Inc()
}

// RecordHTTP records one served request.
func RecordHTTP(method, route string, status int, seconds float64) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(seconds)
}
