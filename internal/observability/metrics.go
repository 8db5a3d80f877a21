package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusError is the status label recorded when no HTTP response was received.
const StatusError = "error"

var (
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "techfortrees", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "techfortrees", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	Pledges = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "techfortrees", Name: "pledges_total", Help: "Pledges submitted."},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(ExternalRequests, ExternalLatency, Pledges)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveExternal records an outbound call. A status of 0 means the request never got a response.
func ObserveExternal(service string, status int, dur time.Duration) {
	label := StatusError
	if status > 0 {
		label = strconv.Itoa(status)
	}
	ExternalRequests.WithLabelValues(service, label).Inc()
	ExternalLatency.WithLabelValues(service).Observe(dur.Seconds())
}

func ObservePledge() {
	Pledges.Inc()
}
