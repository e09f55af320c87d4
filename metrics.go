package dashboard

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	feedTransit = "transit"
	feedWeather = "weather"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metrics holds the Prometheus collectors for the feed endpoints.
type Metrics struct {
	registry *prometheus.Registry

	Requests         *prometheus.CounterVec   // labels: feed, outcome
	UpstreamDuration *prometheus.HistogramVec // labels: feed
}

// NewMetrics creates and registers the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "feed_requests_total",
			Help:      "Feed endpoint requests by feed and outcome.",
		}, []string{"feed", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "upstream_fetch_duration_seconds",
			Help:      "Upstream fetch-and-normalize duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"feed"}),
	}
	m.registry.MustRegister(m.Requests, m.UpstreamDuration)
	return m
}

func (m *Metrics) CountRequest(feed, outcome string) {
	m.Requests.WithLabelValues(feed, outcome).Inc()
}

func (m *Metrics) ObserveUpstream(feed string, d time.Duration) {
	m.UpstreamDuration.WithLabelValues(feed).Observe(d.Seconds())
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
