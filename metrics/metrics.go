// Package metrics exposes Prometheus counters for the HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors served on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Requests counts processed HTTP requests by method, route and status.
	Requests *prometheus.CounterVec
	// Verdicts counts signed-URL authorization outcomes.
	Verdicts *prometheus.CounterVec
}

// New creates a Metrics with its own registry, so tests and multiple server
// instances don't collide on the global one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hlsgate_http_requests_total",
			Help: "Total HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		Verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hlsgate_auth_verdicts_total",
			Help: "Signed-URL authorization verdicts.",
		}, []string{"verdict"}),
	}
	m.registry.MustRegister(m.Requests, m.Verdicts)
	return m
}

// Handler returns the exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
