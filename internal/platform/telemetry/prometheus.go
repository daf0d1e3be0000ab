package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "portfolio"

// Metrics are the service's Prometheus collectors, registered on a private
// registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	todoFallbacks *prometheus.CounterVec
	todoSyncs     *prometheus.CounterVec
	wsClients     prometheus.Gauge
}

// NewMetrics creates the registry with Go and process collectors and the
// todo and change-feed collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		todoFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "todo_fallback_total",
			Help:      "Todo operations served from the local mirror after the remote call failed.",
		}, []string{"operation"}),
		todoSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "todo_sync_total",
			Help:      "Todo sync runs by outcome.",
		}, []string{"outcome"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "ws_clients",
			Help:      "Connected change-feed clients.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.todoFallbacks,
		m.todoSyncs,
		m.wsClients,
	)

	return m
}

// ObserveFallback counts one remote failure served locally.
func (m *Metrics) ObserveFallback(operation string) {
	m.todoFallbacks.WithLabelValues(operation).Inc()
}

// ObserveSync counts a sync run. outcome is "ok" or "failed".
func (m *Metrics) ObserveSync(outcome string) {
	m.todoSyncs.WithLabelValues(outcome).Inc()
}

// SetClients reports the number of connected change-feed clients.
func (m *Metrics) SetClients(n int) {
	m.wsClients.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
