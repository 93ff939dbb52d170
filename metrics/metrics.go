package metrics

import (
	"net/http"

	"github.com/danny0094/mcp-bridge-stack/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DefaultMetrics = initMetrics()
)

const metricsNamespace = "mcpbridge"

type Metrics struct {
	Handler        http.Handler
	ObservedValues ObservedValues
}

type ObservedValues struct {
	LastUpdatedAt        prometheus.Gauge
	NumberOfRoutes       prometheus.Gauge
	RegistryLoadFailures prometheus.Counter
	RoutingDecisions     *prometheus.CounterVec
	UpstreamFailures     *prometheus.CounterVec
}

func initMetrics() Metrics {
	m := Metrics{
		Handler: promhttp.Handler(),
		ObservedValues: ObservedValues{
			LastUpdatedAt: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "registry_last_updated_at", Help: "Unix timestamp indicating last registry snapshot install"}),
			NumberOfRoutes: prometheus.NewGauge(
				prometheus.GaugeOpts{Namespace: metricsNamespace, Name: "routes", Help: "Number of enabled routes in the active registry snapshot"}),
			RegistryLoadFailures: prometheus.NewCounter(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "registry_load_failures_total", Help: "Number of failed registry loads"}),
			RoutingDecisions: prometheus.NewCounterVec(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "routing_decisions_total", Help: "Routing decisions by origin"},
				[]string{"origin"}),
			UpstreamFailures: prometheus.NewCounterVec(
				prometheus.CounterOpts{Namespace: metricsNamespace, Name: "upstream_failures_total", Help: "Failed forwards by route"},
				[]string{"route"}),
		},
	}

	prometheus.MustRegister(m.ObservedValues.LastUpdatedAt)
	prometheus.MustRegister(m.ObservedValues.NumberOfRoutes)
	prometheus.MustRegister(m.ObservedValues.RegistryLoadFailures)
	prometheus.MustRegister(m.ObservedValues.RoutingDecisions)
	prometheus.MustRegister(m.ObservedValues.UpstreamFailures)

	return m
}

func Update(snapshot *models.RegistrySnapshot) {
	DefaultMetrics.ObservedValues.LastUpdatedAt.SetToCurrentTime()
	DefaultMetrics.ObservedValues.NumberOfRoutes.Set(float64(snapshot.Len()))
}

// Recorder feeds DefaultMetrics from the loader and the request handler.
type Recorder struct{}

func (Recorder) Update(snapshot *models.RegistrySnapshot) {
	Update(snapshot)
}

func (Recorder) LoadFailed() {
	DefaultMetrics.ObservedValues.RegistryLoadFailures.Inc()
}

func (Recorder) RoutingDecision(origin models.Origin) {
	DefaultMetrics.ObservedValues.RoutingDecisions.WithLabelValues(string(origin)).Inc()
}

func (Recorder) UpstreamFailure(route string) {
	DefaultMetrics.ObservedValues.UpstreamFailures.WithLabelValues(route).Inc()
}
