package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the ranking engine
type Registry struct {
	// Graph Metrics
	GraphNodesTotal      prometheus.Gauge
	GraphEdgeWeightTotal prometheus.Gauge

	// Analysis Metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	PPRIterations    prometheus.Histogram
	PPRRunsTotal     *prometheus.CounterVec
	GoldenVolumeSize prometheus.Histogram
	EntropyNodesSize prometheus.Histogram
	SystemEntropy    prometheus.Gauge
	SystemEfficiency prometheus.Gauge

	// Projection Metrics
	ProjectionsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initAnalysisMetrics()
	r.initProjectionMetrics()

	return r
}

// Handler returns an HTTP handler for the /metrics endpoint, for hosts
// that embed the engine in a service.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying prometheus registry for tests and
// custom exposition.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
