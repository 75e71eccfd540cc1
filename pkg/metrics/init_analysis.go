package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "synergyrank_analyses_total",
			Help: "Total number of synergy analyses executed",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "synergyrank_analysis_duration_seconds",
			Help:    "Full analysis duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.PPRIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "synergyrank_ppr_iterations",
			Help:    "Power iterations performed per analysis",
			Buckets: []float64{1, 5, 10, 20, 30, 40, 50, 100},
		},
	)

	r.PPRRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "synergyrank_ppr_runs_total",
			Help: "Total PPR computations by convergence outcome",
		},
		[]string{"converged"},
	)

	r.GoldenVolumeSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "synergyrank_golden_volume_size",
			Help:    "Number of nodes in the golden volume per analysis",
			Buckets: []float64{0, 1, 2, 3, 5, 10},
		},
	)

	r.EntropyNodesSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "synergyrank_entropy_nodes_size",
			Help:    "Number of entropy nodes per analysis",
			Buckets: []float64{0, 1, 2, 3, 5},
		},
	)

	r.SystemEntropy = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "synergyrank_system_entropy",
			Help: "System entropy of the most recent analysis",
		},
	)

	r.SystemEfficiency = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "synergyrank_system_efficiency",
			Help: "System efficiency of the most recent analysis",
		},
	)
}
