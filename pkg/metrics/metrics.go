package metrics

import (
	"strconv"
	"time"
)

// UpdateGraphSize records the current graph snapshot dimensions
func (r *Registry) UpdateGraphSize(nodes int, edgeWeight float64) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgeWeightTotal.Set(edgeWeight)
}

// RecordAnalysis records a completed (or failed) analysis run
func (r *Registry) RecordAnalysis(status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		r.AnalysisDuration.Observe(duration.Seconds())
	}
}

// RecordPPR records a PPR computation outcome
func (r *Registry) RecordPPR(iterations int, converged bool) {
	r.PPRIterations.Observe(float64(iterations))
	r.PPRRunsTotal.WithLabelValues(strconv.FormatBool(converged)).Inc()
}

// RecordClusters records the extracted cluster sizes and system health
func (r *Registry) RecordClusters(goldenSize, entropySize int, entropy, efficiency float64) {
	r.GoldenVolumeSize.Observe(float64(goldenSize))
	r.EntropyNodesSize.Observe(float64(entropySize))
	r.SystemEntropy.Set(entropy)
	r.SystemEfficiency.Set(efficiency)
}

// RecordProjection records a revenue projection attempt
func (r *Registry) RecordProjection(status string) {
	r.ProjectionsTotal.WithLabelValues(status).Inc()
}
