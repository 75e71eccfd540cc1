package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "synergyrank_graph_nodes_total",
			Help: "Number of nodes in the current graph snapshot",
		},
	)

	r.GraphEdgeWeightTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "synergyrank_graph_edge_weight_total",
			Help: "Total accumulated edge weight in the current graph snapshot",
		},
	)
}
