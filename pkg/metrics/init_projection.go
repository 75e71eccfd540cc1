package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initProjectionMetrics() {
	r.ProjectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "synergyrank_projections_total",
			Help: "Total number of revenue projections by status",
		},
		[]string{"status"},
	)
}
