package analysis

import (
	"time"

	"github.com/dd0wney/synergy-rank/pkg/synergy"
)

// Meta describes one analysis run.
type Meta struct {
	RunID      string        `json:"run_id"`
	SeedID     string        `json:"seed_id"`
	NodeCount  int           `json:"node_count"`
	EdgeWeight float64       `json:"edge_weight"`
	Alpha      float64       `json:"alpha"`
	Iterations int           `json:"iterations"`
	Converged  bool          `json:"converged"`
	ComputedAt time.Time     `json:"computed_at"`
	Duration   time.Duration `json:"duration"`
}

// Member is one ranked non-seed node with its classification, shaped
// for UI and alerting consumers.
type Member struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Synergy float64        `json:"synergy"`
	Grade   synergy.Grade  `json:"grade"`
	Action  synergy.Action `json:"action"`
	Revenue float64        `json:"revenue"`
}

// System carries graph-level aggregate health metrics.
type System struct {
	Entropy       float64 `json:"entropy"`
	Efficiency    float64 `json:"efficiency"`
	ConflictCount int     `json:"conflict_count"`
	FrictionCount int     `json:"friction_count"`
}

// Result is the immutable snapshot produced by one RunAnalysis call.
// All numeric fields are rounded at this boundary; internal computation
// keeps full precision.
type Result struct {
	Meta         Meta               `json:"meta"`
	GoldenVolume []Member           `json:"golden_volume"`
	EntropyNodes []Member           `json:"entropy_nodes"`
	Top5         []Member           `json:"top5"`
	Bottom5      []Member           `json:"bottom5"`
	System       System             `json:"system"`
	ZValues      map[string]float64 `json:"z_values"`
}
