package synergy

import (
	"math"

	"github.com/dd0wney/synergy-rank/pkg/graph"
)

// Options configures the PPR-to-synergy transformation.
type Options struct {
	Epsilon      float64 // Added before the log to keep log(0) out
	MaxRevenue   float64 // Revenue ceiling the revenue correction is measured against
	TimeBaseline float64 // Revenue-per-time baseline for the efficiency correction
}

// DefaultOptions returns the default transformation configuration.
func DefaultOptions() Options {
	return Options{
		Epsilon:      1e-10,
		MaxRevenue:   10000,
		TimeBaseline: 0.5,
	}
}

// Correction bounds. The revenue and time-efficiency corrections are
// applied after min-max normalization, so the final clamp is what
// actually guarantees the [-1, 1] bound.
const (
	maxRevenueCorrection = 0.2
	maxTimeCorrection    = 0.1
)

// Transform maps a raw PPR vector into bounded synergy scores:
// log compression, min-max normalization over non-seed entries,
// rescale to [-1, 1], bounded business corrections, final clamp.
// The seed entry is fixed at 0 and excluded from the normalization
// range. The result is deterministic and independent of node
// iteration order.
func Transform(ppr []float64, seedIndex int, nodes []graph.Node, opts Options) []float64 {
	n := len(ppr)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = DefaultOptions().Epsilon
	}
	if opts.MaxRevenue <= 0 {
		opts.MaxRevenue = DefaultOptions().MaxRevenue
	}

	// Log-compress the heavy-tailed PPR distribution.
	logScores := make([]float64, n)
	for i, p := range ppr {
		logScores[i] = math.Log(p + opts.Epsilon)
	}

	// Min/max over non-seed entries only; a degenerate range (every
	// non-seed node equally reachable) falls back to 1.
	minLog := math.Inf(1)
	maxLog := math.Inf(-1)
	for i, ls := range logScores {
		if i == seedIndex {
			continue
		}
		minLog = math.Min(minLog, ls)
		maxLog = math.Max(maxLog, ls)
	}
	logRange := maxLog - minLog
	if logRange == 0 || math.IsInf(logRange, 0) || math.IsNaN(logRange) {
		logRange = 1
	}

	for i := range ppr {
		if i == seedIndex {
			continue
		}

		normalized := (logScores[i] - minLog) / logRange
		z := normalized*2 - 1

		z += revenueCorrection(nodes[i].Revenue, opts.MaxRevenue)
		z += timeCorrection(nodes[i], opts.TimeBaseline)

		scores[i] = clamp(z, -1, 1)
	}

	return scores
}

// revenueCorrection rewards (or penalizes) a node for its revenue
// relative to the configured ceiling, bounded to ±0.2.
func revenueCorrection(revenue, maxRevenue float64) float64 {
	ratio := clamp(revenue/maxRevenue, -1, 1)
	return ratio * maxRevenueCorrection
}

// timeCorrection rewards revenue efficiency per unit of time spent
// relative to the baseline, bounded to ±0.1. A node with no recorded
// time is treated as zero efficiency rather than dividing by zero.
func timeCorrection(node graph.Node, baseline float64) float64 {
	efficiency := 0.0
	if node.TimeSpent > 0 {
		efficiency = node.Revenue / node.TimeSpent
	}
	ratio := clamp(efficiency-baseline, -1, 1)
	return ratio * maxTimeCorrection
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
