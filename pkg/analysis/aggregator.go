package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/synergy-rank/pkg/algorithms"
	"github.com/dd0wney/synergy-rank/pkg/config"
	"github.com/dd0wney/synergy-rank/pkg/graph"
	"github.com/dd0wney/synergy-rank/pkg/logging"
	"github.com/dd0wney/synergy-rank/pkg/metrics"
	"github.com/dd0wney/synergy-rank/pkg/synergy"
)

// Analyzer runs the full ranking pipeline against a graph store:
// PPR, synergy transform, classification, cluster extraction and
// system health metrics.
type Analyzer struct {
	store   *graph.Store
	cfg     *config.EngineConfig
	logger  logging.Logger
	metrics *metrics.Registry
}

// NewAnalyzer creates an analyzer bound to a graph store. A nil config
// uses the engine defaults.
func NewAnalyzer(store *graph.Store, cfg *config.EngineConfig) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Analyzer{
		store:   store,
		cfg:     cfg,
		logger:  logging.DefaultLogger().With(logging.Component("analyzer")),
		metrics: metrics.DefaultRegistry(),
	}
}

// SetLogger replaces the analyzer's logger.
func (a *Analyzer) SetLogger(logger logging.Logger) {
	a.logger = logger.With(logging.Component("analyzer"))
}

// SetMetrics replaces the analyzer's metrics registry.
func (a *Analyzer) SetMetrics(registry *metrics.Registry) {
	a.metrics = registry
}

// RunAnalysis computes the full personalized analysis for one seed.
// An unknown seed id returns an error matching graph.ErrNodeNotFound;
// callers are expected to branch on it with errors.Is.
func (a *Analyzer) RunAnalysis(seedID string) (*Result, error) {
	snap := a.store.Snapshot()
	return a.runOnSnapshot(snap, seedID)
}

// RunAnalysisAll runs analyses for several seeds against a single
// graph snapshot, so all results describe the same graph state.
func (a *Analyzer) RunAnalysisAll(seedIDs []string) (map[string]*Result, error) {
	snap := a.store.Snapshot()

	results := make(map[string]*Result, len(seedIDs))
	for _, seedID := range seedIDs {
		result, err := a.runOnSnapshot(snap, seedID)
		if err != nil {
			return nil, err
		}
		results[seedID] = result
	}
	return results, nil
}

func (a *Analyzer) runOnSnapshot(snap *graph.Snapshot, seedID string) (*Result, error) {
	start := time.Now()
	a.metrics.UpdateGraphSize(snap.N, snap.EdgeWeight)

	seedIndex, ok := snap.IndexByID[seedID]
	if !ok {
		a.metrics.RecordAnalysis("not_found", 0)
		return nil, graph.NodeNotFoundError("RunAnalysis", seedID)
	}

	pprResult, err := algorithms.PersonalizedPageRank(snap.Transition, seedIndex, algorithms.Options{
		Alpha:         a.cfg.PPR.Alpha,
		MaxIterations: a.cfg.PPR.MaxIterations,
		Tolerance:     a.cfg.PPR.Tolerance,
	})
	if err != nil {
		a.metrics.RecordAnalysis("error", 0)
		a.logger.Error("ppr computation failed", logging.SeedID(seedID), logging.Error(err))
		return nil, err
	}
	a.metrics.RecordPPR(pprResult.Iterations, pprResult.Converged)

	scores := synergy.Transform(pprResult.Scores, seedIndex, snap.Nodes, synergy.Options{
		Epsilon:      a.cfg.Synergy.Epsilon,
		MaxRevenue:   a.cfg.Synergy.MaxRevenue,
		TimeBaseline: a.cfg.Synergy.TimeBaseline,
	})

	result := a.aggregate(snap, seedID, seedIndex, pprResult, scores)
	result.Meta.Duration = time.Since(start)

	a.metrics.RecordAnalysis("success", result.Meta.Duration)
	a.metrics.RecordClusters(len(result.GoldenVolume), len(result.EntropyNodes),
		result.System.Entropy, result.System.Efficiency)

	a.logger.Info("analysis complete",
		logging.RunID(result.Meta.RunID),
		logging.SeedID(seedID),
		logging.NodeCount(snap.N),
		logging.Iterations(pprResult.Iterations),
		logging.Converged(pprResult.Converged),
		logging.Latency(result.Meta.Duration),
	)

	return result, nil
}

// aggregate ranks the scored nodes and assembles the result snapshot.
func (a *Analyzer) aggregate(snap *graph.Snapshot, seedID string, seedIndex int, pprResult *algorithms.Result, scores []float64) *Result {
	n := snap.N

	// Non-seed indices in insertion order, then stable sort descending
	// by synergy so ties keep insertion order (reproducible ranking).
	ranked := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != seedIndex {
			ranked = append(ranked, i)
		}
	}
	sort.SliceStable(ranked, func(x, y int) bool {
		return scores[ranked[x]] > scores[ranked[y]]
	})

	member := func(idx int) Member {
		z := scores[idx]
		node := snap.Nodes[idx]
		return Member{
			ID:      node.ID,
			Name:    node.Name,
			Synergy: roundScore(z),
			Grade:   synergy.GradeFor(z),
			Action:  synergy.ActionFor(z),
			Revenue: node.Revenue,
		}
	}

	// Golden volume: top fifth of the graph, kept only above the
	// golden threshold, capped for output.
	goldenWindow := maxInt(1, n/5)
	if goldenWindow > len(ranked) {
		goldenWindow = len(ranked)
	}
	golden := make([]Member, 0, goldenWindow)
	for _, idx := range ranked[:goldenWindow] {
		if scores[idx] >= a.cfg.Ranking.GoldenThreshold {
			golden = append(golden, member(idx))
		}
	}
	if len(golden) > a.cfg.Ranking.GoldenOutputCap {
		golden = golden[:a.cfg.Ranking.GoldenOutputCap]
	}

	// Entropy nodes: bottom tenth, kept only below the entropy
	// threshold, worst first.
	entropyWindow := maxInt(1, n/10)
	if entropyWindow > len(ranked) {
		entropyWindow = len(ranked)
	}
	entropyNodes := make([]Member, 0, entropyWindow)
	for i := len(ranked) - 1; i >= len(ranked)-entropyWindow; i-- {
		idx := ranked[i]
		if scores[idx] < a.cfg.Ranking.EntropyThreshold {
			entropyNodes = append(entropyNodes, member(idx))
		}
	}
	if len(entropyNodes) > a.cfg.Ranking.EntropyOutputCap {
		entropyNodes = entropyNodes[:a.cfg.Ranking.EntropyOutputCap]
	}

	// System entropy over conflict and friction counts. The +1 terms
	// keep W >= 1 so entropy is never negative.
	conflictCount := 0
	frictionCount := 0
	for _, idx := range ranked {
		z := scores[idx]
		switch {
		case z < a.cfg.Ranking.EntropyThreshold:
			conflictCount++
		case z < 0:
			frictionCount++
		}
	}
	entropy := math.Log(float64(conflictCount+1) * float64(frictionCount+1))
	efficiency := math.Exp(-entropy / 5)

	top5 := make([]Member, 0, 5)
	for _, idx := range ranked[:minInt(5, len(ranked))] {
		top5 = append(top5, member(idx))
	}
	bottom5 := make([]Member, 0, 5)
	for i := len(ranked) - 1; i >= maxInt(0, len(ranked)-5); i-- {
		bottom5 = append(bottom5, member(ranked[i]))
	}

	zValues := make(map[string]float64, len(ranked))
	for _, idx := range ranked {
		zValues[snap.Nodes[idx].ID] = roundScore(scores[idx])
	}

	return &Result{
		Meta: Meta{
			RunID:      uuid.NewString(),
			SeedID:     seedID,
			NodeCount:  n,
			EdgeWeight: snap.EdgeWeight,
			Alpha:      a.cfg.PPR.Alpha,
			Iterations: pprResult.Iterations,
			Converged:  pprResult.Converged,
			ComputedAt: time.Now().UTC(),
		},
		GoldenVolume: golden,
		EntropyNodes: entropyNodes,
		Top5:         top5,
		Bottom5:      bottom5,
		System: System{
			Entropy:       roundSystem(entropy),
			Efficiency:    roundSystem(efficiency),
			ConflictCount: conflictCount,
			FrictionCount: frictionCount,
		},
		ZValues: zValues,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
