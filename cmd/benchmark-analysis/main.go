package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dd0wney/synergy-rank/pkg/analysis"
	"github.com/dd0wney/synergy-rank/pkg/config"
	"github.com/dd0wney/synergy-rank/pkg/graph"
	"github.com/dd0wney/synergy-rank/pkg/logging"
	"github.com/dd0wney/synergy-rank/pkg/projection"
)

func main() {
	nodes := flag.Int("nodes", 1000, "Number of nodes to create")
	edges := flag.Int("edges", 5000, "Number of edges to create")
	runs := flag.Int("runs", 100, "Number of analyses to run")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	fmt.Printf("🔥 Synergy Rank - Analysis Pipeline Benchmark\n")
	fmt.Printf("=============================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Nodes: %d\n", *nodes)
	fmt.Printf("  Edges: %d\n", *edges)
	fmt.Printf("  Runs:  %d\n\n", *runs)

	rng := rand.New(rand.NewSource(*seed))

	// Build a random member graph
	fmt.Printf("📝 Creating %d nodes...\n", *nodes)
	start := time.Now()

	members := make([]graph.Node, *nodes)
	for i := range members {
		members[i] = graph.Node{
			ID:        fmt.Sprintf("member%d", i),
			Name:      fmt.Sprintf("Member %d", i),
			Revenue:   float64(rng.Intn(20000) - 2000),
			TimeSpent: rng.Float64() * 50,
		}
	}

	store := graph.NewStore()
	if err := store.LoadNodes(members); err != nil {
		log.Fatalf("Failed to load nodes: %v", err)
	}
	fmt.Printf("✅ Created %d nodes in %v\n", *nodes, time.Since(start))

	fmt.Printf("\n🔗 Creating %d edges...\n", *edges)
	start = time.Now()

	for i := 0; i < *edges; i++ {
		fromIdx := rng.Intn(*nodes)
		toIdx := rng.Intn(*nodes)
		if fromIdx == toIdx {
			toIdx = (toIdx + 1) % *nodes
		}

		err := store.AddEdge(
			fmt.Sprintf("member%d", fromIdx),
			fmt.Sprintf("member%d", toIdx),
			rng.Float64()*10+0.1,
		)
		if err != nil {
			log.Printf("Warning: Failed to add edge: %v", err)
		}
	}
	fmt.Printf("✅ Created %d edges in %v (total weight %.1f)\n",
		*edges, time.Since(start), store.TotalEdgeWeight())

	analyzer := analysis.NewAnalyzer(store, config.DefaultConfig())
	analyzer.SetLogger(logging.NewNopLogger())

	// Benchmark 1: single-seed analyses
	fmt.Printf("\n📊 Benchmark 1: Personalized Analyses\n")
	start = time.Now()

	var totalIterations int
	converged := 0
	var last *analysis.Result
	for i := 0; i < *runs; i++ {
		result, err := analyzer.RunAnalysis(fmt.Sprintf("member%d", rng.Intn(*nodes)))
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		totalIterations += result.Meta.Iterations
		if result.Meta.Converged {
			converged++
		}
		last = result
	}

	duration := time.Since(start)
	fmt.Printf("✅ Ran %d analyses in %v\n", *runs, duration)
	fmt.Printf("  Throughput: %.1f analyses/sec\n", float64(*runs)/duration.Seconds())
	fmt.Printf("  Avg iterations: %.1f\n", float64(totalIterations)/float64(*runs))
	fmt.Printf("  Converged: %d/%d\n", converged, *runs)
	fmt.Printf("  Last run top 5:\n")
	for i, m := range last.Top5 {
		fmt.Printf("    %d. %s (score: %.6f, %s/%s)\n", i+1, m.ID, m.Synergy, m.Grade, m.Action)
	}
	fmt.Printf("  System entropy: %.4f, efficiency: %.4f\n",
		last.System.Entropy, last.System.Efficiency)

	// Benchmark 2: multi-seed batch against one snapshot
	fmt.Printf("\n📊 Benchmark 2: Batch Analysis (shared snapshot)\n")
	batchSize := 20
	if batchSize > *nodes {
		batchSize = *nodes
	}
	seeds := make([]string, batchSize)
	for i := range seeds {
		seeds[i] = fmt.Sprintf("member%d", i)
	}

	start = time.Now()
	batch, err := analyzer.RunAnalysisAll(seeds)
	if err != nil {
		log.Fatalf("Batch analysis failed: %v", err)
	}
	duration = time.Since(start)
	fmt.Printf("✅ Ran %d-seed batch in %v (%.1f analyses/sec)\n",
		batchSize, duration, float64(batchSize)/duration.Seconds())

	// Benchmark 3: revenue projections
	fmt.Printf("\n📊 Benchmark 3: Revenue Projections\n")
	start = time.Now()

	projected := 0
	emptyGolden := 0
	for _, result := range batch {
		proj, err := projection.Project(result, 12, projection.DefaultOptions())
		if err != nil {
			emptyGolden++
			continue
		}
		projected++
		_ = proj
	}
	duration = time.Since(start)
	fmt.Printf("✅ Projected %d results in %v (%d empty golden volumes)\n",
		projected, duration, emptyGolden)

	fmt.Printf("\n🎉 Benchmark complete!\n")
}
