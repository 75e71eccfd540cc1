package algorithms

import (
	"errors"
	"fmt"
	"math"
)

// Common sentinel errors
var (
	ErrInvalidAlpha    = errors.New("alpha must be in (0, 1)")
	ErrSeedOutOfRange  = errors.New("seed index out of range")
	ErrEmptyTransition = errors.New("transition matrix has no rows")
)

// Options configures the personalized PageRank computation.
type Options struct {
	Alpha         float64 // Continue-walking probability, usually 0.85
	MaxIterations int     // Hard bound on power iterations
	Tolerance     float64 // L1 convergence threshold
}

// DefaultOptions returns the default personalized PageRank configuration.
func DefaultOptions() Options {
	return Options{
		Alpha:         0.85,
		MaxIterations: 50,
		Tolerance:     1e-6,
	}
}

// Result contains the personalized PageRank vector for one seed.
type Result struct {
	Scores     []float64 // One value per node index, non-negative
	Iterations int       // Number of iterations performed
	Converged  bool      // Whether the L1 delta dropped below tolerance
}

// PersonalizedPageRank runs random-walk-with-restart power iteration
// against a row-normalized transition matrix. The walk starts at
// seedIndex and teleports back to it with probability 1-alpha at each
// step:
//
//	next = (1-alpha)*teleport + alpha * transposed(T) · ppr
//
// The transition matrix is read-only; the returned vector is owned by
// the caller. No normalization is applied here — the raw distribution
// is handed to the synergy transform as-is.
func PersonalizedPageRank(transition [][]float64, seedIndex int, opts Options) (*Result, error) {
	n := len(transition)
	if n == 0 {
		return nil, ErrEmptyTransition
	}
	if seedIndex < 0 || seedIndex >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSeedOutOfRange, seedIndex, n)
	}
	if opts.Alpha <= 0 || opts.Alpha >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidAlpha, opts.Alpha)
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions().MaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultOptions().Tolerance
	}

	// One-hot walk vector and teleport vector, both at the seed.
	ppr := make([]float64, n)
	next := make([]float64, n)
	ppr[seedIndex] = 1.0

	restart := 1.0 - opts.Alpha

	iterations := 0
	converged := false

	for iterations < opts.MaxIterations {
		iterations++

		// Teleport term: all restart mass lands on the seed.
		for j := range next {
			next[j] = 0
		}
		next[seedIndex] = restart

		// Walk term: each node pushes its current mass along its
		// outbound transition probabilities. A zero row (isolated
		// node) simply absorbs its walk mass.
		for i, row := range transition {
			mass := ppr[i]
			if mass == 0 {
				continue
			}
			scaled := opts.Alpha * mass
			for j, p := range row {
				if p != 0 {
					next[j] += scaled * p
				}
			}
		}

		// L1 difference between successive iterations
		delta := 0.0
		for j := range ppr {
			delta += math.Abs(next[j] - ppr[j])
		}

		ppr, next = next, ppr

		if delta < opts.Tolerance {
			converged = true
			break
		}
	}

	return &Result{
		Scores:     ppr,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}
