// SPDX-License-Identifier: MIT
// Package: bfpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Determinism:
//   - Stable trial order: i asc, j asc (j>i for undirected graphs), no loops.
//   - For each trial the RNG is drawn once for the coin and, on success,
//     weightFn draws from the same RNG; a fixed seed fixes the graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each candidate edge with
// independent probability p. Requires WithSeed or WithRand.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addWeightedEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
