// SPDX-License-Identifier: MIT
// Package: bfpath/builder
//
// impl_cycle.go - Cycle(n): the ring 0→1→…→n-1→0.
//
// Determinism: edges are emitted i → (i+1)%n for i = 0..n-1, so with
// ConstantWeightFn(w) the ring's total weight is exactly n·w. A negative w
// gives the canonical reachable negative cycle.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bfpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds an n-vertex cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addWeightedEdge(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
