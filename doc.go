// Package bfpath is a single-source shortest-path toolkit built around the
// Bellman-Ford algorithm, with negative-cycle detection.
//
// The module is organised as:
//
//	bellmanford/ — generic engine (Graph interface, BellmanFord, Verify, EdgeList)
//	core/        — thread-safe adjacency-list graph with string IDs and float64 weights
//	matrix/      — dense adjacency matrix view, int-indexed
//	builder/     — deterministic generators (Path, Cycle, Complete, RandomSparse)
//	instrument/  — Prometheus, OpenTelemetry and slog observers for the engine
//	config/      — YAML settings for the command
//	cmd/bellmanford — demo command running the engine on the reference graph
//
// Quick start:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("v0", "v1", 2.2)
//	_, _ = g.AddEdge("v1", "v2", 2.4)
//
//	dist, err := bellmanford.BellmanFord[string, float64](g, "v0")
//	var cyc *bellmanford.NegativeCycleError[string]
//	if errors.As(err, &cyc) {
//		// cyc.From -> cyc.To is still relaxable after |V| passes
//	}
//	fmt.Printf("δ(v2) = %.1f\n", dist["v2"]) // δ(v2) = 4.6
package bfpath
