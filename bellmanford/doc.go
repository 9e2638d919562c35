// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm over any directed, edge-weighted graph, including detection of
// negative-weight cycles reachable from the source.
//
// Overview:
//
//   - The engine is generic over the node identifier N (any comparable type)
//     and the weight W (signed integers or floats, see Weight).
//   - It consumes the small Graph capability set: Nodes(), NodeCount() and
//     EachEdge(fn). Edge lists, adjacency lists (core.Graph) and adjacency
//     matrices (matrix.Adjacency) all satisfy it.
//   - It produces either a distance map (one entry per node) or a
//     *NegativeCycleError carrying the witness edge.
//
// Algorithm:
//
//  1. Every node starts at Infinity[W](); the source starts at zero.
//  2. Exactly |V| full passes relax every edge (u,v,w):
//     dist[v] = min(dist[v], dist[u] + w).
//     Nodes still at infinity are never relaxed through.
//  3. One more scan: any edge that is still relaxable proves a negative
//     cycle reachable from the source, and is returned as the witness.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E) (distance map plus one snapshot of the edges)
//
// Errors:
//
//   - ErrNegativeCycle is the only sentinel the engine returns; the concrete
//     value is a *NegativeCycleError[N] (use errors.As to read the witness).
//   - A nil graph or a source that the graph does not enumerate are not
//     errors: the source is reported at zero and everything else stays at
//     infinity.
//
// Concurrency:
//
//	By default a single goroutine performs every pass. WithWorkers(n) splits
//	the edges of each pass across n goroutines that read the previous pass's
//	distances and merge per-node minima before the next pass begins. The
//	verify scan is always sequential, so the witness is deterministic.
//
// Example:
//
//	g := bellmanford.NewEdgeList[string, float64]()
//	g.Add("v0", "v1", 2.2).Add("v1", "v2", 2.4)
//	dist, err := bellmanford.BellmanFord[string, float64](g, "v0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("δ(v2) = %.1f\n", dist["v2"])
package bellmanford
