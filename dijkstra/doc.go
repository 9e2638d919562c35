// Package dijkstra computes single-source shortest distances on graphs with
// non-negative weights, over the same bellmanford.Graph interface the
// Bellman-Ford engine consumes.
//
// It is the O((V + E) log V) alternative when no edge is negative, and the
// reference oracle the Bellman-Ford property tests compare against.
//
// Result shape matches bellmanford.BellmanFord exactly:
//
//   - one entry per node enumerated by g.Nodes(), plus the source;
//   - bellmanford.Infinity[W]() for unreachable nodes;
//   - edges whose endpoint is not in that key set are ignored.
//
// Errors (sentinel):
//
//   - ErrNegativeWeight if any edge weight is < 0 (wrapped with the edge).
//
// Complexity:
//
//   - Time:  O((V + E) log V), lazy decrease-key on container/heap.
//   - Space: O(V + E)
package dijkstra
