// Package bfs provides breadth-first search over a bellmanford.Graph,
// returning hop counts from a start node and the visit order.
//
// BFS answers the reachability question the shortest-path engine leaves
// implicit: a node is reachable exactly when BFS reaches it and its
// Bellman-Ford distance is finite.
//
// Edges are followed regardless of weight, except those whose weight is the
// unreachable sentinel (bellmanford.IsInf), which the engine never
// traverses either. As in the engine, edges whose endpoint is not enumerated
// by g.Nodes() (and is not the start) are ignored.
//
// Options:
//
//   - WithContext(ctx): cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):  stop expanding beyond d hops (0 = unlimited,
//     negative = ErrOptionViolation).
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V + E)
package bfs
