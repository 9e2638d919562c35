// Package matrix provides a dense adjacency-matrix graph representation.
//
// Adjacency stores an n×n row-major float64 grid. Cell (i,j) holds the weight
// of the arc i→j, or +Inf when there is no arc. Vertices are the integers
// 0..n-1; FromGraph keeps a bidirectional mapping to core.Graph vertex IDs.
//
// Adjacency satisfies bellmanford.Graph[int, float64]:
//
//	Nodes()     → 0..n-1
//	NodeCount() → n
//	EachEdge(fn) visits every finite cell in row-major order (O(n²)).
//
// Errors:
//
//	ErrBadShape, ErrOutOfRange, ErrNaNWeight, ErrGraphNil, ErrUnknownVertex,
//	ErrMultiEdge.
//
// Example:
//
//	m, _ := matrix.NewAdjacency(3)
//	_ = m.Set(0, 1, 4)
//	_ = m.Set(1, 2, -2)
//	dist, err := bellmanford.BellmanFord[int, float64](m, 0)
package matrix
