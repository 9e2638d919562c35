// Package core provides a thread-safe, in-memory directed weighted graph with
// string vertex IDs and float64 edge weights.
//
// core.Graph is the adjacency-list representation used by the shortest-path
// engine: it satisfies bellmanford.Graph[string, float64] through Nodes,
// NodeCount and EachEdge.
//
// Configuration Options (GraphOption):
//
//	– WithUndirected()
//	    New edges are bidirectional; EachEdge enumerates them as two arcs.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from,to string) bool       // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error) // O(d·log d), sorted by edge ID
//	Vertices() []string                   // O(V·log V), sorted
//	Edges() []*Edge                       // O(E·log E), sorted by edge ID
//	VertexCount() int / EdgeCount() int   // O(1)
//
//	// Cloning
//	Clone() *Graph                        // O(V+E) deep copy
//
// Determinism:
//
//	Vertices(), Edges(), Neighbors() and EachEdge() all iterate in a fixed
//	order (vertex IDs lexicographic, edges by creation order), so algorithm
//	results and witness edges are reproducible.
//
// Concurrency:
//
//	muVert guards the vertex set; muEdgeAdj guards the edge catalog and the
//	adjacency index. When both are needed, muVert is taken first.
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
