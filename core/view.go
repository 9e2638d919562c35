package core

// This file exposes Graph through the capability set consumed by
// bellmanford.BellmanFord: Nodes, NodeCount and EachEdge.

// Nodes returns all vertex IDs sorted ascending (alias of Vertices).
func (g *Graph) Nodes() []string { return g.Vertices() }

// NodeCount returns the number of vertices (alias of VertexCount).
func (g *Graph) NodeCount() int { return g.VertexCount() }

// EachEdge calls fn once per traversable direction of every edge, in edge
// creation order. An undirected edge u—v yields u→v then v→u; an undirected
// self-loop yields a single arc.
//
// The edge list is snapshotted under a read lock before fn is invoked, so fn
// may safely call back into g.
func (g *Graph) EachEdge(fn func(from, to string, weight float64)) {
	for _, e := range g.Edges() {
		fn(e.From, e.To, e.Weight)
		if !e.Directed && e.From != e.To {
			fn(e.To, e.From, e.Weight)
		}
	}
}
