package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix gives stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates an edge from→to with the given weight, creating missing
// endpoints. The edge is directed unless the graph was built WithUndirected.
//
// Errors: ErrEmptyVertexID, ErrBadWeight (NaN), ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) {
		return "", fmt.Errorf("%w: %s→%s", ErrBadWeight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.linkedLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: !g.undirected}
	g.edges[eid] = e
	g.linkLocked(e)

	return eid, nil
}

// RemoveEdge deletes one edge (and its mirror for undirected edges).
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.unlinkLocked(e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one edge allows travel from→to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving id, in creation order. For undirected
// edges that id reaches through the mirror, the stored Edge is returned as-is.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// linkedLocked reports whether from→to already has an edge. Caller holds muEdgeAdj.
func (g *Graph) linkedLocked(from, to string) bool {
	return len(g.adjacencyList[from][to]) > 0
}

// linkLocked indexes e in adjacencyList. Caller holds muEdgeAdj.
func (g *Graph) linkLocked(e *Edge) {
	g.addAdj(e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		g.addAdj(e.To, e.From, e.ID)
	}
}

// unlinkLocked removes e from adjacencyList. Caller holds muEdgeAdj.
func (g *Graph) unlinkLocked(e *Edge) {
	g.dropAdj(e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		g.dropAdj(e.To, e.From, e.ID)
	}
}

func (g *Graph) addAdj(from, to, eid string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	bucket, ok := inner[to]
	if !ok {
		bucket = make(map[string]struct{})
		inner[to] = bucket
	}
	bucket[eid] = struct{}{}
}

func (g *Graph) dropAdj(from, to, eid string) {
	bucket := g.adjacencyList[from][to]
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacencyList[from], to)
	}
	if len(g.adjacencyList[from]) == 0 {
		delete(g.adjacencyList, from)
	}
}

// sortEdges orders edges by creation: shorter IDs first, then lexicographic,
// which matches numeric order of the "e<N>" scheme.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i].ID, es[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
}
