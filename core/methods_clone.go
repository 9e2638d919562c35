package core

// Clone returns a deep copy of g: same flags, vertices, edges (with their IDs)
// and edge ID counter. Edge structs are copied, not shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		undirected:    g.undirected,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		vertices:      make(map[string]struct{}),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for id := range g.vertices {
		out.vertices[id] = struct{}{}
	}
	out.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		ne := *e
		out.edges[eid] = &ne
		out.linkLocked(&ne)
	}

	return out
}
