package bellmanford

// EdgeList is the simplest Graph: a node list plus a slice of arcs.
// Nodes are enumerated in insertion order; edges in the order added.
type EdgeList[N comparable, W Weight] struct {
	Vertices []N
	Arcs     []Edge[N, W]

	seen map[N]struct{}
}

// NewEdgeList returns an EdgeList holding the given nodes (duplicates dropped).
func NewEdgeList[N comparable, W Weight](nodes ...N) *EdgeList[N, W] {
	l := &EdgeList[N, W]{seen: make(map[N]struct{}, len(nodes))}
	for _, n := range nodes {
		l.AddNode(n)
	}

	return l
}

// AddNode registers n if it is not present yet.
func (l *EdgeList[N, W]) AddNode(n N) *EdgeList[N, W] {
	if l.seen == nil {
		l.seen = make(map[N]struct{}, len(l.Vertices)+1)
		for _, v := range l.Vertices {
			l.seen[v] = struct{}{}
		}
	}
	if _, ok := l.seen[n]; !ok {
		l.seen[n] = struct{}{}
		l.Vertices = append(l.Vertices, n)
	}

	return l
}

// Add appends the arc from→to with weight w, registering both endpoints.
func (l *EdgeList[N, W]) Add(from, to N, w W) *EdgeList[N, W] {
	l.AddNode(from)
	l.AddNode(to)
	l.Arcs = append(l.Arcs, Edge[N, W]{From: from, To: to, Weight: w})

	return l
}

// Nodes returns a copy of the node list. A nil list has no nodes.
func (l *EdgeList[N, W]) Nodes() []N {
	if l == nil {
		return nil
	}
	out := make([]N, len(l.Vertices))
	copy(out, l.Vertices)

	return out
}

// NodeCount returns the number of nodes.
func (l *EdgeList[N, W]) NodeCount() int {
	if l == nil {
		return 0
	}

	return len(l.Vertices)
}

// EachEdge calls fn for every arc in insertion order.
func (l *EdgeList[N, W]) EachEdge(fn func(from, to N, weight W)) {
	if l == nil {
		return
	}
	for _, e := range l.Arcs {
		fn(e.From, e.To, e.Weight)
	}
}
