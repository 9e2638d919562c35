package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/bfpath/bellmanford"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns ErrNegativeWeight (wrapped with the offending edge) before doing any
// work if some edge is negative; use bellmanford.BellmanFord for such graphs.
// A nil g yields {source: 0}.
func Dijkstra[N comparable, W bellmanford.Weight](g bellmanford.Graph[N, W], source N) (map[N]W, error) {
	r := &runner[N, W]{inf: bellmanford.Infinity[W]()}

	// 1) Seed distances and build adjacency; fail fast on negative weights.
	if err := r.init(g, source); err != nil {
		return nil, err
	}

	// 2) Settle nodes in distance order.
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable, W bellmanford.Weight] struct {
	adj     map[N][]arc[N, W] // outgoing arcs in EachEdge order
	dist    map[N]W           // node → best known distance
	visited map[N]bool        // settled nodes
	pq      nodePQ[N, W]
	inf     W
}

func (r *runner[N, W]) init(g bellmanford.Graph[N, W], source N) error {
	var nodes []N
	if g != nil {
		nodes = g.Nodes()
	}
	r.dist = make(map[N]W, len(nodes)+1)
	r.visited = make(map[N]bool, len(nodes)+1)
	r.adj = make(map[N][]arc[N, W], len(nodes))
	for _, n := range nodes {
		r.dist[n] = r.inf
	}
	var zero W
	r.dist[source] = zero

	if g != nil {
		var bad error
		g.EachEdge(func(from, to N, w W) {
			if bad != nil {
				return
			}
			if w < 0 {
				bad = fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, from, to, w)
				return
			}
			r.adj[from] = append(r.adj[from], arc[N, W]{to: to, w: w})
		})
		if bad != nil {
			return bad
		}
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem[N, W]{id: source, dist: zero})

	return nil
}

func (r *runner[N, W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[N, W])
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax pushes every neighbour of u whose distance strictly improves.
func (r *runner[N, W]) relax(u N) {
	du := r.dist[u]
	for _, a := range r.adj[u] {
		dv, ok := r.dist[a.to]
		if !ok {
			continue
		}
		// Sums reaching the infinite sentinel are treated as unreachable.
		if a.w > 0 && du > r.inf-a.w {
			continue
		}
		nd := du + a.w
		if nd >= dv {
			continue
		}
		r.dist[a.to] = nd
		heap.Push(&r.pq, nodeItem[N, W]{id: a.to, dist: nd})
	}
}
