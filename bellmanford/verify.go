package bellmanford

import "fmt"

// Verify checks that dist satisfies dist[v] <= dist[u] + w for every edge of g
// whose source u has a finite distance. Edges with an endpoint missing from
// dist are ignored, as BellmanFord ignores them.
//
// It returns ErrInvariantViolated wrapped with the first offending edge, or nil.
// Complexity: O(E).
func Verify[N comparable, W Weight](g Graph[N, W], dist map[N]W) error {
	if g == nil {
		return nil
	}

	r := &runner[N, W]{inf: Infinity[W]()}
	var err error
	g.EachEdge(func(from, to N, weight W) {
		if err != nil {
			return
		}
		e := Edge[N, W]{From: from, To: to, Weight: weight}
		if nd, ok := r.candidate(dist, e); ok {
			err = fmt.Errorf("%w: edge %v→%v weight=%v: dist[%v]=%v > %v",
				ErrInvariantViolated, from, to, weight, to, dist[to], nd)
		}
	})

	return err
}
