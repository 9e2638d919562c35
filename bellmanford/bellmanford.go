package bellmanford

// BellmanFord computes shortest distances from source to every node of g.
//
// Returns:
//
//   - dist: one entry per node enumerated by g.Nodes() (plus source), holding
//     the shortest distance from source, or Infinity[W]() if unreachable.
//   - err:  a *NegativeCycleError[N] (errors.Is(err, ErrNegativeCycle)) when a
//     negative cycle is reachable from source; dist is nil in that case.
//
// Exactly g.NodeCount() relaxation passes are run regardless of whether a
// pass changes anything, followed by one verify scan.
//
// A nil g is treated as an empty graph. A non-nil g must be usable as is:
// *EdgeList tolerates a nil receiver, other typed-nil graphs may panic.
// For integer W, distances below the type's minimum cannot be represented;
// a run that needs one reports a NegativeCycleError.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V + E)
func BellmanFord[N comparable, W Weight](g Graph[N, W], source N, opts ...Option) (map[N]W, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Seed distances and snapshot the edges.
	r := newRunner(g)
	r.init(source)
	cfg.Observer.Start(len(r.dist), len(r.edges))

	// 3) |V| full passes.
	passes := r.passes
	for pass := 1; pass <= passes; pass++ {
		var relaxed int
		if cfg.Workers > 1 && len(r.edges) > 1 {
			relaxed = r.relaxConcurrent(cfg.Workers)
		} else {
			relaxed = r.relaxAll()
		}
		cfg.OnPass(pass, relaxed)
		cfg.Observer.Pass(pass, relaxed)
	}

	// 4) Verify scan.
	if err := r.verify(); err != nil {
		cfg.Observer.Finish(passes, err)
		return nil, err
	}
	cfg.Observer.Finish(passes, nil)

	return r.dist, nil
}

// runner holds the mutable state for a single BellmanFord execution.
type runner[N comparable, W Weight] struct {
	edges  []Edge[N, W] // stable snapshot of g's edges
	dist   map[N]W      // node → best known distance
	inf    W            // cached Infinity[W]()
	floor  W            // smallest representable W (-Inf for floats)
	passes int          // number of relaxation passes (|V|)
	nodes  []N          // enumeration order of g.Nodes()
}

func newRunner[N comparable, W Weight](g Graph[N, W]) *runner[N, W] {
	r := &runner[N, W]{inf: Infinity[W](), floor: minimum[W]()}
	if g == nil {
		r.dist = make(map[N]W, 1)
		return r
	}

	r.nodes = g.Nodes()
	r.passes = g.NodeCount()
	r.dist = make(map[N]W, len(r.nodes)+1)
	g.EachEdge(func(from, to N, weight W) {
		r.edges = append(r.edges, Edge[N, W]{From: from, To: to, Weight: weight})
	})

	return r
}

// init sets every enumerated node to infinity and the source to zero.
// The source is inserted even when g does not enumerate it.
func (r *runner[N, W]) init(source N) {
	for _, n := range r.nodes {
		r.dist[n] = r.inf
	}
	var zero W
	r.dist[source] = zero
}

// extend returns du + w. ok is false when the sum must not be used: du is
// still infinite, or the sum would reach the infinite sentinel. under reports
// an integer sum below the smallest representable W; the result is then
// saturated to r.floor.
func (r *runner[N, W]) extend(du, w W) (sum W, ok, under bool) {
	if du >= r.inf {
		return r.inf, false, false
	}
	if w > 0 && du > r.inf-w {
		return r.inf, false, false
	}
	if w < 0 && du < r.floor-w {
		return r.floor, true, true
	}

	return du + w, true, false
}

// candidate evaluates the relaxation test for e against dist. It reports the
// improved distance for e.To and whether it is strictly better.
// Edges with an endpoint missing from dist are skipped. A sum that falls
// below r.floor is always relaxable, so a negative cycle that exhausts the
// integer range still fails the verify scan.
func (r *runner[N, W]) candidate(dist map[N]W, e Edge[N, W]) (W, bool) {
	dv, ok := dist[e.To]
	if !ok {
		return dv, false
	}
	du, ok := dist[e.From]
	if !ok {
		return dv, false
	}
	nd, ok, under := r.extend(du, e.Weight)
	if under {
		return nd, true
	}
	if !ok || !(dv > nd) {
		return dv, false
	}

	return nd, true
}

// relaxAll performs one sequential pass over every edge and returns the
// number of distance updates.
func (r *runner[N, W]) relaxAll() int {
	relaxed := 0
	for _, e := range r.edges {
		if nd, ok := r.candidate(r.dist, e); ok && nd < r.dist[e.To] {
			r.dist[e.To] = nd
			relaxed++
		}
	}

	return relaxed
}

// verify scans every edge once more; the first relaxable edge is the witness.
func (r *runner[N, W]) verify() error {
	for _, e := range r.edges {
		if _, ok := r.candidate(r.dist, e); ok {
			return &NegativeCycleError[N]{From: e.From, To: e.To}
		}
	}

	return nil
}
