package bellmanford

import (
	"golang.org/x/sync/errgroup"
)

// relaxConcurrent performs one pass with the edges split into contiguous
// chunks, one goroutine per chunk.
//
// Workers only read r.dist (the previous pass's distances) and collect a
// per-node minimum of their improving candidates. The proposals are merged
// with take-minimum after all workers finish, so the result of a pass does
// not depend on goroutine scheduling.
func (r *runner[N, W]) relaxConcurrent(workers int) int {
	chunks := splitRange(len(r.edges), workers)
	proposals := make([]map[N]W, len(chunks))

	var eg errgroup.Group
	for i, c := range chunks {
		eg.Go(func() error {
			local := make(map[N]W)
			for _, e := range r.edges[c[0]:c[1]] {
				nd, ok := r.candidate(r.dist, e)
				if !ok {
					continue
				}
				if cur, seen := local[e.To]; !seen || nd < cur {
					local[e.To] = nd
				}
			}
			proposals[i] = local
			return nil
		})
	}
	_ = eg.Wait()

	best := make(map[N]W)
	for _, local := range proposals {
		for v, nd := range local {
			if cur, seen := best[v]; !seen || nd < cur {
				best[v] = nd
			}
		}
	}

	relaxed := 0
	for v, nd := range best {
		if nd < r.dist[v] {
			r.dist[v] = nd
			relaxed++
		}
	}

	return relaxed
}

// splitRange cuts [0,n) into at most k contiguous, non-empty [lo,hi) ranges.
func splitRange(n, k int) [][2]int {
	if k > n {
		k = n
	}
	if k < 1 {
		return nil
	}
	size := (n + k - 1) / k
	out := make([][2]int, 0, k)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}

	return out
}
