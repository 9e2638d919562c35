package bfs

import (
	"context"

	"github.com/katalvlaran/bfpath/bellmanford"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	adj   map[N][]N
	known map[N]struct{}
	opts  Options
	ctx   context.Context
	queue []queueItem[N]
	res   *Result[N]
}

// BFS runs breadth-first search on g from start. A nil g yields a result
// holding only start. Errors are ErrOptionViolation or the context's error.
func BFS[N comparable, W bellmanford.Weight](g bellmanford.Graph[N, W], start N, opts ...Option) (*Result[N], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		adj:   make(map[N][]N),
		known: map[N]struct{}{start: {}},
		opts:  o,
		ctx:   o.Ctx,
		res:   &Result[N]{Depth: make(map[N]int)},
	}
	if g != nil {
		for _, n := range g.Nodes() {
			w.known[n] = struct{}{}
		}
		g.EachEdge(func(from, to N, weight W) {
			if bellmanford.IsInf(weight) {
				return
			}
			w.adj[from] = append(w.adj[from], to)
		})
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

func (w *walker[N]) enqueue(id N, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// loop processes the queue until empty or cancelled.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.id] {
			if _, ok := w.known[nbr]; !ok {
				continue
			}
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}
