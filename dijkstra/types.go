package dijkstra

import (
	"errors"

	"github.com/katalvlaran/bfpath/bellmanford"
)

// ErrNegativeWeight indicates that a negative edge weight was found.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// arc is one outgoing adjacency entry.
type arc[N comparable, W bellmanford.Weight] struct {
	to N
	w  W
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem[N comparable, W bellmanford.Weight] struct {
	id   N
	dist W
}

// nodePQ is a min-heap of nodeItem ordered by dist. Stale entries stay in the
// heap and are skipped when popped.
type nodePQ[N comparable, W bellmanford.Weight] []nodeItem[N, W]

func (pq nodePQ[N, W]) Len() int           { return len(pq) }
func (pq nodePQ[N, W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N, W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N, W]) Push(x any) { *pq = append(*pq, x.(nodeItem[N, W])) }

func (pq *nodePQ[N, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
