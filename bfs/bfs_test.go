package bfs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfpath/bellmanford"
	"github.com/katalvlaran/bfpath/bfs"
	"github.com/katalvlaran/bfpath/core"
)

func TestBFS_OrderAndDepth(t *testing.T) {
	g := bellmanford.NewEdgeList[string, float64]("A", "B", "C", "D", "E")
	g.Add("A", "B", 1).Add("A", "C", -3).Add("B", "D", 2).Add("C", "D", 2)

	res, err := bfs.BFS[string, float64](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.False(t, res.Reached("E"))
}

func TestBFS_SkipsInfiniteAndUnknown(t *testing.T) {
	g := bellmanford.NewEdgeList[string, float64]("A", "B")
	g.Add("A", "B", math.Inf(1))
	g.Arcs = append(g.Arcs, bellmanford.Edge[string, float64]{From: "A", To: "ghost", Weight: 1})

	res, err := bfs.BFS[string, float64](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 1)
	_, _ = g.AddEdge("c", "d", 1)

	res, err := bfs.BFS[string, float64](g, "a", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Order)

	_, err = bfs.BFS[string, float64](g, "a", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := bellmanford.NewEdgeList[int, int]()
	g.Add(0, 1, 1)
	_, err := bfs.BFS[int, int](g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_NilGraph(t *testing.T) {
	res, err := bfs.BFS[string, float64](nil, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, res.Order)
}
