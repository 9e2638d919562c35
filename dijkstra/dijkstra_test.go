package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfpath/bellmanford"
	"github.com/katalvlaran/bfpath/core"
	"github.com/katalvlaran/bfpath/dijkstra"
)

func TestDijkstra_Basic(t *testing.T) {
	g := bellmanford.NewEdgeList[string, int64]("A", "B", "C", "D", "E")
	g.Add("A", "B", 4).Add("A", "C", 1).Add("C", "B", 2).Add("B", "D", 5).Add("C", "D", 8)

	dist, err := dijkstra.Dijkstra[string, int64](g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"A": 0, "B": 3, "C": 1, "D": 8, "E": math.MaxInt64,
	}, dist)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", -0.5)

	_, err := dijkstra.Dijkstra[string, float64](g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "B→C")
}

func TestDijkstra_NilGraphAndAbsentSource(t *testing.T) {
	dist, err := dijkstra.Dijkstra[string, float64](nil, "X")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"X": 0}, dist)

	g := bellmanford.NewEdgeList[string, float64]("A")
	dist, err = dijkstra.Dijkstra[string, float64](g, "Z")
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist["Z"])
	assert.True(t, bellmanford.IsInf(dist["A"]))
}

func TestDijkstra_UndirectedAndZeroCycle(t *testing.T) {
	g := core.NewGraph(core.WithUndirected())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 2)

	dist, err := dijkstra.Dijkstra[string, float64](g, "C")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 2, "B": 2, "C": 0}, dist)
}

func TestDijkstra_SaturatesNearInfinity(t *testing.T) {
	g := bellmanford.NewEdgeList[int, int8]()
	g.Add(0, 1, 100).Add(1, 2, 100)

	dist, err := dijkstra.Dijkstra[int, int8](g, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(100), dist[1])
	assert.Equal(t, int8(math.MaxInt8), dist[2])
}

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("s", "a", 7)
	_, _ = g.AddEdge("s", "b", 2)
	_, _ = g.AddEdge("b", "a", 3)
	_, _ = g.AddEdge("a", "c", 1)
	_, _ = g.AddEdge("b", "c", 9)
	_ = g.AddVertex("lonely")

	want, err := bellmanford.BellmanFord[string, float64](g, "s")
	require.NoError(t, err)
	got, err := dijkstra.Dijkstra[string, float64](g, "s")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
