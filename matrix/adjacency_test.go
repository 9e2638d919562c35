package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bfpath/core"
	"github.com/katalvlaran/bfpath/matrix"
)

func TestNewAdjacency_Shape(t *testing.T) {
	_, err := matrix.NewAdjacency(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewAdjacency(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NodeCount())
	assert.Empty(t, m.Nodes())
}

func TestAdjacency_SetAtUnset(t *testing.T) {
	m, err := matrix.NewAdjacency(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, -4.5))
	w, ok, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -4.5, w)

	_, ok, err = m.At(1, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Unset(0, 1))
	_, ok, _ = m.At(0, 1)
	assert.False(t, ok)

	assert.ErrorIs(t, m.Set(3, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNWeight)
	_, _, err = m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Unset(0, 9), matrix.ErrOutOfRange)
}

func TestAdjacency_EachEdgeRowMajor(t *testing.T) {
	m, _ := matrix.NewAdjacency(3)
	_ = m.Set(2, 0, 3)
	_ = m.Set(0, 2, 1)
	_ = m.Set(0, 1, 0)

	var got [][3]float64
	m.EachEdge(func(from, to int, w float64) {
		got = append(got, [3]float64{float64(from), float64(to), w})
	})
	assert.Equal(t, [][3]float64{{0, 1, 0}, {0, 2, 1}, {2, 0, 3}}, got)
	assert.Equal(t, []int{0, 1, 2}, m.Nodes())
	assert.Equal(t, "∞ 0 1\n∞ ∞ ∞\n3 ∞ ∞\n", m.String())
}

func TestFromGraph(t *testing.T) {
	_, err := matrix.FromGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)

	g := core.NewGraph(core.WithUndirected())
	_, _ = g.AddEdge("b", "a", 2)
	_, _ = g.AddEdge("b", "c", -1)

	m, err := matrix.FromGraph(g)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())

	a, _ := m.IndexOf("a")
	b, _ := m.IndexOf("b")
	c, _ := m.IndexOf("c")
	assert.Equal(t, []int{0, 1, 2}, []int{a, b, c})

	for _, p := range [][2]int{{a, b}, {b, a}, {b, c}, {c, b}} {
		_, ok, _ := m.At(p[0], p[1])
		assert.True(t, ok, "arc %v", p)
	}
	_, ok, _ := m.At(a, c)
	assert.False(t, ok)

	label, err := m.VertexAt(c)
	require.NoError(t, err)
	assert.Equal(t, "c", label)
	_, err = m.VertexAt(7)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.IndexOf("z")
	assert.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestFromGraph_MultiEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("a", "b", 2)

	_, err := matrix.FromGraph(g)
	assert.ErrorIs(t, err, matrix.ErrMultiEdge)
}
