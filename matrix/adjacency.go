package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/bfpath/core"
)

// noEdge marks an absent arc.
var noEdge = math.Inf(1)

// Adjacency is a dense n×n adjacency matrix. It is not safe for concurrent
// mutation; concurrent reads are fine.
type Adjacency struct {
	n    int
	data []float64 // row-major, len == n*n

	// Optional vertex labels, populated by FromGraph.
	VertexIndex   map[string]int
	vertexByIndex []string
}

// NewAdjacency returns an n×n matrix with no arcs.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadShape, n)
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = noEdge
	}

	return &Adjacency{n: n, data: data}, nil
}

// FromGraph builds an Adjacency from g, indexing vertices in g.Vertices()
// order. Undirected edges fill both cells. Parallel arcs are rejected.
// Complexity: O(V² + E).
func FromGraph(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	m, err := NewAdjacency(len(vertices))
	if err != nil {
		return nil, err
	}
	m.VertexIndex = make(map[string]int, len(vertices))
	m.vertexByIndex = vertices
	for i, id := range vertices {
		m.VertexIndex[id] = i
	}

	var ferr error
	g.EachEdge(func(from, to string, w float64) {
		if ferr != nil {
			return
		}
		i, j := m.VertexIndex[from], m.VertexIndex[to]
		if !math.IsInf(m.data[i*m.n+j], 1) {
			ferr = fmt.Errorf("%w: %s→%s", ErrMultiEdge, from, to)
			return
		}
		ferr = m.Set(i, j, w)
	})
	if ferr != nil {
		return nil, ferr
	}

	return m, nil
}

// Size returns n.
func (m *Adjacency) Size() int { return m.n }

func (m *Adjacency) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("%w: (%d,%d) in %d×%d", ErrOutOfRange, i, j, m.n, m.n)
	}

	return i*m.n + j, nil
}

// Set stores the arc i→j with weight w. Setting +Inf removes the arc.
func (m *Adjacency) Set(i, j int, w float64) error {
	if math.IsNaN(w) {
		return ErrNaNWeight
	}
	k, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.data[k] = w

	return nil
}

// Unset removes the arc i→j.
func (m *Adjacency) Unset(i, j int) error {
	k, err := m.indexOf(i, j)
	if err != nil {
		return err
	}
	m.data[k] = noEdge

	return nil
}

// At returns the weight of i→j and whether the arc exists.
func (m *Adjacency) At(i, j int) (float64, bool, error) {
	k, err := m.indexOf(i, j)
	if err != nil {
		return 0, false, err
	}
	w := m.data[k]

	return w, !math.IsInf(w, 1), nil
}

// IndexOf returns the matrix index of a labelled vertex.
func (m *Adjacency) IndexOf(id string) (int, error) {
	i, ok := m.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return i, nil
}

// VertexAt returns the label of index i, or "" when the matrix is unlabelled.
func (m *Adjacency) VertexAt(i int) (string, error) {
	if i < 0 || i >= m.n {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	if m.vertexByIndex == nil {
		return "", nil
	}

	return m.vertexByIndex[i], nil
}

// Nodes returns 0..n-1.
func (m *Adjacency) Nodes() []int {
	out := make([]int, m.n)
	for i := range out {
		out[i] = i
	}

	return out
}

// NodeCount returns n.
func (m *Adjacency) NodeCount() int { return m.n }

// EachEdge visits every present arc in row-major order.
func (m *Adjacency) EachEdge(fn func(from, to int, weight float64)) {
	for i := 0; i < m.n; i++ {
		row := m.data[i*m.n : (i+1)*m.n]
		for j, w := range row {
			if !math.IsInf(w, 1) {
				fn(i, j, w)
			}
		}
	}
}

// String renders the matrix with "∞" for absent arcs.
func (m *Adjacency) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			w := m.data[i*m.n+j]
			if math.IsInf(w, 1) {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%g", w)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
