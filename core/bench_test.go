package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/bfpath/core"
)

// BenchmarkAddEdge measures edge insertion on a growing chain.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 1)
	}
}

// BenchmarkEachEdge measures the arc enumeration consumed by the shortest-path engine.
func BenchmarkEachEdge(b *testing.B) {
	g := core.NewGraph(core.WithUndirected())
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		g.EachEdge(func(string, string, float64) { n++ })
	}
}
