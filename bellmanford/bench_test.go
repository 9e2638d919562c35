package bellmanford_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bfpath/bellmanford"
)

// ringWithChords mirrors a common benchmark shape: each vertex links to its
// next three neighbours with small positive weights.
func ringWithChords(n int) *bellmanford.EdgeList[int, int] {
	g := bellmanford.NewEdgeList[int, int]()
	for src := 0; src < n; src++ {
		for d := 1; d <= 3; d++ {
			g.Add(src, (src+d)%n, (src+d)%10+1)
		}
	}

	return g
}

func BenchmarkBellmanFord(b *testing.B) {
	for _, n := range []int{50, 500} {
		g := ringWithChords(n)
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := bellmanford.BellmanFord[int, int](g, 0, bellmanford.WithWorkers(workers)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
