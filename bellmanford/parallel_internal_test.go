package bellmanford

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRange(t *testing.T) {
	assert.Equal(t, [][2]int{{0, 4}, {4, 8}, {8, 10}}, splitRange(10, 3))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, splitRange(2, 8), "never more chunks than items")
	assert.Equal(t, [][2]int{{0, 5}}, splitRange(5, 1))
	assert.Nil(t, splitRange(0, 4))
}

func TestRelaxConcurrent_TakesMinimum(t *testing.T) {
	// Two chunks propose different values for "t"; the smaller must win.
	r := &runner[string, int]{
		inf:   Infinity[int](),
		floor: minimum[int](),
		edges: []Edge[string, int]{
			{From: "s", To: "t", Weight: 9},
			{From: "s", To: "t", Weight: 4},
		},
		dist: map[string]int{"s": 0, "t": Infinity[int]()},
	}

	assert.Equal(t, 1, r.relaxConcurrent(2))
	assert.Equal(t, 4, r.dist["t"])
	assert.Equal(t, 0, r.relaxConcurrent(2))
}

func TestMinimum(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), minimum[int8]())
	assert.Equal(t, int64(math.MinInt64), minimum[int64]())
	assert.True(t, math.IsInf(minimum[float64](), -1))
}
