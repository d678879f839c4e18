package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePolygon(halfSide float64) Polygon {
	return Polygon{Points: []Point{
		{-halfSide, -halfSide},
		{halfSide, -halfSide},
		{halfSide, halfSide},
		{-halfSide, halfSide},
	}}
}

// TestClassifierS2 verifies scenario S2: four concentric axis-aligned
// squares of radii 4,3,2,1 classify as a single nesting chain, each
// contained by the next larger.
func TestClassifierS2(t *testing.T) {
	shapes := []Shape{
		squarePolygon(4),
		squarePolygon(3),
		squarePolygon(2),
		squarePolygon(1),
	}
	forest := Classify(shapes)
	assert.Equal(t, 0, forest.Father[0])
	assert.Equal(t, 0, forest.Father[1])
	assert.Equal(t, 1, forest.Father[2])
	assert.Equal(t, 2, forest.Father[3])
	assert.Equal(t, []int{0}, forest.Roots)
}

func TestClassifierForestAcyclic(t *testing.T) {
	shapes := []Shape{squarePolygon(4), squarePolygon(3), squarePolygon(2)}
	forest := Classify(shapes)
	for i := range shapes {
		visited := map[int]bool{}
		cur := i
		for !forest.IsRoot(cur) {
			require.False(t, visited[cur], "father chain must not cycle")
			visited[cur] = true
			cur = forest.Father[cur]
		}
	}
}
