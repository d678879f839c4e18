package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHoledPolygonsEvenDepthOuters verifies property 6: for nested input
// {A⊃B⊃C⊃D}, outers are {A, C} with children {B} and {D} respectively.
func TestHoledPolygonsEvenDepthOuters(t *testing.T) {
	polys := []Polygon{squarePolygon(4), squarePolygon(3), squarePolygon(2), squarePolygon(1)}
	shapes := make([]Shape, len(polys))
	for i, p := range polys {
		shapes[i] = p
	}
	forest := Classify(shapes)
	holed := BuildHoledPolygons(polys, forest)
	require.Len(t, holed, 2)

	assert.True(t, holed[0].Outer.AlmostEqualTo(squarePolygon(4)))
	require.Len(t, holed[0].Holes, 1)
	assert.True(t, holed[0].Holes[0].AlmostEqualTo(squarePolygon(3)))

	assert.True(t, holed[1].Outer.AlmostEqualTo(squarePolygon(2)))
	require.Len(t, holed[1].Holes, 1)
	assert.True(t, holed[1].Holes[0].AlmostEqualTo(squarePolygon(1)))
}
