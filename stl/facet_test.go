package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrthold/slicegeo/geom"
)

// TestFacetIntersectS5 verifies scenario S5: a single upright triangle
// (0,0,0),(1,0,0),(0,0,1) cut at z=0.5 yields one segment (0,0)-(0.5,0).
func TestFacetIntersectS5(t *testing.T) {
	f := Facet{Points: [3]geom.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}}
	points := geom.NewPointsHash(1e-9)
	seg, ok := f.Intersect(0.5, points)
	require.True(t, ok)
	p1, p2 := seg.OrderedPoints()
	assert.InDelta(t, 0.0, p1.X, 1e-9)
	assert.InDelta(t, 0.0, p1.Y, 1e-9)
	assert.InDelta(t, 0.5, p2.X, 1e-9)
	assert.InDelta(t, 0.0, p2.Y, 1e-9)
}

func TestFacetIntersectOutsideRangeIsEmpty(t *testing.T) {
	f := Facet{Points: [3]geom.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}}
	points := geom.NewPointsHash(1e-9)
	_, ok := f.Intersect(2.0, points)
	assert.False(t, ok)
}

func TestFacetHorizontalNeverIntersects(t *testing.T) {
	f := Facet{Points: [3]geom.Point3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: 1},
	}}
	points := geom.NewPointsHash(1e-9)
	_, ok := f.Intersect(1, points)
	assert.False(t, ok)
}
