package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOffsetMonotonicity verifies property 7: offsetting a convex polygon
// by r less than its inradius yields one holed pocket with no holes; by r
// at or beyond the inradius, the region collapses to empty.
func TestOffsetMonotonicity(t *testing.T) {
	outer := squarePolygon(10) // inradius 10
	hp := NewHoledPolygon(outer, nil)
	rounder := NewPointsHash(1e-6)

	small := OffsetHoledPolygon(hp, 2, rounder)
	require.Len(t, small, 1)
	assert.Empty(t, small[0].Holes)

	rounder2 := NewPointsHash(1e-6)
	collapsed := OffsetHoledPolygon(hp, 10, rounder2)
	assert.Empty(t, collapsed)
}

func TestOffsetNonPositiveRadiusIsEmpty(t *testing.T) {
	hp := NewHoledPolygon(squarePolygon(5), nil)
	rounder := NewPointsHash(1e-6)
	assert.Empty(t, OffsetHoledPolygon(hp, 0, rounder))
	assert.Empty(t, OffsetHoledPolygon(hp, -1, rounder))
}
