package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilderS3 verifies scenario S3: the edges of a clockwise square fed
// in (both directions, per the builder's contract) produce exactly one
// clockwise polygon; the counter-clockwise face is discarded for
// non-positive area.
func TestBuilderS3(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	var segs []Segment
	for i := range square {
		segs = append(segs, Segment{Start: square[i], End: square[(i+1)%len(square)]})
	}
	polys := BuildPolygons(segs)
	require.Len(t, polys, 1)
	assert.True(t, polys[0].IsClockwise())
	assert.InDelta(t, 100.0, polys[0].Area(), 1e-6)
}

func TestBuilderDiscardsZeroArea(t *testing.T) {
	// A degenerate "polygon" that folds back on itself along one line.
	segs := []Segment{
		{Start: Point{0, 0}, End: Point{5, 0}},
		{Start: Point{5, 0}, End: Point{0, 0}},
	}
	polys := BuildPolygons(segs)
	assert.Empty(t, polys)
}
