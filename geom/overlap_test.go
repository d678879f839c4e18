package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOverlapS1 verifies scenario S1: three collinear overlapping segments
// merge into one covering segment under the counting variant.
func TestOverlapS1(t *testing.T) {
	segs := []Segment{
		{Start: Point{0, 0}, End: Point{1, 2}},
		{Start: Point{1, 2}, End: Point{2, 4}},
		{Start: Point{0.5, 1}, End: Point{1.5, 3}},
	}
	out := ResolveOverlapsCounting(segs)
	require.Len(t, out, 1)
	start, end := out[0].OrderedPoints()
	assert.InDelta(t, 0.0, start.X, Epsilon)
	assert.InDelta(t, 0.0, start.Y, Epsilon)
	assert.InDelta(t, 2.0, end.X, Epsilon)
	assert.InDelta(t, 4.0, end.Y, Epsilon)
}

func TestOverlapParityCancelsDoubleCover(t *testing.T) {
	segs := []Segment{
		{Start: Point{0, 0}, End: Point{10, 0}},
		{Start: Point{3, 0}, End: Point{7, 0}},
	}
	out := ResolveOverlapsParity(segs)
	var total float64
	for _, s := range out {
		total += s.Length()
	}
	// Parity cancels the doubly-covered [3,7] stretch, leaving [0,3] and
	// [7,10]: total length 6.
	assert.InDelta(t, 6.0, total, 1e-9)
}

func TestOverlapEmptyInput(t *testing.T) {
	assert.Empty(t, ResolveOverlapsCounting(nil))
	assert.Empty(t, ResolveOverlapsParity(nil))
}
