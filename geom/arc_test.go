package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArcAdjustsBadCenter(t *testing.T) {
	start := Point{X: 1, Y: 0}
	end := Point{X: 0, Y: 1}
	badCenter := Point{X: 0.1, Y: 0.1} // nowhere near equidistant at radius 1
	arc, err := NewArc(start, end, badCenter, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, arc.Center.DistanceTo(start), 1e-6)
	assert.InDelta(t, 1.0, arc.Center.DistanceTo(end), 1e-6)
}

func TestArcContainsEndpoints(t *testing.T) {
	arc, err := NewArc(Point{1, 0}, Point{0, 1}, Point{0, 0}, 1)
	require.NoError(t, err)
	assert.True(t, arc.Contains(arc.Start))
	assert.True(t, arc.Contains(arc.End))
	assert.False(t, arc.StrictlyContains(arc.Start))
}

func TestCirclesIntersectionsConcentric(t *testing.T) {
	pts := circlesIntersections(Point{0, 0}, Point{0, 0}, 1, 2)
	assert.Empty(t, pts)
}

func TestCirclesIntersectionsTangent(t *testing.T) {
	pts := circlesIntersections(Point{0, 0}, Point{2, 0}, 1, 1)
	require.Len(t, pts, 1)
	assert.InDelta(t, 1.0, pts[0].X, 1e-9)
	assert.InDelta(t, 0.0, pts[0].Y, 1e-9)
}

func TestSolveQuadraticDegeneracies(t *testing.T) {
	assert.Empty(t, solveQuadratic(0, 0, 1))
	assert.Len(t, solveQuadratic(0, 2, -4), 1)
	assert.Empty(t, solveQuadratic(1, 0, 1)) // delta < 0
	roots := solveQuadratic(1, 0, -4)
	require.Len(t, roots, 2)
	assert.InDelta(t, -2.0, math.Min(roots[0], roots[1]), 1e-9)
	assert.InDelta(t, 2.0, math.Max(roots[0], roots[1]), 1e-9)
}
