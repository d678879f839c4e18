package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesHashIdempotence(t *testing.T) {
	h := NewCoordinatesHash(0.01)
	for _, c := range []float64{1.0, 3.14159, -2.5, 0.0} {
		snapped := h.Add(c)
		assert.Equal(t, snapped, h.Add(snapped), "snap(snap(c)) must equal snap(c)")
	}
}

func TestCoordinatesHashProximity(t *testing.T) {
	h := NewCoordinatesHash(0.4)
	first := h.Add(1.0)
	assert.Equal(t, 1.0, first)
	second := h.Add(1.3)
	assert.Equal(t, first, second, "a value within precision of an existing canonical should absorb to it")
}

// TestSnapperS6 verifies scenario S6 from the spec: precision 0.4, inputs
// 1.0, 1.3, 4.2 snap to 1.0, 1.0, 4.2.
func TestSnapperS6(t *testing.T) {
	h := NewCoordinatesHash(0.4)
	assert.Equal(t, 1.0, h.Add(1.0))
	assert.Equal(t, 1.0, h.Add(1.3))
	assert.Equal(t, 4.2, h.Add(4.2))
}

func TestPointsHashSnapsAxesIndependently(t *testing.T) {
	h := NewPointsHash(0.4)
	p1 := h.Add(Point{X: 1.0, Y: 3.5})
	assert.Equal(t, Point{X: 1.0, Y: 3.5}, p1)
	p2 := h.Add(Point{X: 1.3, Y: 4.2})
	assert.Equal(t, Point{X: 1.0, Y: 4.2}, p2, "x absorbs to 1.0, y (4.2) is too far from 3.5 to absorb")
}

func TestFloatKeyCanonicalizesNaNAndZero(t *testing.T) {
	nan1 := NewFloatKey(nanValue())
	nan2 := NewFloatKey(nanValue())
	assert.Equal(t, nan1, nan2)

	assert.Equal(t, NewFloatKey(0.0), NewFloatKey(negativeZero()))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func negativeZero() float64 {
	return math.Copysign(0, -1)
}
