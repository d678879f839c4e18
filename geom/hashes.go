package geom

import "math"

// CoordinatesHash snaps near-identical floating-point coordinates along a
// single axis onto a canonical representative, in O(1) amortized per call.
//
// It keeps two independent maps from integer bucket key to the first
// canonical value observed in that bucket: one keyed by the plain bucket
// ⌊c/precision⌋, the other by a half-bucket-displaced key
// ⌊c/precision + 0.5⌋. A query first checks the primary bucket; on a miss it
// checks the displaced bucket (which catches values that fall just the
// other side of a bucket boundary from an existing canonical value);
// inserting into both on a miss is what gives neighborhood absorption
// without ever scanning adjacent buckets explicitly.
type CoordinatesHash struct {
	precision float64
	primary   map[int64]float64
	displaced map[int64]float64
}

// NewCoordinatesHash builds a snapper with the given precision (bucket
// width). precision must be > 0.
func NewCoordinatesHash(precision float64) *CoordinatesHash {
	h := &CoordinatesHash{
		precision: precision,
		primary:   make(map[int64]float64),
		displaced: make(map[int64]float64),
	}
	h.Add(0.0)
	return h
}

func (h *CoordinatesHash) key(c float64) int64 {
	return int64(math.Floor(c / h.precision))
}

func (h *CoordinatesHash) displacedKey(c float64) int64 {
	return int64(math.Floor(c/h.precision + 0.5))
}

// Add snaps c to its canonical representative, recording c as canonical for
// its bucket if none existed yet. It never snaps to NaN: a NaN input is
// returned unchanged and is not recorded.
func (h *CoordinatesHash) Add(c float64) float64 {
	if math.IsNaN(c) {
		return c
	}
	firstKey := h.key(c)
	if v, ok := h.primary[firstKey]; ok {
		return v
	}
	dk := h.displacedKey(c)
	if v, ok := h.displaced[dk]; ok {
		h.primary[firstKey] = v
		return v
	}
	h.displaced[dk] = c
	h.primary[firstKey] = c
	return c
}

// Key snaps c and wraps the canonical value as a FloatKey, suitable for use
// as a stable map key.
func (h *CoordinatesHash) Key(c float64) FloatKey {
	return NewFloatKey(h.Add(c))
}

// PointsHash snaps points axis-wise via two independent CoordinatesHash
// instances.
type PointsHash struct {
	x, y *CoordinatesHash
}

// NewPointsHash builds a point snapper with the given per-axis precision.
func NewPointsHash(precision float64) *PointsHash {
	return &PointsHash{
		x: NewCoordinatesHash(precision),
		y: NewCoordinatesHash(precision),
	}
}

// Add snaps p to its canonical representative.
func (h *PointsHash) Add(p Point) Point {
	return Point{X: h.x.Add(p.X), Y: h.y.Add(p.Y)}
}

// AngleHash is a CoordinatesHash specialized for sweeping angles, which live
// in [0, π).
type AngleHash struct {
	*CoordinatesHash
}

// NewAngleHash builds an angle snapper with the given precision.
func NewAngleHash(precision float64) *AngleHash {
	return &AngleHash{CoordinatesHash: NewCoordinatesHash(precision)}
}
