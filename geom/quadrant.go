package geom

import "math"

// Quadrant is an axis-aligned bounding rectangle, accumulated from points.
// NewQuadrant returns an empty one (the zero value is instead the
// degenerate rectangle at the origin); adding points grows it monotonically.
type Quadrant struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewQuadrant returns an empty quadrant (inverted bounds, so the first Add
// always takes effect).
func NewQuadrant() Quadrant {
	return Quadrant{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Add grows q to include p, returning the updated quadrant.
func (q Quadrant) Add(p Point) Quadrant {
	return Quadrant{
		MinX: math.Min(q.MinX, p.X),
		MinY: math.Min(q.MinY, p.Y),
		MaxX: math.Max(q.MaxX, p.X),
		MaxY: math.Max(q.MaxY, p.Y),
	}
}

// Update grows q in place to also cover other.
func (q *Quadrant) Update(other Quadrant) {
	q.MinX = math.Min(q.MinX, other.MinX)
	q.MinY = math.Min(q.MinY, other.MinY)
	q.MaxX = math.Max(q.MaxX, other.MaxX)
	q.MaxY = math.Max(q.MaxY, other.MaxY)
}

// Limits returns (min, max) for dimension dim (0 = x, 1 = y).
func (q Quadrant) Limits(dim int) (float64, float64) {
	if dim == 0 {
		return q.MinX, q.MaxX
	}
	return q.MinY, q.MaxY
}

// ContainsY reports whether y falls within [MinY, MaxY].
func (q Quadrant) ContainsY(y float64) bool {
	return y >= q.MinY && y <= q.MaxY
}
