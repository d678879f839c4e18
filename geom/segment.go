package geom

import "math"

// Segment is an oriented pair of canonical points, start != end.
type Segment struct {
	Start, End Point
}

// NewSegment builds a segment, returning ErrZeroLengthSegment if start and
// end coincide.
func NewSegment(start, end Point) (Segment, error) {
	if start.Equal(end) {
		return Segment{}, ErrZeroLengthSegment
	}
	return Segment{Start: start, End: end}, nil
}

// Reverse returns the segment with endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// OrderedPoints returns (start, end) with the lexicographically smaller
// point first.
func (s Segment) OrderedPoints() (Point, Point) {
	if s.Start.Less(s.End) {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// Vector returns the segment's direction vector, End - Start.
func (s Segment) Vector() Vector {
	return s.End.Sub(s.Start)
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return s.Vector().Norm()
}

// SweepingAngle returns the segment support line's angle normalized to
// [0, π) — orientation modulo direction.
func (s Segment) SweepingAngle() float64 {
	a := s.Vector().Angle()
	if a < 0 {
		a += math.Pi
	}
	if almostEqual(a, math.Pi) {
		a = 0.0
	}
	return a
}

// HorizontalLineIntersection returns the x coordinate where s's support
// line crosses y = height, assuming s is not horizontal.
func (s Segment) HorizontalLineIntersection(height float64) float64 {
	alpha := (height - s.Start.Y) / (s.End.Y - s.Start.Y)
	return s.Start.X + alpha*(s.End.X-s.Start.X)
}

// LineKey returns a hashable identity for s's infinite support line, robust
// to float noise: collinear segments (after angle/coordinate snapping)
// produce equal keys. Horizontal segments hash their y instead of an
// undefined x-intercept.
func (s Segment) LineKey(angles *AngleHash, coords *CoordinatesHash) (FloatKey, FloatKey) {
	angleKey := angles.Key(s.SweepingAngle())
	if angleKey == NewFloatKey(0.0) {
		return angleKey, coords.Key(s.Start.Y)
	}
	return angleKey, coords.Key(s.HorizontalLineIntersection(0.0))
}

// IsHorizontal reports whether s's endpoints share a y coordinate.
func (s Segment) IsHorizontal() bool {
	return almostEqual(s.Start.Y, s.End.Y)
}

// IntersectionWith solves the 2x2 linear system for the intersection of s
// and o as line segments; both parameters must lie in [0,1] (with
// tolerance). Parallel segments (including collinear ones) always return
// ok == false — collinear overlap is handled upstream by the overlap
// resolver, not here.
func (s Segment) IntersectionWith(o Segment) (Point, bool) {
	d1 := s.Vector()
	d2 := o.Vector()
	denom := d1.X*d2.Y - d1.Y*d2.X
	if almostZero(denom) {
		return Point{}, false
	}
	diff := o.Start.Sub(s.Start)
	alpha := (diff.X*d2.Y - diff.Y*d2.X) / denom
	beta := (diff.X*d1.Y - diff.Y*d1.X) / denom
	const tol = Epsilon
	if alpha < -tol || alpha > 1+tol || beta < -tol || beta > 1+tol {
		return Point{}, false
	}
	return s.Start.Add(d1.Scale(alpha)), true
}

// IsCollinear reports whether s and o lie on the same infinite line.
func (s Segment) IsCollinear(o Segment) bool {
	return IsAligned(s.Start, s.End, o.Start) && IsAligned(s.Start, s.End, o.End)
}

// SubPath returns the segment between p1 and p2, both assumed to lie on s.
func (s Segment) SubPath(p1, p2 Point) Segment {
	return Segment{Start: p1, End: p2}
}
