package geom

import "math"

// Arc is an oriented circular arc strictly less than a half-circle.
// Invariant: |center-start| = |center-end| = radius, up to Epsilon; NewArc
// re-solves the center when the supplied one violates this.
type Arc struct {
	Start, End, Center Point
	Radius             float64
}

// NewArc builds an arc, re-solving Center if it doesn't satisfy the
// equidistance invariant: the perpendicular bisector of (start,end) is
// intersected with the circle of the given radius around start, and the
// candidate closest to the supplied center is kept.
func NewArc(start, end, center Point, radius float64) (Arc, error) {
	if start.Equal(end) {
		return Arc{}, ErrDegenerateArc
	}
	if !almostEqual(center.DistanceTo(start), radius) || !almostEqual(center.DistanceTo(end), radius) {
		center = adjustArcCenter(start, end, center, radius)
	}
	return Arc{Start: start, End: end, Center: center, Radius: radius}, nil
}

func adjustArcCenter(start, end, supplied Point, radius float64) Point {
	candidates := possibleArcCenters(start, end, radius)
	if len(candidates) == 0 {
		return supplied
	}
	best := candidates[0]
	bestDist := best.DistanceTo(supplied)
	for _, c := range candidates[1:] {
		if d := c.DistanceTo(supplied); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// possibleArcCenters returns the candidate circle centers of the given
// radius equidistant from start and end, found by intersecting the
// perpendicular bisector of (start,end) with the circle of that radius
// around start.
func possibleArcCenters(start, end Point, radius float64) []Point {
	support := end.Sub(start)
	middle := start.CenterWith(end)
	bisectorPoint := middle.Add(support.Perpendicular())
	bisector := Segment{Start: middle, End: bisectorPoint}
	return lineCircleIntersections(bisector, start, radius)
}

// Angle returns the (non-negative, < 2π) angle subtended by the arc at its
// center, measured from the start radius to the end radius.
func (a Arc) Angle() float64 {
	startAngle := a.Start.Sub(a.Center).Angle()
	endAngle := a.End.Sub(a.Center).Angle()
	return normalizeAngle2Pi(startAngle - endAngle)
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	angle := a.Angle()
	if angle > math.Pi {
		angle = 2*math.Pi - angle
	}
	return angle * a.Radius
}

// Reverse returns the arc with start/end swapped, same center and radius.
func (a Arc) Reverse() Arc {
	return Arc{Start: a.End, End: a.Start, Center: a.Center, Radius: a.Radius}
}

// Contains reports whether point lies on the arc (endpoints included).
func (a Arc) Contains(point Point) bool {
	if point.AlmostEqual(a.Start) || point.AlmostEqual(a.End) {
		return true
	}
	if !almostEqual(point.DistanceTo(a.Center), a.Radius) {
		return false
	}
	return a.containsCirclePoint(point)
}

// StrictlyContains reports whether point lies strictly between the arc's
// endpoints (endpoints excluded).
func (a Arc) StrictlyContains(point Point) bool {
	if point.AlmostEqual(a.Start) || point.AlmostEqual(a.End) {
		return false
	}
	return almostEqual(point.DistanceTo(a.Center), a.Radius) && a.containsCirclePoint(point)
}

// containsCirclePoint checks whether point (assumed to already be on the
// supporting circle) is on the minor-arc side: equivalent to the closed
// chord (start,end) intersecting the segment (center,point).
func (a Arc) containsCirclePoint(point Point) bool {
	chord := Segment{Start: a.Start, End: a.End}
	spoke := Segment{Start: a.Center, End: point}
	_, ok := chord.IntersectionWith(spoke)
	return ok
}

// HorizontalLineIntersection returns the unique point where y = height
// crosses the arc, assuming exactly one intersection exists (the caller's
// responsibility per the spec's Pythagoras construction).
func (a Arc) HorizontalLineIntersection(height float64) (Point, bool) {
	sideLength := math.Abs(height - a.Center.Y)
	if sideLength > a.Radius+Epsilon {
		return Point{}, false
	}
	otherSide := math.Sqrt(math.Max(0, a.Radius*a.Radius-sideLength*sideLength))
	p1 := Point{X: a.Center.X - otherSide, Y: height}
	if a.containsCirclePoint(p1) {
		return p1, true
	}
	p2 := Point{X: a.Center.X + otherSide, Y: height}
	if a.containsCirclePoint(p2) {
		return p2, true
	}
	return Point{}, false
}

// TangentAngle returns the tangent line angle (mod π) of the circle at
// tangentPoint.
func (a Arc) TangentAngle(tangentPoint Point) float64 {
	base := tangentPoint.Sub(a.Center).Angle()
	angle := base + math.Pi/2
	for angle < 0 {
		angle += math.Pi
	}
	for angle >= math.Pi {
		angle -= math.Pi
	}
	return angle
}

// IntersectionsWithArc returns the points where a and o intersect, found by
// intersecting their supporting circles and filtering by membership in
// both arcs.
func (a Arc) IntersectionsWithArc(o Arc) []Point {
	var out []Point
	for _, p := range circlesIntersections(a.Center, o.Center, a.Radius, o.Radius) {
		if a.containsCirclePoint(p) && o.containsCirclePoint(p) {
			out = append(out, p)
		}
	}
	return out
}

// IntersectionsWithSegment returns the points where a and seg intersect.
func (a Arc) IntersectionsWithSegment(seg Segment) []Point {
	var out []Point
	for _, p := range lineCircleIntersections(seg, a.Center, a.Radius) {
		if !a.containsCirclePoint(p) {
			continue
		}
		if pointOnSegment(seg, p) {
			out = append(out, p)
		}
	}
	return out
}

func pointOnSegment(s Segment, p Point) bool {
	d := s.Vector()
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq < Epsilon*Epsilon {
		return p.AlmostEqual(s.Start)
	}
	t := (p.X-s.Start.X)*d.X + (p.Y-s.Start.Y)*d.Y
	t /= lenSq
	const tol = Epsilon
	if t < -tol || t > 1+tol {
		return false
	}
	proj := s.Start.Add(d.Scale(t))
	return p.AlmostEqual(proj)
}

// SubPath returns the sub-arc between p1 and p2, preserving center/radius.
func (a Arc) SubPath(p1, p2 Point) Arc {
	return Arc{Start: p1, End: p2, Center: a.Center, Radius: a.Radius}
}

// lineCircleIntersections solves for the intersections of the infinite
// line supporting segment with the circle of the given radius around
// center, parameterizing along the segment: a·α²+b·α+c=0 with
// a = |d|², b = -2(c·d), c = |c|²-r², d = end-start, c = center-start.
func lineCircleIntersections(segment Segment, center Point, radius float64) []Point {
	d := segment.Vector()
	c := center.Sub(segment.Start)
	a := d.X*d.X + d.Y*d.Y
	b := -2 * (c.X*d.X + c.Y*d.Y)
	cc := c.X*c.X + c.Y*c.Y - radius*radius
	roots := solveQuadratic(a, b, cc)
	out := make([]Point, len(roots))
	for i, alpha := range roots {
		out[i] = segment.Start.Add(d.Scale(alpha))
	}
	return out
}

// solveQuadratic solves a·x² + b·x + c = 0, handling the a≈0, Δ≈0 and Δ<0
// degeneracies.
func solveQuadratic(a, b, c float64) []float64 {
	delta := b*b - 4*a*c
	if almostZero(delta) {
		if almostZero(a) {
			return nil
		}
		return []float64{-b / (2 * a)}
	}
	if delta < 0 {
		return nil
	}
	if almostZero(a) {
		if almostZero(b) {
			return nil
		}
		return []float64{-c / b}
	}
	sqrtDelta := math.Sqrt(delta)
	return []float64{(-b - sqrtDelta) / (2 * a), (-b + sqrtDelta) / (2 * a)}
}

// circlesIntersections returns the intersection points of two circles,
// handling concentric circles (none) and internal/external tangency (one
// point) as degeneracies per the spec's perpendicular-offset formula:
// l = (r1²-r2²)/(2d) + d/2, h = sqrt(r1²-l²).
func circlesIntersections(c1, c2 Point, r1, r2 float64) []Point {
	d := c1.DistanceTo(c2)
	if almostZero(d) {
		return nil
	}
	var l float64
	if almostEqual(r1, r2) {
		l = d / 2
	} else {
		l = (r1*r1-r2*r2)/(2*d) + d/2
	}
	dir := c2.Sub(c1).Scale(1 / d)
	perp := dir.Perpendicular()
	if almostEqual(r1, l) {
		return []Point{c1.Add(dir.Scale(l))}
	}
	if r1 < l || math.Abs(l) > r1 {
		return nil
	}
	h := math.Sqrt(r1*r1 - l*l)
	base := c1.Add(dir.Scale(l))
	p1 := base.Add(perp.Scale(h))
	p2 := base.Add(perp.Scale(-h))
	if p1.AlmostEqual(p2) {
		return []Point{p1}
	}
	return []Point{p1, p2}
}
