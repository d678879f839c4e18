package geom

import "math"

// Polygon is an ordered, cyclic sequence of points.
type Polygon struct {
	Points []Point
}

// NewPolygon builds a polygon from points in order.
func NewPolygon(points []Point) Polygon {
	return Polygon{Points: append([]Point(nil), points...)}
}

// AlmostEqualTo reports whether p and o trace the same cycle of points up
// to rotation of the starting index, direction of travel, and floating
// tolerance — used by tests that don't care which vertex or winding
// direction a face walk happened to produce.
func (p Polygon) AlmostEqualTo(o Polygon) bool {
	return p.sameCycle(o) || p.sameCycle(o.Reverse())
}

func (p Polygon) sameCycle(o Polygon) bool {
	if len(p.Points) != len(o.Points) {
		return false
	}
	n := len(p.Points)
	for offset := 0; offset < n; offset++ {
		match := true
		for i := 0; i < n; i++ {
			if !p.Points[i].AlmostEqual(o.Points[(i+offset)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// signedArea returns the shoelace sum divided by 2, i.e. the true signed
// area of the closed point sequence (0 for fewer than three points).
func signedArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	sum := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		sum += p1.X*p2.Y - p2.X*p1.Y
	}
	return sum / 2
}

// Area returns the polygon's signed area. Positive means clockwise in
// SVG-style y-down coordinates.
func (p Polygon) Area() float64 {
	return signedArea(p.Points)
}

// IsClockwise reports whether the polygon's signed area is positive.
func (p Polygon) IsClockwise() bool {
	return p.Area() > 0
}

// Reverse returns the polygon with point order reversed (flips
// orientation).
func (p Polygon) Reverse() Polygon {
	out := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		out[len(p.Points)-1-i] = pt
	}
	return Polygon{Points: out}
}

// Quadrant returns the polygon's bounding quadrant.
func (p Polygon) Quadrant() Quadrant {
	q := NewQuadrant()
	for _, pt := range p.Points {
		q = q.Add(pt)
	}
	return q
}

func wrappingTriplet(points []Point, i int) (Point, Point, Point) {
	n := len(points)
	return points[i], points[(i+1)%n], points[(i+2)%n]
}

// Simplify removes near-zero-area triangles and then re-merges runs of
// aligned points, in two passes (mirroring the source's own two-pass
// cleanup): first drop vertices whose local triangle area is below
// 10^-6 in magnitude, then drop vertices aligned with their neighbors
// within AlignmentEpsilon.
func (p Polygon) Simplify() Polygon {
	points := p.Points
	points = dropNearZeroAreaTriangles(points)
	points = dropAlignedPoints(points)
	return Polygon{Points: points}
}

func dropNearZeroAreaTriangles(points []Point) []Point {
	if len(points) < 3 {
		return points
	}
	var out []Point
	for i := range points {
		a, b, c := wrappingTriplet(points, i)
		tri := []Point{a, b, c}
		if math.Abs(signedArea(tri)) >= 0.000001 {
			out = append(out, b)
		}
	}
	if len(out) < 3 {
		return points
	}
	return out
}

func dropAlignedPoints(points []Point) []Point {
	if len(points) < 3 {
		return points
	}
	var out []Point
	for i := range points {
		a, b, c := wrappingTriplet(points, i)
		if !IsAligned(a, b, c) {
			out = append(out, b)
		}
	}
	if len(out) < 3 {
		return points
	}
	return out
}

// IntersectionsAtY returns the x-coordinates where the polygon boundary
// crosses the horizontal line y = height with a non-tangential crossing,
// handling the tangent-vertex special case (a vertex exactly at height)
// by checking whether its two neighbors lie on strictly opposite sides.
func (p Polygon) IntersectionsAtY(height float64) []float64 {
	points := p.Points
	n := len(points)
	if n < 3 {
		return nil
	}
	var xs []float64
	for i := 0; i < n; i++ {
		a, b, c := wrappingTriplet(points, i)
		if !almostEqual(b.Y, height) {
			// Regular edge crossing: consider edge (a,b).
			if edgeCrossesY(a, b, height) {
				seg := Segment{Start: a, End: b}
				xs = append(xs, seg.HorizontalLineIntersection(height))
			}
			continue
		}
		// b lies exactly on the line: it's a genuine crossing only if a and
		// c lie strictly on opposite sides of height.
		if (a.Y-height)*(c.Y-height) < 0 {
			xs = append(xs, b.X)
		}
	}
	return xs
}

func edgeCrossesY(a, b Point, height float64) bool {
	if almostEqual(a.Y, height) || almostEqual(b.Y, height) {
		return false
	}
	return (a.Y-height)*(b.Y-height) < 0
}

// InnerY returns a y strictly inside the polygon (the mean of the two
// smallest distinct vertex y's), or ErrFlatShape if fewer than two distinct
// y's exist.
func (p Polygon) InnerY() (float64, error) {
	y1, y2, ok := twoSmallestDistinct(p.Points)
	if !ok {
		return 0, ErrFlatShape
	}
	return (y1 + y2) / 2, nil
}

func twoSmallestDistinct(points []Point) (float64, float64, bool) {
	first := math.Inf(1)
	second := math.Inf(1)
	for _, p := range points {
		y := p.Y
		if y < first {
			second = first
			first = y
		} else if y > first && y < second {
			second = y
		}
	}
	if math.IsInf(second, 1) {
		return 0, 0, false
	}
	return first, second, true
}

// RegisterIntersections appends (x, index) crossing entries to out for
// every edge of p crossing y = height.
func (p Polygon) RegisterIntersections(out *[]Crossing, index int, height float64) {
	for _, x := range p.IntersectionsAtY(height) {
		*out = append(*out, Crossing{X: x, ShapeIndex: index})
	}
}
