package geom

// Pocket is an ordered cyclic sequence of elementary paths whose endpoints
// chain (edge[i].End() == edge[i+1].Start()); same orientation convention
// as Polygon (positive polygon-area approximation means clockwise).
type Pocket struct {
	Edges []ElementaryPath
}

// NewPocket builds a pocket from a chained edge sequence.
func NewPocket(edges []ElementaryPath) Pocket {
	return Pocket{Edges: append([]ElementaryPath(nil), edges...)}
}

// Quadrant returns the pocket's bounding quadrant, folded from each edge's
// own quadrant (endpoints, plus the full circle bound for arcs so a bulging
// arc isn't clipped out of its shape's bounding box).
func (pk Pocket) Quadrant() Quadrant {
	q := NewQuadrant()
	for _, e := range pk.Edges {
		q = q.Add(e.Start())
		q = q.Add(e.End())
		if e.Kind == KindArc {
			q = q.Add(Point{X: e.Arc.Center.X - e.Arc.Radius, Y: e.Arc.Center.Y - e.Arc.Radius})
			q = q.Add(Point{X: e.Arc.Center.X + e.Arc.Radius, Y: e.Arc.Center.Y + e.Arc.Radius})
		}
	}
	return q
}

// polygonApproximation flattens the pocket to a polyline (arc -> chord),
// used only for the area/orientation threshold test (§4.F: "discard faces
// whose polygonalized area ... has absolute value < 1e-5").
func (pk Pocket) polygonApproximation() []Point {
	points := make([]Point, 0, len(pk.Edges))
	for _, e := range pk.Edges {
		points = append(points, e.Start())
	}
	return points
}

// PolygonArea returns the signed area of the pocket's chord approximation.
func (pk Pocket) PolygonArea() float64 {
	return signedArea(pk.polygonApproximation())
}

// IsClockwise reports whether the pocket's approximate signed area is
// positive.
func (pk Pocket) IsClockwise() bool {
	return pk.PolygonArea() > 0
}

// Reverse returns the pocket with edge order and each edge's direction
// reversed.
func (pk Pocket) Reverse() Pocket {
	n := len(pk.Edges)
	out := make([]ElementaryPath, n)
	for i, e := range pk.Edges {
		out[n-1-i] = e.Reverse()
	}
	return Pocket{Edges: out}
}

// InnerY returns a y strictly inside the pocket (mean of the two smallest
// distinct vertex y's among its edge endpoints).
func (pk Pocket) InnerY() (float64, error) {
	points := pk.polygonApproximation()
	y1, y2, ok := twoSmallestDistinct(points)
	if !ok {
		return 0, ErrFlatShape
	}
	return (y1 + y2) / 2, nil
}

// RegisterIntersections appends (x, index) crossing entries to out for
// every edge of pk crossing y = height. Per the source's shape impl, this
// is computed by intersecting each edge against a synthetic long horizontal
// segment spanning the pocket's own quadrant (padded) at that height.
func (pk Pocket) RegisterIntersections(out *[]Crossing, index int, height float64) {
	q := pk.Quadrant()
	sweep := Segment{
		Start: Point{X: q.MinX - 0.1, Y: height},
		End:   Point{X: q.MaxX + 0.1, Y: height},
	}
	sweepPath := FromSegment(sweep)
	for _, e := range pk.Edges {
		for _, p := range e.IntersectionsWith(sweepPath) {
			if isTangentCrossing(e, p, height) {
				continue
			}
			*out = append(*out, Crossing{X: p.X, ShapeIndex: index})
		}
	}
}

// isTangentCrossing reports whether e only touches y=height without
// crossing it (e.g. an arc's topmost or bottommost point, or a segment
// endpoint lying exactly on the line without the edge crossing through).
func isTangentCrossing(e ElementaryPath, p Point, height float64) bool {
	if e.Kind == KindArc {
		return almostEqual(p.Y, e.Arc.Center.Y-e.Arc.Radius) || almostEqual(p.Y, e.Arc.Center.Y+e.Arc.Radius)
	}
	return almostEqual(e.Start().Y, height) || almostEqual(e.End().Y, height)
}

// Crossing is a single (x, shape index) horizontal-ray crossing used by the
// classifier sweep.
type Crossing struct {
	X          float64
	ShapeIndex int
}
