package geom

// OffsetHoledPolygon insets a holed polygon inward by the given positive
// radius, producing the holed pockets that remain (arcs joining convex
// corners). An offset that collapses the region entirely yields an empty
// result, which is not an error.
//
// Steps (mirrors the teacher's ClipperOffset/offset.go shape, generalized
// from four join kinds down to the single "always an arc" join this domain
// uses):
//  1. Emit each ring's inner parallel paths (parallel edges + convex-corner
//     arc joins; concave corners are left open, to be clipped by step 2).
//  2. Self-intersect the full path soup and subdivide at intersections.
//  3. Rebuild pockets from the subdivided paths, discarding non-clockwise
//     or near-zero-area faces.
//  4. Classify the remaining pockets; depth-0 pockets are outers, depth-1
//     children are attached as their holes.
func OffsetHoledPolygon(hp HoledPolygon, radius float64, rounder *PointsHash) []HoledPocket {
	if radius <= 0 {
		return nil
	}
	var soup []ElementaryPath
	soup = append(soup, innerParallelPaths(hp.Outer, radius, true, rounder)...)
	for _, hole := range hp.Holes {
		soup = append(soup, innerParallelPaths(hole, radius, false, rounder)...)
	}
	if len(soup) == 0 {
		return nil
	}
	subdivided := IntersectPaths(soup, rounder)
	pockets := BuildPockets(subdivided)
	if len(pockets) == 0 {
		return nil
	}
	shapes := make([]Shape, len(pockets))
	for i, p := range pockets {
		shapes[i] = p
	}
	forest := Classify(shapes)
	return BuildHoledPockets(pockets, forest)
}

// innerParallelPaths emits the parallel-edge + arc-join boundary for one
// ring (outer, clockwise; or hole, counter-clockwise) offset inward by
// radius. The interior side is the right side of travel for a clockwise
// ring and the left side for a counter-clockwise one.
func innerParallelPaths(poly Polygon, radius float64, clockwise bool, rounder *PointsHash) []ElementaryPath {
	points := poly.Points
	n := len(points)
	if n < 3 {
		return nil
	}
	rightSide := clockwise

	var out []ElementaryPath
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		seg := Segment{Start: a, End: b}
		parallel := ParallelPath(seg, radius, rightSide, rounder)
		out = append(out, parallel)

		// Join to the next edge's parallel segment at vertex b if the
		// corner there is convex (turning the same way as the ring's own
		// orientation), with an arc centered at b. Concave corners are
		// left as a gap, clipped away by the self-intersection pass.
		c := points[(i+2)%n]
		nextSeg := Segment{Start: b, End: c}
		nextParallel := ParallelPath(nextSeg, radius, rightSide, rounder)

		if isConvexCorner(a, b, c, clockwise) {
			arcStart := parallel.End()
			arcEnd := nextParallel.Start()
			if !arcStart.Equal(arcEnd) {
				arc, err := NewArc(arcStart, arcEnd, b, radius)
				if err == nil {
					out = append(out, FromArc(arc))
				}
			}
		}
	}
	return out
}

// isConvexCorner reports whether the turn at b (from a->b to b->c) is
// convex relative to the ring's own orientation — i.e. the turning angle
// is strictly less than π, which is what makes the join arc always less
// than a half-circle per the offsetter's contract.
func isConvexCorner(a, b, c Point, clockwise bool) bool {
	v1 := b.Sub(a)
	v2 := c.Sub(b)
	cross := v1.X*v2.Y - v1.Y*v2.X
	if clockwise {
		return cross > Epsilon
	}
	return cross < -Epsilon
}
