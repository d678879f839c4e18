package stl

import (
	"math"

	"github.com/wrthold/slicegeo/geom"
)

// Facet is a 3D triangle from the STL mesh.
type Facet struct {
	Points [3]geom.Point3
}

// HeightLimits returns the facet's (zMin, zMax).
func (f Facet) HeightLimits() (float64, float64) {
	zMin := math.Min(f.Points[0].Z, math.Min(f.Points[1].Z, f.Points[2].Z))
	zMax := math.Max(f.Points[0].Z, math.Max(f.Points[1].Z, f.Points[2].Z))
	return zMin, zMax
}

// IsHorizontal reports whether all three vertices share a z coordinate.
func (f Facet) IsHorizontal() bool {
	zMin, zMax := f.HeightLimits()
	return math.Abs(zMax-zMin) < geom.Epsilon
}

// Intersect computes the segment obtained by intersecting the facet with
// the plane z=height, if any. Each of the 3 edges is intersected with the
// plane independently (0 or 1 point each); the first pair of distinct
// resulting points forms the segment — at most one such segment exists per
// non-horizontal facet at a given height.
func (f Facet) Intersect(height float64, points *geom.PointsHash) (geom.Segment, bool) {
	if f.IsHorizontal() {
		return geom.Segment{}, false
	}
	var candidates []geom.Point
	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		if p, ok := edgeIntersection(f.Points[e[0]], f.Points[e[1]], height); ok {
			candidates = append(candidates, points.Add(p))
		}
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if !candidates[i].Equal(candidates[j]) {
				seg, err := geom.NewSegment(candidates[i], candidates[j])
				if err == nil {
					return seg, true
				}
			}
		}
	}
	return geom.Segment{}, false
}

// edgeIntersection intersects the 3D edge (start,end) with the plane
// z=height, returning the 2D point at the parameter t=(height-z0)/(z1-z0)
// if height falls within [min z, max z].
func edgeIntersection(start, end geom.Point3, height float64) (geom.Point, bool) {
	lowerZ, higherZ := start.Z, end.Z
	if lowerZ > higherZ {
		lowerZ, higherZ = higherZ, lowerZ
	}
	if height < lowerZ || height > higherZ {
		return geom.Point{}, false
	}
	if math.Abs(end.Z-start.Z) < geom.Epsilon {
		return geom.Point{}, false
	}
	alpha := (height - start.Z) / (end.Z - start.Z)
	x := start.X + alpha*(end.X-start.X)
	y := start.Y + alpha*(end.Y-start.Y)
	return geom.Point{X: x, Y: y}, true
}
