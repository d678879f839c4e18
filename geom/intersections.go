package geom

import "sort"

// ComputeIntersections returns, for each path index, the list of points
// where it crosses every other path (i < j pairs only computed once, but
// appended to both paths' lists), snapped through rounder.
func ComputeIntersections(paths []ElementaryPath, rounder *PointsHash) [][]Point {
	n := len(paths)
	out := make([][]Point, n)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			pts := paths[i].IntersectionsWith(paths[j])
			for _, p := range pts {
				snapped := rounder.Add(p)
				out[i] = append(out[i], snapped)
				out[j] = append(out[j], snapped)
			}
		}
	}
	return out
}

// IntersectPaths subdivides each path at its sorted, deduplicated
// intersections (plus its own endpoints), returning the concatenation of
// all resulting sub-paths. O(N^2) in path count.
func IntersectPaths(paths []ElementaryPath, rounder *PointsHash) []ElementaryPath {
	intersections := ComputeIntersections(paths, rounder)
	var out []ElementaryPath
	for i, p := range paths {
		start := p.Start()
		pts := append([]Point(nil), intersections[i]...)
		sort.Slice(pts, func(a, b int) bool {
			return start.DistanceTo(pts[a]) < start.DistanceTo(pts[b])
		})
		seq := append([]Point{start}, pts...)
		seq = append(seq, p.End())
		seq = dedupeConsecutive(seq)
		for k := 0; k+1 < len(seq); k++ {
			out = append(out, p.SubPath(seq[k], seq[k+1]))
		}
	}
	return out
}

func dedupeConsecutive(points []Point) []Point {
	if len(points) == 0 {
		return points
	}
	out := []Point{points[0]}
	for _, p := range points[1:] {
		if !p.Equal(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}
