package geom

import (
	"math"
	"sort"
)

// segmentEdge is a directed edge used by BuildPolygons, carrying enough to
// sort by angle pair and to be consumed once per walk.
type segmentEdge struct {
	seg  Segment
	used bool
}

// BuildPolygons turns an unordered set of oriented segments with canonical
// endpoints into a set of simple clockwise faces, by walking the planar
// embedding with angular neighbor selection. Each input segment is added in
// both directions so either face side can be followed. Faces with
// non-positive area, or whose absolute polygonalized area is below 1e-5,
// are discarded.
func BuildPolygons(segments []Segment) []Polygon {
	type outgoing struct {
		edge *segmentEdge
	}
	adjacency := make(map[Point][]outgoing)
	var edges []*segmentEdge

	addDirected := func(seg Segment) *segmentEdge {
		e := &segmentEdge{seg: seg}
		edges = append(edges, e)
		return e
	}
	for _, s := range segments {
		addDirected(s)
		addDirected(s.Reverse())
	}
	for _, e := range edges {
		adjacency[e.seg.Start] = append(adjacency[e.seg.Start], outgoing{edge: e})
	}
	for v, list := range adjacency {
		sort.Slice(list, func(i, j int) bool {
			return FromSegment(list[i].edge.seg).StartPair().Less(FromSegment(list[j].edge.seg).StartPair())
		})
		adjacency[v] = list
	}

	findNext := func(arrivalPair AnglePair, atVertex Point) *segmentEdge {
		list := adjacency[atVertex]
		if len(list) == 0 {
			return nil
		}
		// idx is the lower-bound position of arrivalPair itself: since every
		// segment is added in both directions, this is always an exact match
		// on the reverse of the edge we just walked in on. Start scanning
		// one past it so we don't immediately backtrack.
		idx := sort.Search(len(list), func(i int) bool {
			return !FromSegment(list[i].edge.seg).StartPair().Less(arrivalPair)
		})
		n := len(list)
		for k := 1; k <= n; k++ {
			cand := list[(idx+k)%n]
			if !cand.edge.used {
				return cand.edge
			}
		}
		return nil
	}

	var polygons []Polygon
	for _, start := range edges {
		if start.used {
			continue
		}
		points := []Point{start.seg.Start}
		current := start
		current.used = true
		startVertex := start.seg.Start
		for {
			arrivalPair := FromSegment(current.seg).EndPair()
			atVertex := current.seg.End
			points = append(points, atVertex)
			if atVertex.Equal(startVertex) {
				break
			}
			next := findNext(arrivalPair, atVertex)
			if next == nil {
				break
			}
			next.used = true
			current = next
		}
		if len(points) < 4 { // closed loop needs >=3 distinct + repeat of start
			continue
		}
		face := points[:len(points)-1]
		if math.Abs(signedArea(face)) < 0.00001 {
			continue
		}
		poly := Polygon{Points: face}
		if !poly.IsClockwise() {
			continue
		}
		polygons = append(polygons, poly.Simplify())
	}
	return polygons
}
