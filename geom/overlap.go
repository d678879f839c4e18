package geom

import "sort"

// lineKeyOf identifies the infinite support line of a segment for overlap
// grouping.
type lineKeyOf struct {
	angle FloatKey
	coord FloatKey
}

func resolveOverlaps(segments []Segment, parity bool) []Segment {
	angles := NewAngleHash(1e-6)
	coords := NewCoordinatesHash(1e-6)

	type tally struct {
		points map[Point]int
		order  Vector // a representative direction to sort points along
	}
	lines := make(map[lineKeyOf]*tally)

	for _, s := range segments {
		a, c := s.LineKey(angles, coords)
		key := lineKeyOf{angle: a, coord: c}
		t, ok := lines[key]
		if !ok {
			t = &tally{points: make(map[Point]int), order: s.Vector()}
			lines[key] = t
		}
		p1, p2 := s.OrderedPoints()
		if parity {
			t.points[p1]++
			t.points[p2]++
		} else if s.Start.Equal(p1) {
			t.points[p1]++
			t.points[p2]--
		} else {
			t.points[p1]--
			t.points[p2]++
		}
	}

	var out []Segment
	for _, t := range lines {
		points := make([]Point, 0, len(t.points))
		for p := range t.points {
			points = append(points, p)
		}
		// Sort along the line's support direction: project onto `order`.
		proj := func(p Point) float64 { return p.X*t.order.X + p.Y*t.order.Y }
		sort.Slice(points, func(i, j int) bool { return proj(points[i]) < proj(points[j]) })

		running := 0
		var openPoint Point
		open := false
		for _, p := range points {
			delta := t.points[p]
			before := running
			running += delta
			isOpenBefore := openState(before, parity)
			isOpenAfter := openState(running, parity)
			if !isOpenBefore && isOpenAfter {
				openPoint = p
				open = true
			} else if isOpenBefore && !isOpenAfter && open {
				if seg, err := NewSegment(openPoint, p); err == nil {
					out = append(out, seg)
				}
				open = false
			}
		}
	}
	return out
}

func openState(count int, parity bool) bool {
	if parity {
		return count%2 != 0
	}
	return count != 0
}

// ResolveOverlapsCounting collapses collinear segments per support line
// into a minimal cover, respecting orientation: antiparallel duplicates
// cancel (a forward and backward copy of the same stretch sum to zero
// multiplicity and vanish).
func ResolveOverlapsCounting(segments []Segment) []Segment {
	return resolveOverlaps(segments, false)
}

// ResolveOverlapsParity collapses collinear segments using "count mod 2" as
// the open/close predicate, ignoring orientation.
func ResolveOverlapsParity(segments []Segment) []Segment {
	return resolveOverlaps(segments, true)
}
