package geom

// HoledPolygon is an outer face (clockwise) plus zero or more holes
// (counter-clockwise).
type HoledPolygon struct {
	Outer Polygon
	Holes []Polygon
}

// NewHoledPolygon builds a holed polygon, asserting the orientation
// invariant (debug builds only; see debugAssert).
func NewHoledPolygon(outer Polygon, holes []Polygon) HoledPolygon {
	debugAssert(outer.IsClockwise(), "holed polygon outer must be clockwise")
	for _, h := range holes {
		debugAssert(!h.IsClockwise(), "holed polygon hole must be counter-clockwise")
	}
	return HoledPolygon{Outer: outer, Holes: holes}
}

// buildDepths computes each node's DFS depth from its forest root,
// asserting (debug builds only) that no node's depth is set twice.
func buildDepths(father []int, roots []int) []int {
	n := len(father)
	children := make([][]int, n)
	for i, f := range father {
		if f != i {
			children[f] = append(children[f], i)
		}
	}
	depths := make([]int, n)
	for i := range depths {
		depths[i] = -1
	}
	var setDepth func(node, depth int)
	setDepth = func(node, depth int) {
		debugAssert(depths[node] == -1, "depth of node %d set twice in DFS", node)
		depths[node] = depth
		for _, c := range children[node] {
			setDepth(c, depth+1)
		}
	}
	for _, r := range roots {
		setDepth(r, 0)
	}
	return depths
}

// BuildHoledPolygons groups a flat list of oriented faces into holed
// polygons, using the classifier forest: even-depth faces become outers,
// odd-depth faces become holes of their immediate father, reversed so the
// final assembly has clockwise outers and counter-clockwise holes.
func BuildHoledPolygons(polygons []Polygon, forest Forest) []HoledPolygon {
	depths := buildDepths(forest.Father, forest.Roots)
	n := len(polygons)
	outerAt := make(map[int]*HoledPolygon)
	for i := range polygons {
		if depths[i]%2 == 0 {
			hp := NewHoledPolygon(polygons[i], nil)
			outerAt[i] = &hp
		}
	}
	for i := 0; i < n; i++ {
		if depths[i]%2 != 0 {
			father := forest.Father[i]
			if hp, ok := outerAt[father]; ok {
				hp.Holes = append(hp.Holes, polygons[i].Reverse())
			}
		}
	}
	var out []HoledPolygon
	for i := 0; i < n; i++ {
		if hp, ok := outerAt[i]; ok {
			out = append(out, *hp)
		}
	}
	return out
}
