package geom

// HoledPocket is an outer pocket (clockwise) plus zero or more holes
// (counter-clockwise).
type HoledPocket struct {
	Outer Pocket
	Holes []Pocket
}

// NewHoledPocket builds a holed pocket, asserting the orientation
// invariant (debug builds only; see debugAssert).
func NewHoledPocket(outer Pocket, holes []Pocket) HoledPocket {
	debugAssert(outer.PolygonArea() > 0, "holed pocket outer must be clockwise")
	for _, h := range holes {
		debugAssert(h.PolygonArea() <= 0, "holed pocket hole must be counter-clockwise")
	}
	return HoledPocket{Outer: outer, Holes: holes}
}

// BuildHoledPockets groups a flat list of oriented pockets into holed
// pockets using a classifier forest, the same even/odd depth-parity rule as
// BuildHoledPolygons.
func BuildHoledPockets(pockets []Pocket, forest Forest) []HoledPocket {
	depths := buildDepths(forest.Father, forest.Roots)
	n := len(pockets)
	outerAt := make(map[int]*HoledPocket)
	for i := range pockets {
		if depths[i]%2 == 0 {
			hp := NewHoledPocket(pockets[i], nil)
			outerAt[i] = &hp
		}
	}
	for i := 0; i < n; i++ {
		if depths[i]%2 != 0 {
			father := forest.Father[i]
			if hp, ok := outerAt[father]; ok {
				hp.Holes = append(hp.Holes, pockets[i].Reverse())
			}
		}
	}
	var out []HoledPocket
	for i := 0; i < n; i++ {
		if hp, ok := outerAt[i]; ok {
			out = append(out, *hp)
		}
	}
	return out
}
