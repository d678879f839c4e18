package geom

import (
	"math"
	"sort"
)

// pocketEntry is one adjacency-list entry at a vertex: either an outgoing
// edge (carries edgeIdx, consumable) or an arrival marker for an edge
// ending there (counted but never offered as a candidate).
type pocketEntry struct {
	pair     AnglePair
	outgoing bool
	edgeIdx  int
	consumed bool
}

// BuildPockets extracts simple oriented faces from a general planar graph
// of elementary paths (as produced by offsetting, where edges both enter
// and exit each vertex). Unlike BuildPolygons, edges are NOT added in both
// directions: each path is already oriented and used at most once.
//
// At each vertex we keep a sorted list of (angle_pair, optional outgoing
// edge) entries: an edge contributes one outgoing entry at its start vertex
// and one arrival marker at its end vertex. Arriving at v along edge e, the
// next edge is found by scanning cyclically from e's own arrival entry,
// counting +1 per (unconsumed) outgoing entry and -1 per arrival marker,
// and taking the first outgoing entry at which the running count reaches
// +1. This traces the innermost face to the right even where several
// boundaries coincide at a vertex.
func BuildPockets(paths []ElementaryPath) []Pocket {
	n := len(paths)
	if n == 0 {
		return nil
	}
	vertexList := make(map[Point][]*pocketEntry)
	outgoingEntry := make([]*pocketEntry, n)
	arrivalEntry := make([]*pocketEntry, n)

	for i, e := range paths {
		oe := &pocketEntry{pair: e.StartPair(), outgoing: true, edgeIdx: i}
		vertexList[e.Start()] = append(vertexList[e.Start()], oe)
		outgoingEntry[i] = oe

		ae := &pocketEntry{pair: e.EndPair(), outgoing: false, edgeIdx: i}
		vertexList[e.End()] = append(vertexList[e.End()], ae)
		arrivalEntry[i] = ae
	}
	for v, list := range vertexList {
		sort.SliceStable(list, func(a, b int) bool { return list[a].pair.Less(list[b].pair) })
		vertexList[v] = list
	}
	position := make(map[*pocketEntry]int)
	for _, list := range vertexList {
		for idx, e := range list {
			position[e] = idx
		}
	}

	findNext := func(edgeIdx int) (*pocketEntry, bool) {
		v := paths[edgeIdx].End()
		list := vertexList[v]
		m := len(list)
		if m == 0 {
			return nil, false
		}
		startIdx := position[arrivalEntry[edgeIdx]]
		count := 0
		for k := 1; k <= m; k++ {
			entry := list[(startIdx+k)%m]
			if entry.outgoing {
				if entry.consumed {
					continue
				}
				count++
				if count == 1 {
					return entry, true
				}
			} else {
				count--
			}
		}
		return nil, false
	}

	var pockets []Pocket
	for i := range paths {
		if outgoingEntry[i].consumed {
			continue
		}
		outgoingEntry[i].consumed = true
		faceEdges := []ElementaryPath{paths[i]}
		startVertex := paths[i].Start()
		current := i
		for {
			if paths[current].End().Equal(startVertex) {
				break
			}
			next, ok := findNext(current)
			if !ok {
				break
			}
			next.consumed = true
			faceEdges = append(faceEdges, paths[next.edgeIdx])
			current = next.edgeIdx
		}
		pocket := NewPocket(faceEdges)
		if math.Abs(pocket.PolygonArea()) < 0.00001 {
			continue
		}
		if !pocket.IsClockwise() {
			continue
		}
		pockets = append(pockets, pocket)
	}
	return pockets
}
