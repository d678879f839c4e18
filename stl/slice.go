package stl

import (
	"sort"

	"github.com/wrthold/slicegeo/geom"
)

// Slice is the raw segment bag cut from the mesh at one height.
type Slice struct {
	Height   float64
	Segments []geom.Segment
}

// eventKind orders same-height events: facet-end before facet-start before
// a synthesized cut, per spec.md §4.D.
type eventKind int

const (
	eventFacetEnd eventKind = iota
	eventFacetStart
	eventCut
)

type event struct {
	height float64
	kind   eventKind
	facet  int
}

// CutEventSweep performs the event-based bulk cut: emits (facet_start,
// facet_end) events per facet plus synthesized cut events at k*thickness
// for k>=1 while inside [zMin, zMax], sorts by (height, kind), and sweeps,
// producing one Slice per cut height that actually intersects a facet.
// A facet is active over the half-open range [zMin, zMax): its FacetEnd
// event sorts before a Cut event at the same height, so a cut exactly at
// a facet's top excludes it.
func CutEventSweep(facets []Facet, thickness float64, points *geom.PointsHash) []Slice {
	if thickness <= 0 {
		return nil
	}
	var events []event
	cutHeights := make(map[float64]bool)
	globalMax := 0.0
	for i, f := range facets {
		zMin, zMax := f.HeightLimits()
		events = append(events, event{height: zMin, kind: eventFacetStart, facet: i})
		events = append(events, event{height: zMax, kind: eventFacetEnd, facet: i})
		if zMax > globalMax {
			globalMax = zMax
		}
	}
	for h := thickness; h <= globalMax+thickness; h += thickness {
		events = append(events, event{height: h, kind: eventCut})
		cutHeights[h] = true
	}
	sort.SliceStable(events, func(a, b int) bool {
		if events[a].height != events[b].height {
			return events[a].height < events[b].height
		}
		return events[a].kind < events[b].kind
	})

	active := make(map[int]bool)
	var slices []Slice
	for _, ev := range events {
		switch ev.kind {
		case eventFacetStart:
			active[ev.facet] = true
		case eventFacetEnd:
			delete(active, ev.facet)
		case eventCut:
			if s := cutActive(active, facets, ev.height, points); len(s.Segments) > 0 {
				slices = append(slices, s)
			}
		}
	}
	return slices
}

func cutActive(active map[int]bool, facets []Facet, height float64, points *geom.PointsHash) Slice {
	s := Slice{Height: height}
	for i := range active {
		if seg, ok := facets[i].Intersect(height, points); ok {
			s.Segments = append(s.Segments, seg)
		}
	}
	return s
}

// CutHeightBucket performs the bucket-based bulk cut: for each facet,
// enumerate the cut heights in its z-span and bucket segments by snapped
// height. Must produce the same per-slice bags as CutEventSweep, ignoring
// order.
func CutHeightBucket(facets []Facet, thickness float64, points *geom.PointsHash) []Slice {
	if thickness <= 0 {
		return nil
	}
	buckets := make(map[float64][]geom.Segment)
	snapper := geom.NewCoordinatesHash(geom.Epsilon)
	for _, f := range facets {
		zMin, zMax := f.HeightLimits()
		// Half-open [zMin, zMax) to match CutEventSweep, where a facet's
		// FacetEnd event at its own zMax sorts before a Cut event at the
		// same height and so excludes it from that slice.
		for h := thickness; h < zMax-geom.Epsilon; h += thickness {
			if h < zMin {
				continue
			}
			if seg, ok := f.Intersect(h, points); ok {
				key := snapper.Add(h)
				buckets[key] = append(buckets[key], seg)
			}
		}
	}
	heights := make([]float64, 0, len(buckets))
	for h := range buckets {
		heights = append(heights, h)
	}
	sort.Float64s(heights)
	slices := make([]Slice, 0, len(heights))
	for _, h := range heights {
		slices = append(slices, Slice{Height: h, Segments: buckets[h]})
	}
	return slices
}
