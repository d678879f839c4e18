package geom

import "math"

// ElementaryPath is a discriminated union of Segment or Arc, dispatched by
// pattern-match on Kind rather than by subtype polymorphism.
type ElementaryPath struct {
	Kind    PathKind
	Segment Segment
	Arc     Arc
}

// PathKind discriminates an ElementaryPath's variant.
type PathKind int

const (
	// KindSegment marks an ElementaryPath holding a Segment.
	KindSegment PathKind = iota
	// KindArc marks an ElementaryPath holding an Arc.
	KindArc
)

// FromSegment wraps a Segment as an ElementaryPath.
func FromSegment(s Segment) ElementaryPath {
	return ElementaryPath{Kind: KindSegment, Segment: s}
}

// FromArc wraps an Arc as an ElementaryPath.
func FromArc(a Arc) ElementaryPath {
	return ElementaryPath{Kind: KindArc, Arc: a}
}

// Start returns the path's start point.
func (p ElementaryPath) Start() Point {
	if p.Kind == KindArc {
		return p.Arc.Start
	}
	return p.Segment.Start
}

// End returns the path's end point.
func (p ElementaryPath) End() Point {
	if p.Kind == KindArc {
		return p.Arc.End
	}
	return p.Segment.End
}

// OtherEndpoint returns whichever of Start/End is not equal to endpoint.
func (p ElementaryPath) OtherEndpoint(endpoint Point) Point {
	if p.Start().Equal(endpoint) {
		return p.End()
	}
	return p.Start()
}

// Length returns the path's length.
func (p ElementaryPath) Length() float64 {
	if p.Kind == KindArc {
		return p.Arc.Length()
	}
	return p.Segment.Length()
}

// Reverse returns the path with endpoints swapped.
func (p ElementaryPath) Reverse() ElementaryPath {
	if p.Kind == KindArc {
		return FromArc(p.Arc.Reverse())
	}
	return FromSegment(p.Segment.Reverse())
}

// SweepingAngle returns the tangent-direction angle at the path's start,
// used for ordering outgoing edges around a vertex. For an arc this is the
// tangent angle (mod π) at the start point, disambiguated from a segment
// sharing the same tangent by AnglePair's chord component.
func (p ElementaryPath) SweepingAngle() float64 {
	if p.Kind == KindArc {
		return p.Arc.TangentAngle(p.Arc.Start)
	}
	return p.Segment.SweepingAngle()
}

// ChordAngle returns the direction from Start to End in the full [-π, π]
// range, used as the tiebreaker in AnglePair.
func (p ElementaryPath) ChordAngle() float64 {
	return p.End().Sub(p.Start()).Angle()
}

// AnglePair is the (tangent-angle, chord-angle) tuple used to order edges
// leaving (or entering) a vertex; it only differs from a bare tangent angle
// for arcs, where two arcs can leave a vertex along the same tangent but
// curve to different sides.
type AnglePair struct {
	Tangent, Chord float64
}

// StartPair returns the angle pair of p as seen from its start vertex.
func (p ElementaryPath) StartPair() AnglePair {
	return AnglePair{Tangent: p.SweepingAngle(), Chord: p.ChordAngle()}
}

// EndPair returns the angle pair of p as seen from its end vertex (i.e. the
// angle pair of the reversed path).
func (p ElementaryPath) EndPair() AnglePair {
	return p.Reverse().StartPair()
}

// Less orders angle pairs for the binary-search adjacency lists used by the
// polygon and pocket builders.
func (a AnglePair) Less(o AnglePair) bool {
	if !almostEqual(a.Tangent, o.Tangent) {
		return a.Tangent < o.Tangent
	}
	return a.Chord < o.Chord
}

// SubPath returns the sub-path of p between p1 and p2, preserving type
// (Segment -> Segment, Arc -> Arc with same center/radius).
func (p ElementaryPath) SubPath(p1, p2 Point) ElementaryPath {
	if p.Kind == KindArc {
		return FromArc(p.Arc.SubPath(p1, p2))
	}
	return FromSegment(p.Segment.SubPath(p1, p2))
}

// IntersectionsWith returns the points where p and o intersect.
func (p ElementaryPath) IntersectionsWith(o ElementaryPath) []Point {
	switch {
	case p.Kind == KindSegment && o.Kind == KindSegment:
		if pt, ok := p.Segment.IntersectionWith(o.Segment); ok {
			return []Point{pt}
		}
		return nil
	case p.Kind == KindArc && o.Kind == KindArc:
		return p.Arc.IntersectionsWithArc(o.Arc)
	case p.Kind == KindArc && o.Kind == KindSegment:
		return p.Arc.IntersectionsWithSegment(o.Segment)
	default: // Segment, Arc
		return o.Arc.IntersectionsWithSegment(p.Segment)
	}
}

// ParallelPath returns the segment parallel to seg at perpendicular distance
// distance on the given side (right side when rightSide is true), with new
// endpoints snapped via rounder. Used by the offsetter to build inner
// parallel paths; ring edges are always straight (BuildPolygons never
// produces arcs), so this only ever needs to handle the Segment case.
func ParallelPath(seg Segment, distance float64, rightSide bool, rounder *PointsHash) ElementaryPath {
	direction := 1.0
	if !rightSide {
		direction = -1.0
	}
	angle := seg.Vector().Angle() + (math.Pi/2)*direction
	displacement := Polar(distance, angle)
	start := rounder.Add(seg.Start.Add(displacement))
	end := rounder.Add(seg.End.Add(displacement))
	return FromSegment(Segment{Start: start, End: end})
}
