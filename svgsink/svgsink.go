// Package svgsink renders geometry shapes to SVG for debugging — the
// terminal "tycat" sink from the pipeline's design; not part of the core
// contract and not exercised by the test suite.
package svgsink

import (
	"fmt"
	"strings"

	"github.com/wrthold/slicegeo/geom"
)

// Shape is the debug-rendering capability: a bounding quadrant and its own
// SVG fragment.
type Shape interface {
	Quadrant() geom.Quadrant
	SVGString(color string) string
}

// Colored pairs a shape with the color it should be rendered in.
type Colored struct {
	Color string
	Shape Shape
}

// Viewer emits one SVG document per call to Render, built only from the
// shapes passed to that call; it keeps no shapes between calls. It has its own monotonically increasing filename counter
// (scoped to the instance, not a package global, per the "don't globalize"
// design note).
type Viewer struct {
	counter int
}

// NewViewer returns a fresh viewer.
func NewViewer() *Viewer {
	return &Viewer{}
}

// NextName returns "slice-N.svg" for the next call, incrementing the
// viewer's counter.
func (v *Viewer) NextName() string {
	v.counter++
	return fmt.Sprintf("slice-%d.svg", v.counter)
}

// Render builds an SVG document for the given shapes, with viewBox set to
// the union of their bounding quadrants.
func (v *Viewer) Render(shapes []Colored) string {
	q := geom.NewQuadrant()
	for _, c := range shapes {
		q.Update(c.Shape.Quadrant())
	}
	if q.MinX > q.MaxX {
		q = geom.Quadrant{}
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%f %f %f %f">`,
		q.MinX, q.MinY, q.MaxX-q.MinX, q.MaxY-q.MinY)
	b.WriteByte('\n')
	for _, c := range shapes {
		b.WriteString(c.Shape.SVGString(c.Color))
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
	return b.String()
}

// PolygonShape adapts a geom.Polygon to the Shape interface.
type PolygonShape struct {
	Polygon geom.Polygon
}

// Quadrant implements Shape.
func (p PolygonShape) Quadrant() geom.Quadrant { return p.Polygon.Quadrant() }

// SVGString implements Shape, rendering the polygon as an SVG <polygon>.
func (p PolygonShape) SVGString(color string) string {
	var pts strings.Builder
	for i, pt := range p.Polygon.Points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%f,%f", pt.X, pt.Y)
	}
	return fmt.Sprintf(`<polygon points="%s" fill="none" stroke="%s" />`, pts.String(), color)
}

// PocketShape adapts a geom.Pocket to the Shape interface, rendering arcs
// as SVG <path> elliptical-arc commands and segments as straight lines.
type PocketShape struct {
	Pocket geom.Pocket
}

// Quadrant implements Shape.
func (p PocketShape) Quadrant() geom.Quadrant { return p.Pocket.Quadrant() }

// SVGString implements Shape.
func (p PocketShape) SVGString(color string) string {
	if len(p.Pocket.Edges) == 0 {
		return ""
	}
	var d strings.Builder
	start := p.Pocket.Edges[0].Start()
	fmt.Fprintf(&d, "M %f %f ", start.X, start.Y)
	for _, e := range p.Pocket.Edges {
		end := e.End()
		if e.Kind == geom.KindArc {
			largeArc := 0
			if e.Arc.Angle() > 3.141592653589793 {
				largeArc = 1
			}
			fmt.Fprintf(&d, "A %f %f 0 %d 1 %f %f ", e.Arc.Radius, e.Arc.Radius, largeArc, end.X, end.Y)
		} else {
			fmt.Fprintf(&d, "L %f %f ", end.X, end.Y)
		}
	}
	d.WriteString("Z")
	return fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" />`, d.String(), color)
}
