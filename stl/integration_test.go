package stl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrthold/slicegeo/geom"
)

// unitCubeFacets builds the 12 triangles of an axis-aligned unit cube
// spanning [0,1]^3, two per face.
func unitCubeFacets() []Facet {
	corner := func(x, y, z float64) geom.Point3 { return geom.Point3{X: x, Y: y, Z: z} }
	quad := func(a, b, c, d geom.Point3) []Facet {
		return []Facet{
			{Points: [3]geom.Point3{a, b, c}},
			{Points: [3]geom.Point3{a, c, d}},
		}
	}
	var facets []Facet
	// top and bottom faces are horizontal and never cut (only the four side
	// faces matter for a z=0.5 cut); they are included for fidelity to a
	// real mesh.
	facets = append(facets, quad(corner(0, 0, 0), corner(1, 0, 0), corner(1, 1, 0), corner(0, 1, 0))...) // bottom
	facets = append(facets, quad(corner(0, 0, 1), corner(1, 0, 1), corner(1, 1, 1), corner(0, 1, 1))...) // top
	facets = append(facets, quad(corner(0, 0, 0), corner(1, 0, 0), corner(1, 0, 1), corner(0, 0, 1))...) // y=0
	facets = append(facets, quad(corner(0, 1, 0), corner(1, 1, 0), corner(1, 1, 1), corner(0, 1, 1))...) // y=1
	facets = append(facets, quad(corner(0, 0, 0), corner(0, 1, 0), corner(0, 1, 1), corner(0, 0, 1))...) // x=0
	facets = append(facets, quad(corner(1, 0, 0), corner(1, 1, 0), corner(1, 1, 1), corner(1, 0, 1))...) // x=1
	return facets
}

// TestRoundTripSliceUnitCube verifies property 8: slicing a unit cube
// aligned with the axes at z=0.5 yields a single square of side 1.
func TestRoundTripSliceUnitCube(t *testing.T) {
	facets := unitCubeFacets()
	points := geom.NewPointsHash(1e-6)

	var segs []geom.Segment
	for _, f := range facets {
		if seg, ok := f.Intersect(0.5, points); ok {
			segs = append(segs, seg)
		}
	}
	require.NotEmpty(t, segs)

	merged := geom.ResolveOverlapsCounting(segs)
	polys := geom.BuildPolygons(merged)
	require.Len(t, polys, 1)
	assert.True(t, polys[0].IsClockwise())
	assert.InDelta(t, 1.0, polys[0].Area(), 1e-6)
}

// TestBulkCutStrategiesAgree checks that the event-sweep and height-bucket
// bulk-cut strategies produce the same per-slice segment bags (ignoring
// order), as required by spec.md §4.D.
func TestBulkCutStrategiesAgree(t *testing.T) {
	facets := unitCubeFacets()

	p1 := geom.NewPointsHash(1e-6)
	sweepSlices := CutEventSweep(facets, 0.25, p1)

	p2 := geom.NewPointsHash(1e-6)
	bucketSlices := CutHeightBucket(facets, 0.25, p2)

	require.Equal(t, len(sweepSlices), len(bucketSlices))
	for i := range sweepSlices {
		assert.InDelta(t, sweepSlices[i].Height, bucketSlices[i].Height, 1e-9)
		assert.Equal(t, len(sweepSlices[i].Segments), len(bucketSlices[i].Segments))
	}
}
