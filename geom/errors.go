package geom

import "errors"

// Sentinel errors for the geometry pipeline. Callers treat the flat-shape and
// zero-length-segment errors as empty results rather than failures (the
// classifier makes a flat shape its own root, the overlap resolver drops a
// zero-length segment). Concentric circles have no error: their
// intersection is simply empty.
var (
	// ErrZeroLengthSegment is returned when a Segment is constructed with
	// coincident start and end points.
	ErrZeroLengthSegment = errors.New("geom: zero-length segment")

	// ErrDegenerateArc is returned when an Arc cannot be constructed because
	// start and end coincide.
	ErrDegenerateArc = errors.New("geom: degenerate arc")

	// ErrFlatShape is returned by InnerY when a shape has fewer than two
	// distinct vertex y-coordinates.
	ErrFlatShape = errors.New("geom: flat shape has no interior y")
)
