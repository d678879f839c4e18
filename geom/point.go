package geom

import "math"

// Epsilon is the default tolerance for geometric predicates.
const Epsilon = 1e-6

// AlignmentEpsilon gates the (looser) collinearity test used to simplify
// polygons after offsetting, where output is numerically noisy.
const AlignmentEpsilon = 2e-4

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func almostZero(a float64) bool {
	return math.Abs(a) < Epsilon
}

// Point is an ordered pair of coordinates. Points produced by a snapper are
// canonical: equality on canonical points is bit-equal.
type Point struct {
	X, Y float64
}

// Less orders points lexicographically (x, then y).
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Equal reports whether p and o are bit-equal, the equality notion for
// canonical (snapped) points.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// AlmostEqual reports whether p and o are within Epsilon on both axes.
func (p Point) AlmostEqual(o Point) bool {
	return almostEqual(p.X, o.X) && almostEqual(p.Y, o.Y)
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vector {
	return Vector{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// CenterWith returns the midpoint of p and o.
func (p Point) CenterWith(o Point) Point {
	return Point{X: (p.X + o.X) / 2, Y: (p.Y + o.Y) / 2}
}

// DistanceTo returns the Euclidean distance between p and o.
func (p Point) DistanceTo(o Point) float64 {
	return p.Sub(o).Norm()
}

// IsAligned reports whether p2 lies on the line through p1 and p3 within
// AlignmentEpsilon, using the triangle-determinant test.
func IsAligned(p1, p2, p3 Point) bool {
	v1 := p2.Sub(p1)
	v2 := p3.Sub(p1)
	det := v1.X*v2.Y - v1.Y*v2.X
	return math.Abs(det) < AlignmentEpsilon
}

// Vector is the difference of two points.
type Vector struct {
	X, Y float64
}

// Polar builds a vector of the given length pointing at angle theta.
func Polar(length, theta float64) Vector {
	return Vector{X: length * math.Cos(theta), Y: length * math.Sin(theta)}
}

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns atan2(y, x), in (-π, π].
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Perpendicular returns v rotated +π/2 (a vector perpendicular to v).
func (v Vector) Perpendicular() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Scale returns v scaled by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{X: v.X * f, Y: v.Y * f}
}

// Point3 is a 3D point, used only by the STL facade.
type Point3 struct {
	X, Y, Z float64
}

// Drop2D projects away the z coordinate.
func (p Point3) Drop2D() Point {
	return Point{X: p.X, Y: p.Y}
}

func normalizeAngle2Pi(a float64) float64 {
	const twoPi = 2 * math.Pi
	for a < 0 {
		a += twoPi
	}
	for a >= twoPi {
		a -= twoPi
	}
	return a
}
