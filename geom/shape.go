package geom

// Shape is the capability the classifier needs from a face: a y strictly
// interior to it, its bounding quadrant, and the ability to register its
// horizontal-ray crossings at a given height. Both Polygon and Pocket
// satisfy it; expressed as an interface rather than a forced class
// hierarchy, per the "shape polymorphism" design note.
type Shape interface {
	InnerY() (float64, error)
	Quadrant() Quadrant
	RegisterIntersections(out *[]Crossing, index int, height float64)
}

var (
	_ Shape = Polygon{}
	_ Shape = Pocket{}
)
