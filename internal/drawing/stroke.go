package drawing

// Point is one sampled position of a freehand gesture, in raster
// coordinates.
type Point struct {
	X float64
	Y float64
}

// Stroke is a single completed gesture: the sampled curve plus the paint
// that was active when it was drawn. Once committed to the history both are
// frozen; only list membership changes via undo/redo.
type Stroke struct {
	points []Point
	paint  Paint
}

// NewStroke copies the points and paint so later template changes cannot
// reach back into a committed stroke.
func NewStroke(points []Point, paint Paint) Stroke {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Stroke{points: pts, paint: paint.Clone()}
}

// Points returns a copy of the stroke's curve.
func (s Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Paint returns a copy of the stroke's frozen paint.
func (s Stroke) Paint() Paint {
	return s.paint.Clone()
}

// Empty reports whether the stroke carries no geometry.
func (s Stroke) Empty() bool {
	return len(s.points) == 0
}
