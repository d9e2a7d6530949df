package spline

import "slices"

// Spline is an editable sequence of points that describes a curve.
//
// Points are addressed in the order they were pushed, which is also the
// order returned by Points. Editing operations never fail: popping or moving
// on an empty spline does nothing, and indices passed to Move are clamped.
type Spline interface {
	// Push appends a point.
	Push(p Point)
	// Pop removes the most recently pushed point.
	Pop()
	// Move replaces the point at index i. An index that is out of range
	// addresses the last point.
	Move(i int, p Point)
	// Set replaces all points, as if by Clear followed by Push for every
	// point.
	Set(pts []Point)
	Clear()
	// Len returns the number of points.
	Len() int
	// Last returns the most recently pushed point.
	Last() (Point, bool)
	// Points returns all points in push order.
	Points() []Point
	// Knots returns the points the curve passes through.
	Knots() []Point
	// Controls returns the points that shape the curve.
	Controls() []Point
	// Sample samples the curve with s and returns the ordered samples.
	Sample(s Sampler) []Point
}

var (
	_ Spline = (*Polyline)(nil)
	_ Spline = (*BezierCurve)(nil)
	_ Spline = (*BezierSpline)(nil)
)

// movePoint implements Move for splines whose Set re-derives every
// constrained point.
func movePoint(sp Spline, i int, p Point) {
	pts := sp.Points()
	if len(pts) == 0 {
		return
	}
	if i < 0 || i >= len(pts) {
		i = len(pts) - 1
	}
	pts[i] = p
	sp.Set(pts)
}

func lastOf(pts []Point) (Point, bool) {
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

// Polyline is a spline made of knots only. Its samples are its knots.
type Polyline struct {
	knots []Point
}

func (pl *Polyline) Push(p Point) {
	pl.knots = append(pl.knots, p)
}

func (pl *Polyline) Pop() {
	if len(pl.knots) > 0 {
		pl.knots = pl.knots[:len(pl.knots)-1]
	}
}

func (pl *Polyline) Move(i int, p Point) {
	if len(pl.knots) == 0 {
		return
	}
	if i < 0 || i >= len(pl.knots) {
		i = len(pl.knots) - 1
	}
	pl.knots[i] = p
}

func (pl *Polyline) Set(pts []Point) {
	pl.knots = append(pl.knots[:0], pts...)
}

func (pl *Polyline) Clear()                 { pl.knots = pl.knots[:0] }
func (pl *Polyline) Len() int               { return len(pl.knots) }
func (pl *Polyline) Last() (Point, bool)    { return lastOf(pl.knots) }
func (pl *Polyline) Points() []Point        { return slices.Clone(pl.knots) }
func (pl *Polyline) Knots() []Point         { return slices.Clone(pl.knots) }
func (pl *Polyline) Controls() []Point      { return nil }
func (pl *Polyline) Sample(Sampler) []Point { return slices.Clone(pl.knots) }
