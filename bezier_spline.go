package spline

import (
	"fmt"
	"slices"
)

// BezierSpline is a chain of Bézier segments of equal degree with optional
// continuity constraints at the shared knots.
//
// Points are pushed in a repeating cycle: one knot followed by the degree
// control points of the segment that starts at that knot. A segment is
// complete once the following knot has been pushed. Its Bézier degree is
// therefore degree+1; a degree of 2 describes cubic segments.
//
// The continuity level C determines how many of the leading control points
// of every segment after the first are derived instead of taken from Push.
// The j-th control point of a segment is derived if j < C, by reflecting the
// matching control point of the previous segment through the shared knot.
// C = 1 yields tangent continuity, higher levels mirror further control
// points, and C = degree+1 additionally derives every knot after the second
// by reflecting the knot before the previous one. Derived points ignore the
// position passed to Push.
type BezierSpline struct {
	degree     int
	continuity int
	knots      []Point
	controls   []Point
}

// NewBezierSpline returns an empty spline with degree control points per
// segment. Continuity is clamped to degree+1. It panics if degree or
// continuity is negative.
func NewBezierSpline(degree, continuity int) *BezierSpline {
	if degree < 0 {
		panic(fmt.Sprintf("degree must not be negative, got %d", degree))
	}
	if continuity < 0 {
		panic(fmt.Sprintf("continuity must not be negative, got %d", continuity))
	}
	return &BezierSpline{
		degree:     degree,
		continuity: min(continuity, degree+1),
	}
}

// pieceCursor locates a point within the cycle of one knot followed by
// degree control points.
type pieceCursor struct {
	// piece is the index of the segment starting at the cycle's knot.
	piece int
	// inPiece is 0 for the knot and j+1 for the j-th control point.
	inPiece    int
	degree     int
	continuity int
}

func (bs *BezierSpline) cursorAt(i int) pieceCursor {
	period := bs.degree + 1
	return pieceCursor{
		piece:      i / period,
		inPiece:    i % period,
		degree:     bs.degree,
		continuity: bs.continuity,
	}
}

func (c pieceCursor) isKnot() bool {
	return c.inPiece == 0
}

// derived reports whether the point at the cursor is constrained. Knots are
// constrained from the third one onwards, control points from the second
// segment onwards.
func (c pieceCursor) derived() bool {
	if c.isKnot() {
		return c.piece >= 2 && c.continuity >= c.degree+1
	}
	return c.piece >= 1 && c.inPiece-1 < c.continuity
}

// Degree returns the number of control points per segment.
func (bs *BezierSpline) Degree() int {
	return bs.degree
}

// Continuity returns the continuity level.
func (bs *BezierSpline) Continuity() int {
	return bs.continuity
}

// SetContinuity changes the continuity level, clamped to degree+1, and
// re-derives all constrained points.
func (bs *BezierSpline) SetContinuity(c int) {
	if c < 0 {
		panic(fmt.Sprintf("continuity must not be negative, got %d", c))
	}
	bs.continuity = min(c, bs.degree+1)
	bs.Set(bs.Points())
}

// Derived reports whether the point at index i, in push order, is derived
// from other points. Moving a derived point has no effect.
func (bs *BezierSpline) Derived(i int) bool {
	if i < 0 || i >= bs.Len() {
		return false
	}
	return bs.cursorAt(i).derived()
}

func (bs *BezierSpline) Push(p Point) {
	cur := bs.cursorAt(bs.Len())
	if cur.isKnot() {
		if cur.derived() {
			n := len(bs.knots)
			p = bs.knots[n-1].Reflect(bs.knots[n-2])
		}
		bs.knots = append(bs.knots, p)
		return
	}
	if cur.derived() {
		// The j-th control point of this segment mirrors the
		// (degree-1-j)-th one of the previous segment.
		j := cur.inPiece - 1
		mirror := bs.controls[len(bs.controls)-1-2*j]
		p = bs.knots[len(bs.knots)-1].Reflect(mirror)
	}
	bs.controls = append(bs.controls, p)
}

func (bs *BezierSpline) Pop() {
	n := bs.Len()
	if n == 0 {
		return
	}
	if bs.cursorAt(n - 1).isKnot() {
		bs.knots = bs.knots[:len(bs.knots)-1]
	} else {
		bs.controls = bs.controls[:len(bs.controls)-1]
	}
}

// Move replaces the point at index i and re-derives all constrained points.
// Moving a knot carries the derived control points around it along.
func (bs *BezierSpline) Move(i int, p Point) {
	movePoint(bs, i, p)
}

func (bs *BezierSpline) Set(pts []Point) {
	bs.Clear()
	for _, p := range pts {
		bs.Push(p)
	}
}

func (bs *BezierSpline) Clear() {
	bs.knots = bs.knots[:0]
	bs.controls = bs.controls[:0]
}

func (bs *BezierSpline) Len() int {
	return len(bs.knots) + len(bs.controls)
}

func (bs *BezierSpline) Last() (Point, bool) {
	n := bs.Len()
	if n == 0 {
		return Point{}, false
	}
	if bs.cursorAt(n - 1).isKnot() {
		return bs.knots[len(bs.knots)-1], true
	}
	return bs.controls[len(bs.controls)-1], true
}

func (bs *BezierSpline) Points() []Point {
	out := make([]Point, 0, bs.Len())
	for i, k := range bs.knots {
		out = append(out, k)
		for j := 0; j < bs.degree && i*bs.degree+j < len(bs.controls); j++ {
			out = append(out, bs.controls[i*bs.degree+j])
		}
	}
	return out
}

func (bs *BezierSpline) Knots() []Point {
	return slices.Clone(bs.knots)
}

func (bs *BezierSpline) Controls() []Point {
	return slices.Clone(bs.controls)
}

// Segments returns the complete segments of the spline.
func (bs *BezierSpline) Segments() []Bez {
	if len(bs.knots) < 2 {
		return nil
	}
	n := len(bs.knots) - 1
	if bs.degree > 0 {
		n = min(n, len(bs.controls)/bs.degree)
	}
	out := make([]Bez, n)
	for j := range out {
		out[j] = Bez{
			P0:       bs.knots[j],
			P1:       bs.knots[j+1],
			Controls: slices.Clone(bs.controls[j*bs.degree : (j+1)*bs.degree]),
		}
	}
	return out
}

// Sample samples all complete segments. With fewer than two knots, it
// returns no samples.
func (bs *BezierSpline) Sample(s Sampler) []Point {
	if len(bs.knots) < 2 {
		return nil
	}
	return SampleSpline(bs.knots, bs.controls, bs.degree, s)
}
