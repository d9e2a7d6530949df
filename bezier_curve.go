package spline

import "slices"

// BezierCurve is a single Bézier segment that grows by one degree with every
// pushed point.
//
// The first point pushed is the start of the segment and the most recently
// pushed point is its end. Every point in between becomes a control point,
// in push order. Popping promotes the last control point back to being the
// end point.
type BezierCurve struct {
	// knots holds the start and, once two points were pushed, the end.
	knots    []Point
	controls []Point
}

func (bc *BezierCurve) Push(p Point) {
	if len(bc.knots) == 2 {
		bc.controls = append(bc.controls, bc.knots[1])
		bc.knots[1] = p
		return
	}
	bc.knots = append(bc.knots, p)
}

func (bc *BezierCurve) Pop() {
	switch {
	case len(bc.knots) < 2:
		bc.knots = bc.knots[:0]
	case len(bc.controls) > 0:
		last := len(bc.controls) - 1
		bc.knots[1] = bc.controls[last]
		bc.controls = bc.controls[:last]
	default:
		bc.knots = bc.knots[:1]
	}
}

func (bc *BezierCurve) Move(i int, p Point) {
	movePoint(bc, i, p)
}

func (bc *BezierCurve) Set(pts []Point) {
	bc.Clear()
	for _, p := range pts {
		bc.Push(p)
	}
}

func (bc *BezierCurve) Clear() {
	bc.knots = bc.knots[:0]
	bc.controls = bc.controls[:0]
}

func (bc *BezierCurve) Len() int {
	return len(bc.knots) + len(bc.controls)
}

func (bc *BezierCurve) Last() (Point, bool) {
	return lastOf(bc.knots)
}

func (bc *BezierCurve) Points() []Point {
	if len(bc.knots) == 0 {
		return nil
	}
	out := make([]Point, 0, bc.Len())
	out = append(out, bc.knots[0])
	out = append(out, bc.controls...)
	if len(bc.knots) == 2 {
		out = append(out, bc.knots[1])
	}
	return out
}

func (bc *BezierCurve) Knots() []Point {
	return slices.Clone(bc.knots)
}

func (bc *BezierCurve) Controls() []Point {
	return slices.Clone(bc.controls)
}

// Bez returns the current segment. It reports false until two points have
// been pushed.
func (bc *BezierCurve) Bez() (Bez, bool) {
	if len(bc.knots) < 2 {
		return Bez{}, false
	}
	return Bez{
		P0:       bc.knots[0],
		P1:       bc.knots[1],
		Controls: slices.Clone(bc.controls),
	}, true
}

// Sample samples the segment. With fewer than two points, it returns the
// points themselves.
func (bc *BezierCurve) Sample(s Sampler) []Point {
	b, ok := bc.Bez()
	if !ok {
		return bc.Points()
	}
	return SampleCurve(b, s)
}
