package spline

// Line represents a line segment, the Bézier curve of degree 1.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Direction returns the unit direction from P0 to P1, or ⟨0, 1⟩ for a line
// of zero length.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

// Bez returns the line as a general Bézier segment.
func (l Line) Bez() Bez {
	return Bez{P0: l.P0, P1: l.P1}
}
