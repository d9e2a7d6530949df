package spline

import (
	"context"
	"log/slog"
)

// Bez is a Bézier segment of arbitrary degree. It passes through P0 and P1
// and is shaped by Controls, so its degree is len(Controls)+1.
type Bez struct {
	P0       Point
	P1       Point
	Controls []Point
}

// Degree returns the degree of the segment.
func (b Bez) Degree() int {
	return len(b.Controls) + 1
}

// Eval evaluates the segment at t. Evaluating many parameters is cheaper
// through [SampleCurve], which reuses its tables.
func (b Bez) Eval(t float64) Point {
	return newBezEvaluator(b.Degree()).eval(b, t)
}

func (b Bez) Start() Point {
	return b.P0
}

func (b Bez) End() Point {
	return b.P1
}

// bezEvaluator caches the binomial row of one degree and the weight table
// between evaluations.
type bezEvaluator struct {
	n        int
	binomial []float64
	weights  []float64
}

func newBezEvaluator(n int) *bezEvaluator {
	return &bezEvaluator{
		n:        n,
		binomial: binomialFloats(n),
		weights:  make([]float64, n+1),
	}
}

// eval evaluates b, which must be of degree e.n, at t. The end points carry
// no binomial factor, C(n, 0) and C(n, n) being 1.
func (e *bezEvaluator) eval(b Bez, t float64) Point {
	n := e.n
	e.weights = BernsteinWeights(t, n, e.weights)
	w := e.weights
	x := w[0]*b.P0.X + w[n]*b.P1.X
	y := w[0]*b.P0.Y + w[n]*b.P1.Y
	for i := 1; i < n; i++ {
		alpha := e.binomial[i] * w[i]
		x += alpha * b.Controls[i-1].X
		y += alpha * b.Controls[i-1].Y
	}
	return Point{X: x, Y: y}
}

// SampleCurve samples c with s in a single pass and returns the samples in
// ascending parameter order. s is reset afterwards.
func SampleCurve(c Curve, s Sampler) []Point {
	if b, ok := c.(Bez); ok {
		e := newBezEvaluator(b.Degree())
		return samplePass(func(t float64) Point { return e.eval(b, t) }, s)
	}
	return samplePass(c.Eval, s)
}

// SampleSpline samples a chain of Bézier segments joined at knots. Segment j
// runs from knots[j] to knots[j+1] and is shaped by the perPiece control
// points starting at controls[j*perPiece]; all segments thus share the
// degree perPiece+1.
//
// Every segment is sampled in its own pass over its local parameter range.
// Adjacent segments share their end point, so every segment after the first
// contributes its samples without the first one.
//
// Segments whose control points are incomplete are ignored. Fewer than two
// knots or a negative perPiece produce no samples.
func SampleSpline(knots, controls []Point, perPiece int, s Sampler) []Point {
	if len(knots) < 2 || perPiece < 0 {
		return nil
	}
	pieces := len(knots) - 1
	if perPiece > 0 {
		pieces = min(pieces, len(controls)/perPiece)
	}
	e := newBezEvaluator(perPiece + 1)
	out := make([]Point, 0, max(pieces*(s.Capacity()-1)+1, 0))
	for j := 0; j < pieces; j++ {
		b := Bez{
			P0:       knots[j],
			P1:       knots[j+1],
			Controls: controls[j*perPiece : (j+1)*perPiece],
		}
		pts := samplePass(func(t float64) Point { return e.eval(b, t) }, s)
		if j > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}

// samplePass runs one complete sampling pass.
func samplePass(eval func(t float64) Point, s Sampler) []Point {
	buf := make([]Point, 0, s.Capacity())
	for !s.Done() {
		t := s.Next()
		buf = append(buf, eval(t))
		s.Accept(buf)
	}
	out := s.Order(buf)

	l := Logger()
	if c, ok := s.(capper); ok && c.capped() {
		l.Warn("sampling pass reached sample cap",
			slog.Any("sampler", s),
			slog.Int("samples", len(out)))
	} else if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("sampling pass",
			slog.Any("sampler", s),
			slog.Int("samples", len(out)))
	}

	s.Reset()
	return out
}
