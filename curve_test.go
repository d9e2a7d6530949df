package spline

import (
	"errors"
	"testing"
)

func TestPolylineSVG(t *testing.T) {
	pts := []Point{{0, 0}, {1, 2.5}, {1.0 / 3, -4}}
	diff(t, "M0,0 L1,2.5 L0.3333333333333333,-4", PolylineSVG(pts, SVGOptions{}))
	diff(t, "M0,0 L1,2.5 L0.33,-4", PolylineSVG(pts, SVGOptions{MaxPrecision: 2}))
	diff(t, "", PolylineSVG(nil, SVGOptions{}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestWritePolylineSVGError(t *testing.T) {
	if err := WritePolylineSVG(failingWriter{}, []Point{{0, 0}, {1, 1}}, SVGOptions{}); err == nil {
		t.Error("expected write error")
	}
}

func TestCurveEndpoints(t *testing.T) {
	curves := []Curve{
		Line{Pt(0, 0), Pt(1, 1)},
		QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)},
		CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
		Bez{P0: Pt(0, 0), P1: Pt(4, 0), Controls: []Point{{1, 1}, {2, -1}, {3, 1}}},
	}
	for _, c := range curves {
		assertNear(t, c.Eval(0), c.Start(), 1e-12)
		assertNear(t, c.Eval(1), c.End(), 1e-12)
	}
}
