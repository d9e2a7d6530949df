package spline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Curve describes a curve parametrized by t ∈ [0, 1]. Any Curve can be
// sampled with [SampleCurve].
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	Start() Point
	End() Point
}

var (
	_ Curve = Line{}
	_ Curve = QuadBez{}
	_ Curve = CubicBez{}
	_ Curve = Bez{}
)

// SVGOptions specifies optional settings for [PolylineSVG] and
// [WritePolylineSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// PolylineSVG converts a sequence of points to a string of SVG path commands,
// an initial move followed by one line per remaining point.
//
// See [WritePolylineSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func PolylineSVG(pts []Point, opts SVGOptions) string {
	sb := &strings.Builder{}
	WritePolylineSVG(sb, pts, opts)
	return sb.String()
}

// WritePolylineSVG converts a sequence of points to a string of SVG path
// commands and writes it to w.
func WritePolylineSVG(w io.Writer, pts []Point, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	}
	for i, pt := range pts {
		switch i {
		case 0:
			writef("M%s,%s", format(pt.X), format(pt.Y))
		default:
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
		if err != nil {
			return err
		}
	}
	return err
}
