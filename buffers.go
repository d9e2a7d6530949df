package spline

import "github.com/chewxy/math32"

// Buffers holds the flat, single-precision arrays a renderer uploads to
// the GPU. All arrays interleave x and y.
type Buffers struct {
	// Points are the spline's points in push order, for drawing handles.
	Points []float32
	// Handles holds the vector from every point to the next, see
	// [PointVectors]. Drawn from their points, they form the control
	// polygon.
	Handles []float32
	// Samples are the ordered samples of the curve.
	Samples []float32
	// Vectors holds one line vector per sample, see [LineVectors].
	Vectors []float32
}

// SetPoints replaces the handle points and their handle vectors.
func (b *Buffers) SetPoints(pts []Point) {
	b.Points = Flatten(pts)
	b.Handles = PointVectors(b.Points, 1)
}

// SetSamples replaces the samples and recomputes their line vectors.
func (b *Buffers) SetSamples(samples []Point) {
	b.Samples = Flatten(samples)
	b.Vectors = LineVectors(b.Samples)
}

// Update samples sp with s and replaces all buffers.
func (b *Buffers) Update(sp Spline, s Sampler) {
	b.SetPoints(sp.Points())
	b.SetSamples(sp.Sample(s))
}

// Segments returns the number of line segments described by Samples.
func (b *Buffers) Segments() int {
	return max(len(b.Samples)/2-1, 0)
}

// Flatten converts points to an interleaved x, y array.
func Flatten(pts []Point) []float32 {
	out := make([]float32, 0, len(pts)*2)
	for _, pt := range pts {
		out = append(out, float32(pt.X), float32(pt.Y))
	}
	return out
}

// Unflatten converts an interleaved x, y array to points. A trailing odd
// element is ignored.
func Unflatten(src []float32) []Point {
	out := make([]Point, 0, len(src)/2)
	for i := 0; i+2 <= len(src); i += 2 {
		out = append(out, Point{X: float64(src[i]), Y: float64(src[i+1])})
	}
	return out
}

// unit32 normalizes ⟨x, y⟩, mapping the zero vector to ⟨0, 1⟩.
func unit32(x, y float32) (float32, float32) {
	l := math32.Sqrt(x*x + y*y)
	if l == 0 {
		return 0, 1
	}
	return x / l, y / l
}

// LineVectors computes a line vector for every point of the polyline src,
// an interleaved x, y array. Extruding each point perpendicular to its
// vector, by the vector's length times half the line width, yields a line
// strip of constant width.
//
// The end points use the unit direction of their only segment. Interior
// points use a miter join: the average a of the adjacent unit directions,
// scaled by 1/|d·a| where d is the incoming direction, so that both
// adjoining segments keep their full width. Zero-length segments have the
// direction ⟨0, 1⟩, and a point where the line reverses exactly uses its
// incoming direction.
//
// Polylines with fewer than two points have no line vectors.
func LineVectors(src []float32) []float32 {
	n := len(src) / 2
	if n < 2 {
		return nil
	}
	out := make([]float32, 0, n*2)
	x1, y1 := unit32(src[2]-src[0], src[3]-src[1])
	out = append(out, x1, y1)
	for i := 2; i+3 < len(src); i += 2 {
		x0, y0 := x1, y1
		x1, y1 = unit32(src[i+2]-src[i], src[i+3]-src[i+1])

		jx := (x0 + x1) / 2
		jy := (y0 + y1) / 2
		dot := x0*jx + y0*jy
		if dot == 0 {
			out = append(out, x0, y0)
			continue
		}
		r := 1 / math32.Abs(dot)
		out = append(out, jx*r, jy*r)
	}
	out = append(out, x1, y1)
	return out
}

// PointVectors returns the vectors from every increment-th point of src to
// the point following it, for drawing handle directions. src is an
// interleaved x, y array. It panics if increment is not positive.
func PointVectors(src []float32, increment int) []float32 {
	if increment <= 0 {
		panic("increment must be positive")
	}
	step := increment * 2
	out := make([]float32, 0, len(src)/step*2)
	for i := 0; i+4 <= len(src); i += step {
		out = append(out, src[i+2]-src[i], src[i+3]-src[i+1])
	}
	return out
}
