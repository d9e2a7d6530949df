package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineVectors(t *testing.T) {
	tests := []struct {
		name string
		src  []float32
		want []float32
	}{
		{"empty", nil, nil},
		{"single point", []float32{1, 1}, nil},
		{"segment", []float32{0, 0, 2, 0}, []float32{1, 0, 1, 0}},
		{"straight", []float32{0, 0, 1, 0, 2, 0}, []float32{1, 0, 1, 0, 1, 0}},
		// The miter of a right angle is √2 long.
		{"right angle", []float32{0, 0, 1, 0, 1, 1}, []float32{1, 0, 1, 1, 0, 1}},
		{"zero length", []float32{3, 3, 3, 3}, []float32{0, 1, 0, 1}},
		{"reversal", []float32{0, 0, 1, 0, 0, 0}, []float32{1, 0, 1, 0, -1, 0}},
		{"odd trailing element", []float32{0, 0, 0, 2, 5}, []float32{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, LineVectors(tt.src), cmpopts.EquateApprox(0, 1e-6))
		})
	}
}

func TestLineVectorsKeepWidth(t *testing.T) {
	// Offsetting an interior point along the normal of its line vector
	// keeps unit distance from both adjoining segments.
	src := Flatten([]Point{{0, 0}, {2, 0}, {3, 2}})
	vec := LineVectors(src)
	nx, ny := -vec[3], vec[2]
	off := Pt(2+float64(nx), float64(ny))
	in := Line{Pt(0, 0), Pt(2, 0)}
	out := Line{Pt(2, 0), Pt(3, 2)}
	for _, l := range []Line{in, out} {
		d := l.Direction()
		dist := off.Sub(l.P0).Cross(d)
		if dist < 0 {
			dist = -dist
		}
		diff(t, 1.0, dist, cmpopts.EquateApprox(0, 1e-6))
	}
}

func TestPointVectors(t *testing.T) {
	src := []float32{0, 0, 1, 1, 2, 2, 4, 4}
	diff(t, []float32{1, 1, 1, 1, 2, 2}, PointVectors(src, 1))
	diff(t, []float32{1, 1, 2, 2}, PointVectors(src, 2))
	diff(t, []float32{1, 1}, PointVectors(src, 3))
	diff(t, []float32{}, PointVectors(src[:2], 1))

	defer func() {
		if recover() == nil {
			t.Error("PointVectors with zero increment did not panic")
		}
	}()
	PointVectors(src, 0)
}

func TestFlatten(t *testing.T) {
	pts := []Point{{0, 0.5}, {1, -2}}
	diff(t, []float32{0, 0.5, 1, -2}, Flatten(pts))
	diff(t, pts, Unflatten(Flatten(pts)))
	diff(t, []Point{{1, 2}}, Unflatten([]float32{1, 2, 3}))
}

func TestBuffersUpdate(t *testing.T) {
	var bc BezierCurve
	bc.Set([]Point{{0, 0}, {0.5, 1}, {1, 0}})

	var b Buffers
	b.Update(&bc, NewConstantSampler(3, 16))
	diff(t, []float32{0, 0, 0.5, 1, 1, 0}, b.Points)
	diff(t, []float32{0.5, 1, 0.5, -1}, b.Handles)
	if len(b.Samples) != 32 {
		t.Fatalf("got %d sample coordinates, want 32", len(b.Samples))
	}
	if len(b.Vectors) != len(b.Samples) {
		t.Errorf("got %d vector coordinates for %d sample coordinates", len(b.Vectors), len(b.Samples))
	}
	if got := b.Segments(); got != 15 {
		t.Errorf("got %d segments, want 15", got)
	}

	b.Update(&Polyline{}, NewConstantSampler(3, 16))
	if len(b.Samples) != 0 || b.Vectors != nil || b.Segments() != 0 || len(b.Handles) != 0 {
		t.Errorf("got %v, %v for an empty spline", b.Samples, b.Vectors)
	}
}
