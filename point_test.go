package spline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Lerp(Pt(3, 4), 0.5), Pt(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointReflect(t *testing.T) {
	knot := Pt(3, 0)
	diff(t, Pt(4, -1), knot.Reflect(Pt(2, 1)))
	diff(t, knot, knot.Reflect(knot))
	// Reflecting twice is the identity.
	p := Pt(-1.5, 7)
	diff(t, p, knot.Reflect(knot.Reflect(p)))
}

func TestVecNormalize(t *testing.T) {
	diff(t, Vec(0, 1), Vec(0, 0).Normalize())
	diff(t, Vec(0.6, 0.8), Vec(3, 4).Normalize(), cmpopts.EquateApprox(0, 1e-15))
}

func TestVecTurnAngle(t *testing.T) {
	tests := []struct {
		in, out Vec2
		want    float64
	}{
		{Vec(1, 0), Vec(1, 0), 0},
		{Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{Vec(1, 0), Vec(0, -1), math.Pi / 2},
		{Vec(1, 0), Vec(-1, 0), math.Pi},
		{Vec(1, 1), Vec(-1, 1), math.Pi / 2},
		// Crossing the ±π seam must not produce an angle above π.
		{Vec(-1, 0.1), Vec(-1, -0.1), 2 * math.Atan(0.1)},
		// Zero vectors point along ⟨1, 0⟩.
		{Vec(0, 0), Vec(1, 0), 0},
		{Vec(0, 0), Vec(0, 1), math.Pi / 2},
	}
	for _, tt := range tests {
		got := tt.in.TurnAngle(tt.out)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s → %s: got angle %v, want %v", tt.in, tt.out, got, tt.want)
		}
		if back := tt.out.TurnAngle(tt.in); math.Abs(back-got) > 1e-12 {
			t.Errorf("%s → %s: angle not symmetric, %v vs %v", tt.in, tt.out, got, back)
		}
	}
}
