package spline

import "testing"

func TestBoundingBoxOf(t *testing.T) {
	diff(t, Rect{}, BoundingBoxOf(nil))
	diff(t, Rect{1, 2, 1, 2}, BoundingBoxOf([]Point{Pt(1, 2)}))
	diff(t, Rect{-1, 0, 3, 5}, BoundingBoxOf([]Point{Pt(0, 0), Pt(3, 1), Pt(-1, 5)}))
}

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(3, 4), Pt(-1, -2))
	diff(t, Rect{-1, -2, 3, 4}, r)
	if w, h := r.Width(), r.Height(); w != 4 || h != 6 {
		t.Errorf("got size %vx%v, want 4x6", w, h)
	}
	diff(t, Pt(1, 1), r.Center())
}
