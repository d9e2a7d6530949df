package spline

import "testing"

func TestSize(t *testing.T) {
	sz := Sz(3.5, 4)
	diff(t, "3.5×4", sz.String())
	diff(t, Rect{1, 1, 2.5, 3}, sz.Rect(1))
	if sz.IsEmpty() || !Sz(0, 4).IsEmpty() {
		t.Error("wrong emptiness")
	}
}
