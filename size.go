package spline

import "fmt"

// Size is the extent of a drawing surface.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// IsEmpty reports whether sz has no area.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}

// Rect returns the rectangle with origin (0, 0) and size sz, shrunk by
// margin on every side.
func (sz Size) Rect(margin float64) Rect {
	return Rect{margin, margin, sz.Width - margin, sz.Height - margin}
}
