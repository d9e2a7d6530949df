// Package render draws sampled splines as SVG documents and PNG images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/vector"

	"honnef.co/go/spline"
)

// Options configures rendering.
type Options struct {
	Width   int
	Height  int
	Padding int
	// Thickness is the line width in curve units.
	Thickness float64
	// Handles draws the spline's points and their control polygon.
	Handles bool
}

// DefaultOptions returns sensible defaults for rendering.
func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    600,
		Padding:   20,
		Thickness: 0.01,
		Handles:   true,
	}
}

// Validate reports whether opts describe a drawable canvas.
func (opts Options) Validate() error {
	size := spline.Sz(float64(opts.Width), float64(opts.Height))
	if size.IsEmpty() {
		return fmt.Errorf("invalid canvas size %s", size)
	}
	if opts.Padding < 0 {
		return fmt.Errorf("invalid padding %d", opts.Padding)
	}
	inner := spline.Sz(float64(opts.Width-2*opts.Padding), float64(opts.Height-2*opts.Padding))
	if inner.IsEmpty() {
		return fmt.Errorf("padding %d leaves no room on a %s canvas", opts.Padding, size)
	}
	if !(opts.Thickness >= 0) || math.IsInf(opts.Thickness, 0) {
		return fmt.Errorf("invalid line thickness %g", opts.Thickness)
	}
	return nil
}

// Colors used in rendering
var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorLine       = color.RGBA{51, 51, 51, 255}    // #333
	colorHandle     = color.RGBA{21, 101, 192, 255}  // #1565c0
	colorPolygon    = color.RGBA{187, 187, 187, 255} // #bbb
)

const handleRadius = 3

// view maps curve space to image space: the samples and points are fitted
// into the canvas minus padding, with y pointing down.
type view struct {
	aff   spline.Affine
	scale float64
	size  spline.Size
}

func newView(b *spline.Buffers, opts Options) view {
	pts := append(spline.Unflatten(b.Samples), spline.Unflatten(b.Points)...)
	size := spline.Sz(float64(opts.Width), float64(opts.Height))
	aff := spline.FitRect(spline.BoundingBoxOf(pts), size.Rect(float64(opts.Padding)))
	aff = spline.Translate(spline.Vec(0, size.Height)).Mul(spline.FlipY).Mul(aff)
	return view{
		aff:   aff,
		scale: math.Sqrt(math.Abs(aff.Determinant())),
		size:  size,
	}
}

func (v view) points(src []float32) []spline.Point {
	pts := spline.Unflatten(src)
	for i, pt := range pts {
		pts[i] = pt.Transform(v.aff)
	}
	return pts
}

// handles returns the control polygon as image space segments, each running
// from a point along its handle vector.
func (v view) handles(b *spline.Buffers) [][2]spline.Point {
	pts := spline.Unflatten(b.Points)
	out := make([][2]spline.Point, 0, len(b.Handles)/2)
	for i := 0; i+2 <= len(b.Handles) && i/2 < len(pts); i += 2 {
		p := pts[i/2]
		h := spline.Vec(float64(b.Handles[i]), float64(b.Handles[i+1]))
		out = append(out, [2]spline.Point{p.Transform(v.aff), p.Translate(h).Transform(v.aff)})
	}
	return out
}

func (v view) lineWidth(opts Options) float64 {
	return max(opts.Thickness*v.scale, 1)
}

// SVG writes b as a standalone SVG document.
func SVG(w io.Writer, b *spline.Buffers, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	v := newView(b, opts)
	var err error
	writef := func(s string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, args...)
	}
	svgOpts := spline.SVGOptions{MaxPrecision: 3}

	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	writef(`<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(colorBackground))
	if opts.Handles && len(b.Handles) >= 2 {
		var d strings.Builder
		for i, seg := range v.handles(b) {
			if i > 0 {
				d.WriteByte(' ')
			}
			spline.WritePolylineSVG(&d, seg[:], svgOpts)
		}
		writef(`<path d="%s" fill="none" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
			d.String(), hex(colorPolygon))
	}
	if len(b.Samples) >= 4 {
		writef(`<path d="%s" fill="none" stroke="%s" stroke-width="%.3g" stroke-linejoin="miter"/>`+"\n",
			spline.PolylineSVG(v.points(b.Samples), svgOpts), hex(colorLine), v.lineWidth(opts))
	}
	if opts.Handles {
		for _, pt := range v.points(b.Points) {
			writef(`<circle cx="%.3f" cy="%.3f" r="%d" fill="%s"/>`+"\n", pt.X, pt.Y, handleRadius, hex(colorHandle))
		}
	}
	writef("</svg>\n")
	return err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Rasterize draws b into a new image. The line is drawn as one quad per
// segment, extruded along the line vectors of its end points. opts must be
// valid.
func Rasterize(b *spline.Buffers, opts Options) *image.RGBA {
	v := newView(b, opts)
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	ras := vector.NewRasterizer(opts.Width, opts.Height)
	ras.DrawOp = draw.Over

	if opts.Handles {
		for _, seg := range v.handles(b) {
			d := seg[1].Sub(seg[0]).Normalize()
			n := spline.Vec(-d.Y, d.X).Mul(0.5)
			quad(ras, seg[0], seg[1], n, n)
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(colorPolygon), image.Point{})
		ras.Reset(opts.Width, opts.Height)
	}

	// Line vectors are in curve space; the view flips y and scales
	// uniformly, so only the y component changes sign.
	samples := v.points(b.Samples)
	half := v.lineWidth(opts) / 2
	for i := 1; i < len(samples); i++ {
		v0 := spline.Vec(float64(b.Vectors[2*i-2]), -float64(b.Vectors[2*i-1]))
		v1 := spline.Vec(float64(b.Vectors[2*i]), -float64(b.Vectors[2*i+1]))
		quad(ras, samples[i-1], samples[i],
			spline.Vec(-v0.Y, v0.X).Mul(half),
			spline.Vec(-v1.Y, v1.X).Mul(half))
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(colorLine), image.Point{})

	if opts.Handles {
		ras.Reset(opts.Width, opts.Height)
		for _, pt := range v.points(b.Points) {
			r := float32(handleRadius)
			x, y := float32(pt.X), float32(pt.Y)
			ras.MoveTo(x-r, y-r)
			ras.LineTo(x+r, y-r)
			ras.LineTo(x+r, y+r)
			ras.LineTo(x-r, y+r)
			ras.ClosePath()
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(colorHandle), image.Point{})
	}
	return img
}

// quad adds the quadrilateral around the segment p0 → p1 that extends by n0
// at p0 and by n1 at p1 to either side.
func quad(ras *vector.Rasterizer, p0, p1 spline.Point, n0, n1 spline.Vec2) {
	ras.MoveTo(float32(p0.X+n0.X), float32(p0.Y+n0.Y))
	ras.LineTo(float32(p1.X+n1.X), float32(p1.Y+n1.Y))
	ras.LineTo(float32(p1.X-n1.X), float32(p1.Y-n1.Y))
	ras.LineTo(float32(p0.X-n0.X), float32(p0.Y-n0.Y))
	ras.ClosePath()
}

// PNG writes b as a PNG image.
func PNG(w io.Writer, b *spline.Buffers, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return png.Encode(w, Rasterize(b, opts))
}
