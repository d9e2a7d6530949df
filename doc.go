// Package spline evaluates Bézier curves and piecewise Bézier splines and
// turns them into point sequences suitable for drawing lines.
//
// # Curves
//
// [Bez] is a Bézier segment of arbitrary degree, evaluated with Bernstein
// weights ([BernsteinWeights]) and binomial coefficients ([BinomialRow]).
// [Line], [QuadBez] and [CubicBez] are the fixed-degree segments most
// programs deal with; they evaluate in closed form and convert to [Bez].
// All of them implement [Curve].
//
// # Sampling
//
// Which parameters of a curve get evaluated is decided by a [Sampler]. The
// package provides three:
//
//   - [ConstantSampler] evaluates a power-of-two number of uniformly spaced
//     parameters.
//   - [SpatialSampler] starts with the end points and keeps bisecting the
//     longest chord until no chord exceeds a maximum length.
//   - [CurvatureSampler] starts with the end points and the midpoint and
//     keeps bisecting the chord after the sharpest corner of the polyline
//     until every corner turns by less than a maximum angle and deviates
//     from the curve by less than a maximum distance.
//
// The adaptive samplers produce samples in bisection order, not left to
// right. They track every sampled parameter and restore ascending order at
// the end of a pass. All samplers obey a hard cap on the number of samples
// per pass, which can be changed with [Sampler.SetTotal].
//
// [SampleCurve] samples a single curve. [SampleSpline] samples a chain of
// segments joined at knots, one pass per segment, without duplicating the
// shared end points.
//
// # Splines
//
// [Spline] is an editable sequence of points. [Polyline] connects its points
// with straight lines, [BezierCurve] treats them as a single segment whose
// degree grows with every point, and [BezierSpline] groups them into
// segments of fixed degree and derives control points around shared knots
// to enforce tangent or higher continuity.
//
// # Rendering
//
// [Buffers] holds what a GPU renderer needs: the handle points, the ordered
// samples and, computed by [LineVectors], one miter-joined line vector per
// sample for extruding a line strip of constant width. All three are flat
// float32 arrays.
//
// # Logging
//
// The package logs through [log/slog]. Nothing is logged unless a logger is
// installed with [SetLogger].
package spline
