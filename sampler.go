package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/btree"
)

// A Sampler decides at which parameter values a curve is evaluated.
//
// A sampling pass repeatedly calls Next, evaluates the curve at the returned
// parameter, appends the point to a buffer and hands the whole buffer, in
// generation order, to Accept. Once Done reports true, Order returns the
// samples in ascending parameter order and Reset prepares the sampler for the
// next pass. [SampleCurve] and [SampleSpline] drive this protocol.
//
// Adaptive samplers inspect the buffer passed to Accept to pick the next
// parameter but never modify it. Samplers are not safe for concurrent use,
// and one sampler must not be used by two overlapping passes.
type Sampler interface {
	// Next returns the parameter of the next sample and records it.
	Next() float64
	// Accept informs the sampler about all samples produced so far, in
	// generation order.
	Accept(samples []Point)
	// Done reports whether the pass is complete.
	Done() bool
	// Order returns the samples of a completed pass in ascending parameter
	// order. The argument is not modified.
	Order(samples []Point) []Point
	// Reset discards all state of the current pass.
	Reset()
	// Capacity is a hint for the initial size of the sample buffer.
	Capacity() int
	// SetTotal changes the maximum number of samples per pass.
	SetTotal(n int)
}

var (
	_ Sampler = (*ConstantSampler)(nil)
	_ Sampler = (*SpatialSampler)(nil)
	_ Sampler = (*CurvatureSampler)(nil)
)

// capper is implemented by adaptive samplers, which report whether the last
// pass ended at the sample cap with refinement still pending.
type capper interface {
	capped() bool
}

// bTreeDegree is the degree of all B-trees used for sampler bookkeeping.
// Passes rarely exceed a few hundred samples.
const bTreeDegree = 8

// paramItem maps a sampled parameter to the position of its sample in the
// generation-order buffer.
type paramItem struct {
	t   float64
	gen int
}

// paramIndex is a sorted map from sampled parameter to generation index.
type paramIndex struct {
	tree *btree.BTreeG[paramItem]
}

func newParamIndex() paramIndex {
	return paramIndex{
		tree: btree.NewG[paramItem](bTreeDegree, func(a, b paramItem) bool { return a.t < b.t }),
	}
}

func (ix paramIndex) insert(t float64, gen int) {
	ix.tree.ReplaceOrInsert(paramItem{t: t, gen: gen})
}

func (ix paramIndex) get(t float64) (paramItem, bool) {
	return ix.tree.Get(paramItem{t: t})
}

func (ix paramIndex) min() (paramItem, bool) {
	return ix.tree.Min()
}

// next returns the entry with the smallest parameter greater than t.
func (ix paramIndex) next(t float64) (paramItem, bool) {
	var out paramItem
	var ok bool
	ix.tree.AscendGreaterOrEqual(paramItem{t: t}, func(it paramItem) bool {
		if it.t == t {
			return true
		}
		out, ok = it, true
		return false
	})
	return out, ok
}

// prev returns the entry with the largest parameter less than t.
func (ix paramIndex) prev(t float64) (paramItem, bool) {
	var out paramItem
	var ok bool
	ix.tree.DescendLessOrEqual(paramItem{t: t}, func(it paramItem) bool {
		if it.t == t {
			return true
		}
		out, ok = it, true
		return false
	})
	return out, ok
}

func (ix paramIndex) len() int {
	return ix.tree.Len()
}

func (ix paramIndex) clear() {
	ix.tree.Clear(true)
}

// order copies samples into ascending parameter order.
func (ix paramIndex) order(samples []Point) []Point {
	out := make([]Point, 0, ix.tree.Len())
	ix.tree.Ascend(func(it paramItem) bool {
		out = append(out, samples[it.gen])
		return true
	})
	return out
}

// scoreItem is an entry of a refinement queue. Items are ordered by score
// and then by parameter, so that on equal scores the larger parameter is
// refined first.
type scoreItem struct {
	score float64
	t     float64
}

func newScoreQueue() *btree.BTreeG[scoreItem] {
	return btree.NewG[scoreItem](bTreeDegree, func(a, b scoreItem) bool {
		if a.score != b.score {
			return a.score < b.score
		}
		return a.t < b.t
	})
}

// bisect returns the midpoint of [lo, hi], or false if no float64 lies
// strictly between them.
func bisect(lo, hi float64) (float64, bool) {
	m := (lo + hi) / 2
	if m <= lo || m >= hi {
		return 0, false
	}
	return m, true
}

// SamplerKind identifies one of the sampling strategies.
type SamplerKind int

const (
	ConstantKind SamplerKind = iota + 1
	SpatialKind
	CurvatureKind
)

func (k SamplerKind) String() string {
	switch k {
	case ConstantKind:
		return "constant"
	case SpatialKind:
		return "spatial"
	case CurvatureKind:
		return "curvature"
	default:
		return fmt.Sprintf("SamplerKind(%d)", int(k))
	}
}

// ParseSamplerKind returns the kind named s, as returned by
// [SamplerKind.String].
func ParseSamplerKind(s string) (SamplerKind, error) {
	for _, k := range []SamplerKind{ConstantKind, SpatialKind, CurvatureKind} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sampler kind %q", ErrInvalidSampler, s)
}

// ErrInvalidSampler is returned when a [SamplerConfig] cannot produce a
// sampler.
var ErrInvalidSampler = errors.New("invalid sampler configuration")

// maxResolution bounds the resolution exponent of [ConstantSampler] so that
// the effective count fits in an int on all platforms.
const maxResolution = 29

// SamplerConfig describes a sampler independently of its kind. Fields that
// do not apply to Kind are ignored.
type SamplerConfig struct {
	Kind SamplerKind

	// Resolution is the resolution exponent of the constant sampler.
	Resolution int
	// Total is the maximum number of samples per pass.
	Total int
	// MaxLength is the maximum segment length of the spatial sampler.
	MaxLength float64
	// MaxAngle is the maximum turn angle of the curvature sampler, in degrees.
	MaxAngle float64
	// MaxDistance is the maximum chordal deviation of the curvature sampler.
	MaxDistance float64
}

// Validate checks that c describes a usable sampler. Every pass needs at
// least the two end points, so Total must be at least 2.
func (c SamplerConfig) Validate() error {
	if c.Total < 2 {
		return fmt.Errorf("%w: total must be at least 2, got %d", ErrInvalidSampler, c.Total)
	}
	switch c.Kind {
	case ConstantKind:
		if c.Resolution < 0 || c.Resolution > maxResolution {
			return fmt.Errorf("%w: resolution must be in [0, %d], got %d", ErrInvalidSampler, maxResolution, c.Resolution)
		}
	case SpatialKind:
		if !(c.MaxLength > 0) || math.IsInf(c.MaxLength, 0) {
			return fmt.Errorf("%w: max length must be positive and finite, got %g", ErrInvalidSampler, c.MaxLength)
		}
	case CurvatureKind:
		if !(c.MaxAngle >= 0) || c.MaxAngle > 180 {
			return fmt.Errorf("%w: max angle must be in [0, 180], got %g", ErrInvalidSampler, c.MaxAngle)
		}
		if !(c.MaxDistance >= 0) || math.IsInf(c.MaxDistance, 0) {
			return fmt.Errorf("%w: max distance must be non-negative and finite, got %g", ErrInvalidSampler, c.MaxDistance)
		}
	default:
		return fmt.Errorf("%w: unknown sampler kind %d", ErrInvalidSampler, int(c.Kind))
	}
	return nil
}

// New validates c and returns the sampler it describes.
func (c SamplerConfig) New() (Sampler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case ConstantKind:
		return NewConstantSampler(c.Resolution, c.Total), nil
	case SpatialKind:
		return NewSpatialSampler(c.MaxLength, c.Total), nil
	case CurvatureKind:
		return NewCurvatureSampler(c.MaxAngle, c.MaxDistance, c.Total), nil
	default:
		panic("unreachable")
	}
}
