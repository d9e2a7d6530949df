package spline

import (
	"fmt"
	"math"

	"github.com/google/btree"
)

// SpatialSampler refines a curve until no chord between adjacent samples is
// longer than a threshold, or until a sample cap is reached.
//
// The first two samples are the end points. After that, the longest chord
// exceeding the threshold is bisected in parameter space, one sample at a
// time. Samples are therefore generated in bisection order and Order must be
// used to obtain the polyline.
type SpatialSampler struct {
	maxLengthSquared float64
	maxTotal         int

	t     float64
	count int
	done  bool
	index paramIndex
	// lengths holds the squared length of every chord above the threshold,
	// keyed by the chord's lower parameter.
	lengths *btree.BTreeG[scoreItem]
	// relength is the lower parameter of the most recently bisected chord.
	relength float64
}

// NewSpatialSampler returns a sampler that bisects chords longer than
// maxLength, producing at most maxTotal samples per pass. It panics if
// maxLength is negative or NaN, or if maxTotal is negative.
func NewSpatialSampler(maxLength float64, maxTotal int) *SpatialSampler {
	if !(maxLength >= 0) {
		panic(fmt.Sprintf("max length must not be negative, got %g", maxLength))
	}
	if maxTotal < 0 {
		panic(fmt.Sprintf("max total must not be negative, got %d", maxTotal))
	}
	return &SpatialSampler{
		maxLengthSquared: maxLength * maxLength,
		maxTotal:         maxTotal,
		index:            newParamIndex(),
		lengths:          newScoreQueue(),
	}
}

func (s *SpatialSampler) Next() float64 {
	s.index.insert(s.t, s.count)
	s.count++
	return s.t
}

func (s *SpatialSampler) Accept(samples []Point) {
	s.done = true

	switch s.index.len() {
	case 1:
		s.t, s.done = 1, false
		return
	case 2:
		lo, _ := s.index.min()
		hi, _ := s.index.next(lo.t)
		s.enqueue(samples, lo, hi)
	default:
		// The newest sample split [relength, hi] into two chords.
		lo, _ := s.index.get(s.relength)
		mid, _ := s.index.next(lo.t)
		hi, _ := s.index.next(mid.t)
		s.enqueue(samples, lo, mid)
		s.enqueue(samples, mid, hi)
	}

	if s.count >= s.maxTotal {
		return
	}
	for {
		top, ok := s.lengths.DeleteMax()
		if !ok {
			return
		}
		hi, _ := s.index.next(top.t)
		m, ok := bisect(top.t, hi.t)
		if !ok {
			continue
		}
		s.relength = top.t
		s.t = m
		s.done = false
		return
	}
}

func (s *SpatialSampler) enqueue(samples []Point, lo, hi paramItem) {
	l := samples[lo.gen].DistanceSquared(samples[hi.gen])
	if l > s.maxLengthSquared {
		s.lengths.ReplaceOrInsert(scoreItem{score: l, t: lo.t})
	}
}

func (s *SpatialSampler) Done() bool {
	return s.done || s.count >= s.maxTotal
}

func (s *SpatialSampler) Order(samples []Point) []Point {
	return s.index.order(samples)
}

func (s *SpatialSampler) Reset() {
	s.t = 0
	s.count = 0
	s.done = false
	s.relength = 0
	s.index.clear()
	s.lengths.Clear(true)
}

func (s *SpatialSampler) Capacity() int {
	return 2
}

func (s *SpatialSampler) SetTotal(n int) {
	s.maxTotal = n
}

func (s *SpatialSampler) capped() bool {
	return s.count >= s.maxTotal && (s.index.len() < 2 || s.lengths.Len() > 0)
}

func (s *SpatialSampler) String() string {
	return fmt.Sprintf("spatial(maxLength=%g, maxTotal=%d)", math.Sqrt(s.maxLengthSquared), s.maxTotal)
}
