package spline

import "fmt"

// ConstantSampler produces uniformly spaced parameters, including both ends.
//
// The number of samples is quantized to a power of two: it is the largest
// 2ᵏ⁺¹ not exceeding the requested total, with k starting at the resolution
// exponent and never going below 0. A resolution of 5 and a total of 20 thus
// produce 16 samples, and any total below 4 produces 2.
type ConstantSampler struct {
	resolution int
	total      int
	effective  int
	count      int
}

// NewConstantSampler returns a sampler with the given resolution exponent
// and requested total. It panics if either is negative or the resolution is
// too large for the sample count to be representable.
func NewConstantSampler(resolution, total int) *ConstantSampler {
	if resolution < 0 || resolution > maxResolution {
		panic(fmt.Sprintf("resolution must be in [0, %d], got %d", maxResolution, resolution))
	}
	if total < 0 {
		panic(fmt.Sprintf("total must not be negative, got %d", total))
	}
	s := &ConstantSampler{resolution: resolution, total: total}
	s.setSpacing()
	return s
}

func (s *ConstantSampler) setSpacing() {
	k := s.resolution
	for {
		s.effective = 1 << (k + 1)
		if s.effective <= s.total || k <= 0 {
			break
		}
		k--
	}
}

// EffectiveTotal returns the number of samples each pass produces.
func (s *ConstantSampler) EffectiveTotal() int {
	return s.effective
}

func (s *ConstantSampler) Next() float64 {
	t := float64(s.count) / float64(s.effective-1)
	s.count++
	return t
}

func (s *ConstantSampler) Accept(samples []Point) {}

func (s *ConstantSampler) Done() bool {
	return s.count >= s.effective
}

// Order returns samples unchanged, as they are generated in ascending order.
func (s *ConstantSampler) Order(samples []Point) []Point {
	return samples
}

func (s *ConstantSampler) Reset() {
	s.count = 0
}

func (s *ConstantSampler) Capacity() int {
	return s.effective
}

func (s *ConstantSampler) SetTotal(n int) {
	s.total = n
	s.setSpacing()
}

func (s *ConstantSampler) String() string {
	return fmt.Sprintf("constant(resolution=%d, total=%d)", s.resolution, s.effective)
}
