package spline

import (
	"fmt"
	"math"

	"github.com/google/btree"
)

// CurvatureSampler refines a curve at its sharpest corners until every
// corner of the polyline is adequate, or until a sample cap is reached.
//
// A corner is the interior sample where two adjacent chords meet. It is
// adequate if the turn angle between the chords is at most the maximum angle
// and the chordal deviation, sin(angle) times the length of the incoming
// chord, is at most the maximum distance.
//
// The end points are sampled first, followed by t = 0.5. Afterwards the
// inadequate corner with the largest turn angle is refined by bisecting the
// chord from the corner to its successor. Whenever a sample is inserted, the
// corners at the new sample and at both of its neighbors are re-evaluated,
// since those are the only corners whose chords changed. A corner whose
// outgoing chord has no representable midpoint left is retired.
type CurvatureSampler struct {
	maxAngle           float64
	maxDistanceSquared float64
	maxTotal           int

	t     float64
	count int
	done  bool
	index paramIndex
	// corners holds the current turn angle at every sampled parameter. End
	// points have an angle of 0 and are never eligible.
	corners *btree.BTreeG[cornerItem]
	// eligible holds the inadequate corners, ordered by angle.
	eligible *btree.BTreeG[scoreItem]
}

type cornerItem struct {
	t        float64
	angle    float64
	eligible bool
}

// NewCurvatureSampler returns a sampler that refines corners turning by more
// than maxAngleDegrees or deviating by more than maxDistance, producing at
// most maxTotal samples per pass. It panics if any argument is negative or
// NaN.
func NewCurvatureSampler(maxAngleDegrees, maxDistance float64, maxTotal int) *CurvatureSampler {
	if !(maxAngleDegrees >= 0) {
		panic(fmt.Sprintf("max angle must not be negative, got %g", maxAngleDegrees))
	}
	if !(maxDistance >= 0) {
		panic(fmt.Sprintf("max distance must not be negative, got %g", maxDistance))
	}
	if maxTotal < 0 {
		panic(fmt.Sprintf("max total must not be negative, got %d", maxTotal))
	}
	return &CurvatureSampler{
		maxAngle:           maxAngleDegrees * math.Pi / 180,
		maxDistanceSquared: maxDistance * maxDistance,
		maxTotal:           maxTotal,
		index:              newParamIndex(),
		corners: btree.NewG[cornerItem](bTreeDegree, func(a, b cornerItem) bool {
			return a.t < b.t
		}),
		eligible: newScoreQueue(),
	}
}

func (s *CurvatureSampler) Next() float64 {
	s.index.insert(s.t, s.count)
	s.count++
	return s.t
}

func (s *CurvatureSampler) Accept(samples []Point) {
	s.done = true

	switch s.index.len() {
	case 1:
		s.t, s.done = 1, false
		return
	case 2:
		s.setCorner(0, 0, false)
		s.setCorner(1, 0, false)
		s.t, s.done = 0.5, false
		return
	}

	added := s.t
	prev, _ := s.index.prev(added)
	next, _ := s.index.next(added)
	s.refresh(samples, prev.t)
	s.refresh(samples, added)
	s.refresh(samples, next.t)

	if s.count >= s.maxTotal {
		return
	}
	for {
		top, ok := s.eligible.Max()
		if !ok {
			return
		}
		n, _ := s.index.next(top.t)
		m, ok := bisect(top.t, n.t)
		if !ok {
			// The corner cannot be refined any further.
			s.setCorner(top.t, top.score, false)
			continue
		}
		s.t = m
		s.done = false
		return
	}
}

// refresh recomputes the corner at parameter t.
func (s *CurvatureSampler) refresh(samples []Point, t float64) {
	cur, _ := s.index.get(t)
	p, okp := s.index.prev(t)
	n, okn := s.index.next(t)
	if !okp || !okn {
		s.setCorner(t, 0, false)
		return
	}
	angle, adequate := s.corner(samples[p.gen], samples[cur.gen], samples[n.gen])
	s.setCorner(t, angle, !adequate)
}

func (s *CurvatureSampler) setCorner(t, angle float64, eligible bool) {
	if old, ok := s.corners.Get(cornerItem{t: t}); ok && old.eligible {
		s.eligible.Delete(scoreItem{score: old.angle, t: t})
	}
	s.corners.ReplaceOrInsert(cornerItem{t: t, angle: angle, eligible: eligible})
	if eligible {
		s.eligible.ReplaceOrInsert(scoreItem{score: angle, t: t})
	}
}

// corner returns the turn angle at b on the path a → b → c and whether the
// corner is adequate.
func (s *CurvatureSampler) corner(a, b, c Point) (angle float64, adequate bool) {
	in := b.Sub(a)
	out := c.Sub(b)
	angle = in.TurnAngle(out)
	if angle > s.maxAngle {
		return angle, false
	}
	sin := math.Sin(angle)
	return angle, sin*sin*in.Hypot2() <= s.maxDistanceSquared
}

func (s *CurvatureSampler) Done() bool {
	return s.done || s.count >= s.maxTotal
}

func (s *CurvatureSampler) Order(samples []Point) []Point {
	return s.index.order(samples)
}

func (s *CurvatureSampler) Reset() {
	s.t = 0
	s.count = 0
	s.done = false
	s.index.clear()
	s.corners.Clear(true)
	s.eligible.Clear(true)
}

func (s *CurvatureSampler) Capacity() int {
	return 2
}

func (s *CurvatureSampler) SetTotal(n int) {
	s.maxTotal = n
}

func (s *CurvatureSampler) capped() bool {
	return s.count >= s.maxTotal && (s.index.len() < 3 || s.eligible.Len() > 0)
}

func (s *CurvatureSampler) String() string {
	return fmt.Sprintf("curvature(maxAngle=%g°, maxDistance=%g, maxTotal=%d)",
		s.maxAngle*180/math.Pi, math.Sqrt(s.maxDistanceSquared), s.maxTotal)
}
