package spline

import (
	"math"
	"math/bits"
)

// BinomialRow returns the binomial coefficients C(n, k) for k = 0..n.
//
// The coefficients are computed with the multiplicative formula in integer
// arithmetic; every quotient is itself a binomial coefficient, so the
// divisions are exact. Products are formed in 128 bits. It returns nil for
// negative n and for rows whose largest coefficient does not fit in an int,
// which on 64-bit platforms means n > 66.
func BinomialRow(n int) []int {
	if n < 0 {
		return nil
	}
	row := make([]int, n+1)
	row[0] = 1
	for k := 1; k <= n; k++ {
		hi, lo := bits.Mul64(uint64(row[k-1]), uint64(n-k+1))
		if hi >= uint64(k) {
			return nil
		}
		q, _ := bits.Div64(hi, lo, uint64(k))
		if q > math.MaxInt {
			return nil
		}
		row[k] = int(q)
	}
	return row
}

// binomialFloats returns the row of BinomialRow as float64. Rows too large
// for int are computed in floating point, where they are accurate to a few
// ulps.
func binomialFloats(n int) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n+1)
	if row := BinomialRow(n); row != nil {
		for k, c := range row {
			out[k] = float64(c)
		}
		return out
	}
	out[0] = 1
	for k := 1; k <= n; k++ {
		out[k] = out[k-1] * float64(n-k+1) / float64(k)
	}
	return out
}

// BernsteinWeights computes the unscaled Bernstein weights tⁱ(1−t)ⁿ⁻ⁱ for
// i = 0..n and returns them in dst, which is grown as needed.
//
// The weights still lack their binomial factor. They are computed with a
// forward pass accumulating powers of t followed by a backward pass
// multiplying in powers of 1−t. This is cheaper than de Casteljau's
// algorithm but loses some precision near t = 0 and t = 1 for high degrees.
func BernsteinWeights(t float64, n int, dst []float64) []float64 {
	if n < 0 {
		return dst[:0]
	}
	if cap(dst) < n+1 {
		dst = make([]float64, n+1)
	}
	dst = dst[:n+1]
	v := 1.0
	dst[0] = 1
	for i := 1; i <= n; i++ {
		v *= t
		dst[i] = v
	}
	mt := 1 - t
	v = 1
	for i := n - 1; i >= 0; i-- {
		v *= mt
		dst[i] *= v
	}
	return dst
}
