// Package cheby provides Chebyshev node grids and series evaluation, used
// to construct reference sets and to extract filter coefficients from a
// converged design.
package cheby

import "math"

// Extrema returns the n Chebyshev extremal points cos(k*pi/(n-1)) in
// increasing order, spanning [-1, 1] inclusive. n must be >= 2. These are
// the canonical initial reference nodes for a Remez iteration.
func Extrema(n int) []float64 {
	u := make([]float64, n)
	for k := range u {
		u[k] = math.Cos(float64(n-1-k) * math.Pi / float64(n-1))
	}
	return u
}

// Roots returns the n Chebyshev roots cos((k+1/2)*pi/n) in increasing
// order, strictly inside (-1, 1). n must be >= 1.
func Roots(n int) []float64 {
	u := make([]float64, n)
	for k := range u {
		u[k] = math.Cos((float64(n-k) - 0.5) * math.Pi / float64(n))
	}
	return u
}

// Eval evaluates the Chebyshev series sum_j coeffs[j]*T_j(x) by the
// Clenshaw recurrence.
func Eval(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	var b1, b2 float64
	for j := len(coeffs) - 1; j > 0; j-- {
		b1, b2 = coeffs[j]+2*x*b1-b2, b1
	}
	return coeffs[0] + x*b1 - b2
}
