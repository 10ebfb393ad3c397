package taps

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-remez/cheby"
	"github.com/cwbudde/algo-remez/remez"
)

var (
	ErrInvalidDegree  = errors.New("taps: degree must be >= 1")
	ErrShortReference = errors.New("taps: reference needs at least 2 nodes")
	ErrNoTaps         = errors.New("taps: empty tap set")
)

// FromReference folds the barycentric interpolant described by the
// reference nodes x, response values c and weights w (index-aligned, as
// produced by the remez package) into the 2*degree+1 coefficients of a
// symmetric, type I linear-phase FIR filter.
//
// The interpolant is sampled at the degree+1 Chebyshev extremal points,
// projected onto the Chebyshev basis, and the series is folded around the
// center tap: h[degree] = a_0 and h[degree±j] = a_j/2.
func FromReference(x, c, w []float64, degree int) ([]float64, error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}
	if len(x) < 2 {
		return nil, ErrShortReference
	}

	m := degree
	grid := cheby.Extrema(m + 1)
	g := make([]float64, m+1)
	for k, pt := range grid {
		g[k] = remez.Approx(pt, x, c, w)
	}

	// Chebyshev projection on the extremal grid:
	// a_j = (2/m) * sum''_k g(cos(k*pi/m)) * cos(pi*j*k/m),
	// where '' halves the k = 0 and k = m terms; a_0 and a_m are halved
	// once more. grid is in increasing order, so g[m-k] is the sample at
	// angle k*pi/m.
	a := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		var s float64
		for k := 0; k <= m; k++ {
			term := g[m-k] * math.Cos(math.Pi*float64(j*k)/float64(m))
			if k == 0 || k == m {
				term *= 0.5
			}
			s += term
		}
		a[j] = 2 * s / float64(m)
	}
	a[0] *= 0.5
	a[m] *= 0.5

	h := make([]float64, 2*m+1)
	h[m] = a[0]
	for j := 1; j <= m; j++ {
		h[m-j] = 0.5 * a[j]
		h[m+j] = 0.5 * a[j]
	}
	return h, nil
}
