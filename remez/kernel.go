package remez

// arith is the real-number capability the kernel algorithms are written
// against, so the float64 and big.Float paths share one implementation.
// FMA must compute x*y + acc with a single rounding. Eq must be exact
// value comparison, never tolerance-based: the node short-circuits in
// approx and errAt depend on it.
type arith[R any] interface {
	FromFloat(v float64) R
	Copy(x R) R
	Add(x, y R) R
	Sub(x, y R) R
	Mul(x, y R) R
	Quo(x, y R) R
	Neg(x R) R
	FMA(x, y, acc R) R
	Eq(x, y R) bool
}

// ideal is the band lookup as seen by the kernel: the ideal amplitude and
// weight at a coordinate.
type ideal[R any] func(x R) (amp, weight R)

// referenceSign returns the equioscillation ripple sign at reference node
// i: +1 for even zero-based indices, -1 for odd. The delta denominator,
// the response sampler and the error evaluator all encode the alternation
// of consecutive error extrema through this one parity.
func referenceSign(i int) int {
	if i%2 == 0 {
		return 1
	}
	return -1
}

// weights computes the barycentric weights 1 / prod_{k!=i} 2*(x_i - x_k)
// for the node set x.
//
// The product over the other nodes is accumulated in (n-2)/15 + 1
// interleaved groups rather than straight through, which bounds the
// dynamic range of the partial products for large n. The grouping is part
// of the numerical contract and must not be reordered.
func weights[R any](ar arith[R], x []R) []R {
	n := len(x)
	step := (n-2)/15 + 1
	one := ar.FromFloat(1)
	w := make([]R, n)
	for i := range x {
		denom := ar.FromFloat(1)
		for j := 0; j < step; j++ {
			for k := j; k < n; k += step {
				if k == i {
					continue
				}
				d := ar.Sub(x[i], x[k])
				denom = ar.Mul(denom, ar.Add(d, d))
			}
		}
		w[i] = ar.Quo(one, denom)
	}
	return w
}

// delta computes the uniform reference error for the node set x with
// precomputed weights w:
//
//	delta = sum_i w_i*D_i / sum_i -sign_i * w_i/W_i
//
// where D_i, W_i are the ideal amplitude and weight at node i and sign_i
// is referenceSign(i). The numerator accumulates with fused multiply-add;
// the denominator is a plain signed sum. A near-zero denominator is not
// guarded and yields a non-finite result.
func delta[R any](ar arith[R], w, x []R, lookup ideal[R]) R {
	num := ar.FromFloat(0)
	den := ar.FromFloat(0)
	for i := range w {
		amp, wt := lookup(x[i])
		num = ar.FMA(w[i], amp, num)
		t := ar.Quo(w[i], wt)
		if referenceSign(i) > 0 {
			t = ar.Neg(t)
		}
		den = ar.Add(den, t)
	}
	return ar.Quo(num, den)
}

// response samples the values the interpolant must take at the reference
// nodes to realize a uniform ripple of magnitude dlt:
//
//	C_i = D_i + sign_i * dlt/W_i
func response[R any](ar arith[R], dlt R, x []R, lookup ideal[R]) []R {
	c := make([]R, len(x))
	for i := range x {
		amp, wt := lookup(x[i])
		t := ar.Quo(dlt, wt)
		if referenceSign(i) < 0 {
			t = ar.Neg(t)
		}
		c[i] = ar.Add(amp, t)
	}
	return c
}

// approx evaluates the second-form barycentric interpolant at q. An exact
// node match returns the stored response value: the general formula is a
// 0/0 indeterminate at the nodes themselves.
func approx[R any](ar arith[R], q R, x, c, w []R) R {
	num := ar.FromFloat(0)
	den := ar.FromFloat(0)
	for i := range x {
		if ar.Eq(q, x[i]) {
			return ar.Copy(c[i])
		}
		t := ar.Quo(w[i], ar.Sub(q, x[i]))
		num = ar.FMA(t, c[i], num)
		den = ar.Add(den, t)
	}
	return ar.Quo(num, den)
}

// errAt computes the ideal-weighted deviation of the interpolant at q:
//
//	(approx(q) - D(q)) * W(q)
//
// At a reference node the ripple is exact by construction, so the signed
// dlt is returned directly instead of re-deriving it through the general
// formula and its rounding.
func errAt[R any](ar arith[R], q, dlt R, x, c, w []R, lookup ideal[R]) R {
	for i := range x {
		if ar.Eq(q, x[i]) {
			if referenceSign(i) < 0 {
				return ar.Neg(dlt)
			}
			return ar.Copy(dlt)
		}
	}
	amp, wt := lookup(q)
	p := approx(ar, q, x, c, w)
	return ar.Mul(ar.Sub(p, amp), wt)
}
