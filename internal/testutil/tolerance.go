// Package testutil provides numeric comparison helpers shared by the
// package tests.
package testutil

import (
	"math"
	"math/big"
	"testing"
)

// RequireNear fails t if got differs from want by more than eps.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or any element
// pair differs by more than eps.
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element of data is NaN or infinite.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireBigNear fails t if the big.Float got, converted to float64,
// differs from want by more than eps.
func RequireBigNear(t *testing.T, got *big.Float, want, eps float64) {
	t.Helper()
	g, _ := got.Float64()
	diff := math.Abs(g - want)
	if diff > eps || math.IsNaN(diff) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", g, want, diff, eps)
	}
}

// BigDiff returns |a - b| as a float64, computed at the larger of the two
// operand precisions.
func BigDiff(a, b *big.Float) float64 {
	prec := a.Prec()
	if b.Prec() > prec {
		prec = b.Prec()
	}
	d := new(big.Float).SetPrec(prec).Sub(a, b)
	out, _ := d.Abs(d).Float64()
	return out
}

// RequireAlternating fails t unless the signs of vals strictly alternate.
func RequireAlternating(t *testing.T, vals []float64) {
	t.Helper()
	for i := 1; i < len(vals); i++ {
		if vals[i-1]*vals[i] >= 0 {
			t.Fatalf("signs do not alternate at index %d: %v then %v", i-1, vals[i-1], vals[i])
		}
	}
}
