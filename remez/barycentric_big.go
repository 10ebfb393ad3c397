package remez

import (
	"math/big"

	"github.com/cwbudde/algo-remez/remez/band"
)

// DefaultPrec is the bit width the arbitrary-precision entry points use
// when the caller passes prec == 0.
const DefaultPrec = 165

// bigFloat implements arith over *big.Float at a fixed bit width. Every
// operation allocates its result at that width; operands of any precision
// are accepted and never mutated. FMA forms the product exactly at double
// width and rounds once on the add.
type bigFloat struct {
	prec uint
}

func newBigFloat(prec uint) bigFloat {
	if prec == 0 {
		prec = DefaultPrec
	}
	return bigFloat{prec: prec}
}

func (b bigFloat) alloc() *big.Float { return new(big.Float).SetPrec(b.prec) }

func (b bigFloat) FromFloat(v float64) *big.Float { return b.alloc().SetFloat64(v) }
func (b bigFloat) Copy(x *big.Float) *big.Float   { return new(big.Float).Copy(x) }
func (b bigFloat) Add(x, y *big.Float) *big.Float { return b.alloc().Add(x, y) }
func (b bigFloat) Sub(x, y *big.Float) *big.Float { return b.alloc().Sub(x, y) }
func (b bigFloat) Mul(x, y *big.Float) *big.Float { return b.alloc().Mul(x, y) }
func (b bigFloat) Quo(x, y *big.Float) *big.Float { return b.alloc().Quo(x, y) }
func (b bigFloat) Neg(x *big.Float) *big.Float    { return b.alloc().Neg(x) }

func (b bigFloat) FMA(x, y, acc *big.Float) *big.Float {
	pp := x.Prec() + y.Prec()
	if pp < 2*b.prec {
		pp = 2 * b.prec
	}
	prod := new(big.Float).SetPrec(pp).Mul(x, y)
	return b.alloc().Add(prod, acc)
}

func (b bigFloat) Eq(x, y *big.Float) bool { return x.Cmp(y) == 0 }

func lookupFuncBig(bands []band.BigBand) ideal[*big.Float] {
	return func(x *big.Float) (*big.Float, *big.Float) { return band.IdealBig(x, bands) }
}

// WeightsBig computes the barycentric interpolation weights for the
// ordered node set x at the given bit width (prec == 0 selects
// [DefaultPrec]). Every result carries exactly that precision.
func WeightsBig(x []*big.Float, prec uint) []*big.Float {
	return weights(newBigFloat(prec), x)
}

// DeltaBig computes the uniform reference error for the node set x at the
// given bit width, recomputing the barycentric weights internally.
func DeltaBig(x []*big.Float, bands []band.BigBand, prec uint) *big.Float {
	ar := newBigFloat(prec)
	return delta(ar, weights(ar, x), x, lookupFuncBig(bands))
}

// DeltaFromWeightsBig computes the uniform reference error for the node
// set x with its precomputed weight vector w at the given bit width.
func DeltaFromWeightsBig(w, x []*big.Float, bands []band.BigBand, prec uint) *big.Float {
	return delta(newBigFloat(prec), w, x, lookupFuncBig(bands))
}

// ResponseBig samples the ripple-consistent response values at the
// reference nodes at the given bit width.
func ResponseBig(delta *big.Float, x []*big.Float, bands []band.BigBand, prec uint) []*big.Float {
	return response(newBigFloat(prec), delta, x, lookupFuncBig(bands))
}

// ApproxBig evaluates the barycentric rational interpolant at the query
// coordinate at, at the given bit width.
//
// The node match uses exact comparison (Cmp == 0) independent of operand
// precisions: a node converted from float64 via SetFloat64 still matches
// exactly, but a node re-rounded through a different precision may not and
// then falls through to the general division-based formula. See the
// package notes on the precision boundary.
func ApproxBig(at *big.Float, x, c, w []*big.Float, prec uint) *big.Float {
	return approx(newBigFloat(prec), at, x, c, w)
}

// ErrorBig computes the signed, ideal-weighted deviation between the
// interpolant and the ideal response at the query coordinate at, at the
// given bit width. An exact node match returns the signed delta directly,
// as in [Error].
func ErrorBig(at, delta *big.Float, x, c, w []*big.Float, bands []band.BigBand, prec uint) *big.Float {
	return errAt(newBigFloat(prec), at, delta, x, c, w, lookupFuncBig(bands))
}
