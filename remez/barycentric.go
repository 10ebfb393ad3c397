package remez

import (
	"math"

	"github.com/cwbudde/algo-remez/remez/band"
)

// f64 implements arith over float64. FMA maps to math.FMA, so the
// numerator accumulations round once per term.
type f64 struct{}

func (f64) FromFloat(v float64) float64   { return v }
func (f64) Copy(x float64) float64        { return x }
func (f64) Add(x, y float64) float64      { return x + y }
func (f64) Sub(x, y float64) float64      { return x - y }
func (f64) Mul(x, y float64) float64      { return x * y }
func (f64) Quo(x, y float64) float64      { return x / y }
func (f64) Neg(x float64) float64         { return -x }
func (f64) FMA(x, y, acc float64) float64 { return math.FMA(x, y, acc) }
func (f64) Eq(x, y float64) bool          { return x == y }

func lookupFunc(bands []band.Band) ideal[float64] {
	return func(x float64) (float64, float64) { return band.Ideal(x, bands) }
}

// Weights computes the barycentric interpolation weights for the ordered
// node set x. Nodes must be strictly distinct; coincident nodes produce
// non-finite weights, which is the documented degeneracy surface rather
// than an error.
func Weights(x []float64) []float64 {
	return weights(f64{}, x)
}

// Delta computes the uniform reference error for the node set x,
// recomputing the barycentric weights internally. Use [DeltaFromWeights]
// when the weights are already known.
func Delta(x []float64, bands []band.Band) float64 {
	return DeltaFromWeights(Weights(x), x, bands)
}

// DeltaFromWeights computes the uniform reference error for the node set x
// with its precomputed weight vector w, avoiding the weight recomputation.
func DeltaFromWeights(w, x []float64, bands []band.Band) float64 {
	return delta(f64{}, w, x, lookupFunc(bands))
}

// Response samples the values the interpolant must take at the reference
// nodes to realize a uniform ripple of magnitude delta, alternating in
// sign across consecutive nodes.
func Response(delta float64, x []float64, bands []band.Band) []float64 {
	return response(f64{}, delta, x, lookupFunc(bands))
}

// Approx evaluates the barycentric rational interpolant at the query
// coordinate at, given the index-aligned nodes x, response values c and
// weights w. Querying exactly at a reference node returns the stored
// response value bit for bit; the node comparison is exact, not
// tolerance-based.
func Approx(at float64, x, c, w []float64) float64 {
	return approx(f64{}, at, x, c, w)
}

// Error computes the signed, ideal-weighted deviation between the
// interpolant and the ideal response at the query coordinate at. Querying
// exactly at reference node i returns delta with the sign of
// the equioscillation ripple at i (+delta at even indices).
func Error(at, delta float64, x, c, w []float64, bands []band.Band) float64 {
	return errAt(f64{}, at, delta, x, c, w, lookupFunc(bands))
}
