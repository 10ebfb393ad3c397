// Package band models the piecewise specification of a desired filter
// response: an ordered collection of disjoint intervals of the normalized
// design domain, each carrying an ideal amplitude function and an error
// weight function.
//
// Bands must be pairwise disjoint and collectively cover every coordinate
// the design evaluates. The lookup does not verify coverage; a point
// outside every band yields a zero amplitude and a zero weight, and the
// zero weight surfaces downstream as a non-finite reference error.
package band

import "math/big"

// Space selects the coordinate convention a band's amplitude and weight
// functions operate in.
type Space int

const (
	// Frequency passes the raw frequency coordinate to the band functions.
	Frequency Space = iota
	// Cosine passes the cosine-transformed coordinate x = cos(w), the
	// domain the barycentric kernel works in.
	Cosine
)

// Band is one interval of the normalized design domain. Start and Stop are
// inclusive bounds; Amplitude and Weight receive the band's Space together
// with the query coordinate.
type Band struct {
	Start, Stop float64
	Space       Space
	Amplitude   func(s Space, x float64) float64
	Weight      func(s Space, x float64) float64
}

// BigBand is the arbitrary-precision form of [Band].
type BigBand struct {
	Start, Stop *big.Float
	Space       Space
	Amplitude   func(s Space, x *big.Float) *big.Float
	Weight      func(s Space, x *big.Float) *big.Float
}

// Ideal returns the ideal amplitude and weight applicable at x. It scans
// bands in order and returns on the first interval with Start <= x <= Stop.
// A point outside every band returns (0, 0); coverage is the caller's
// responsibility.
func Ideal(x float64, bands []Band) (amp, weight float64) {
	for i := range bands {
		b := &bands[i]
		if x >= b.Start && x <= b.Stop {
			return b.Amplitude(b.Space, x), b.Weight(b.Space, x)
		}
	}
	return 0, 0
}

// IdealBig is the arbitrary-precision form of [Ideal].
func IdealBig(x *big.Float, bands []BigBand) (amp, weight *big.Float) {
	for i := range bands {
		b := &bands[i]
		if x.Cmp(b.Start) >= 0 && x.Cmp(b.Stop) <= 0 {
			return b.Amplitude(b.Space, x), b.Weight(b.Space, x)
		}
	}
	return new(big.Float), new(big.Float)
}

// Constant builds a band whose ideal amplitude and weight are constant over
// the interval, the common case for pass and stop band specifications.
func Constant(start, stop, amp, weight float64) Band {
	return Band{
		Start:     start,
		Stop:      stop,
		Space:     Cosine,
		Amplitude: func(Space, float64) float64 { return amp },
		Weight:    func(Space, float64) float64 { return weight },
	}
}

// ConstantBig builds the arbitrary-precision form of [Constant] with all
// values stored at prec bits.
func ConstantBig(start, stop, amp, weight float64, prec uint) BigBand {
	a := new(big.Float).SetPrec(prec).SetFloat64(amp)
	w := new(big.Float).SetPrec(prec).SetFloat64(weight)
	return BigBand{
		Start:     new(big.Float).SetPrec(prec).SetFloat64(start),
		Stop:      new(big.Float).SetPrec(prec).SetFloat64(stop),
		Space:     Cosine,
		Amplitude: func(Space, *big.Float) *big.Float { return a },
		Weight:    func(Space, *big.Float) *big.Float { return w },
	}
}
