package band

import (
	"math"
	"math/big"
	"testing"
)

func TestIdealScansInOrder(t *testing.T) {
	bands := []Band{
		Constant(-1, -0.2, 0, 2),
		Constant(0.1, 1, 1, 1),
	}

	for _, tc := range []struct {
		x           float64
		amp, weight float64
	}{
		{-1, 0, 2},
		{-0.5, 0, 2},
		{-0.2, 0, 2}, // inclusive stop bound
		{0.1, 1, 1},  // inclusive start bound
		{0.7, 1, 1},
		{1, 1, 1},
	} {
		amp, weight := Ideal(tc.x, bands)
		if amp != tc.amp || weight != tc.weight {
			t.Fatalf("Ideal(%v) = (%v, %v), want (%v, %v)", tc.x, amp, weight, tc.amp, tc.weight)
		}
	}
}

func TestIdealUncovered(t *testing.T) {
	bands := []Band{Constant(0, 1, 1, 1)}
	amp, weight := Ideal(-0.5, bands)
	if amp != 0 || weight != 0 {
		t.Fatalf("uncovered point returned (%v, %v), want (0, 0)", amp, weight)
	}
}

func TestIdealFirstMatchWins(t *testing.T) {
	bands := []Band{
		Constant(0, 1, 1, 1),
		Constant(0, 1, 2, 3),
	}
	amp, weight := Ideal(0.5, bands)
	if amp != 1 || weight != 1 {
		t.Fatalf("overlap resolved to (%v, %v), want first band's (1, 1)", amp, weight)
	}
}

func TestIdealUsesBandFunctions(t *testing.T) {
	b := Band{
		Start: 0,
		Stop:  1,
		Space: Frequency,
		Amplitude: func(s Space, x float64) float64 {
			if s != Frequency {
				t.Fatalf("amplitude saw space %v", s)
			}
			return math.Sin(x)
		},
		Weight: func(s Space, x float64) float64 { return 2 * x },
	}
	amp, weight := Ideal(0.5, []Band{b})
	if amp != math.Sin(0.5) || weight != 1 {
		t.Fatalf("Ideal(0.5) = (%v, %v)", amp, weight)
	}
}

func TestIdealBig(t *testing.T) {
	const prec = 165
	bands := []BigBand{
		ConstantBig(-1, -0.2, 0, 2, prec),
		ConstantBig(0.1, 1, 1, 1, prec),
	}

	amp, weight := IdealBig(big.NewFloat(0.5), bands)
	if amp.Cmp(big.NewFloat(1)) != 0 || weight.Cmp(big.NewFloat(1)) != 0 {
		t.Fatalf("IdealBig(0.5) = (%v, %v), want (1, 1)", amp, weight)
	}

	amp, weight = IdealBig(big.NewFloat(0), bands)
	if amp.Sign() != 0 || weight.Sign() != 0 {
		t.Fatalf("uncovered point returned (%v, %v), want zeros", amp, weight)
	}
}

func TestConstantBigPrecision(t *testing.T) {
	b := ConstantBig(-1, 1, 0.5, 2, 300)
	if b.Start.Prec() != 300 || b.Stop.Prec() != 300 {
		t.Fatalf("bounds precision %d/%d, want 300", b.Start.Prec(), b.Stop.Prec())
	}
	amp, weight := IdealBig(big.NewFloat(0), []BigBand{b})
	if amp.Prec() != 300 || weight.Prec() != 300 {
		t.Fatalf("value precision %d/%d, want 300", amp.Prec(), weight.Prec())
	}
}
