package taps

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeResponse samples the magnitude response |H(e^jw)| of the tap
// set on a DFT grid and returns the bins covering [0, pi]. size is a hint
// for the grid resolution; it is rounded up to the next power of two and
// to at least the tap count, and the returned slice holds fftSize/2 + 1
// bins. Magnitudes use SIMD implementations when available.
func MagnitudeResponse(taps []float64, size int) ([]float64, error) {
	if len(taps) == 0 {
		return nil, ErrNoTaps
	}

	fftSize := nextPowerOf2(size)
	if min := nextPowerOf2(len(taps)); fftSize < min {
		fftSize = min
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("taps: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range taps {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(padded, padded); err != nil {
		return nil, fmt.Errorf("taps: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(padded[i])
		im[i] = imag(padded[i])
	}
	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
