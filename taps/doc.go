// Package taps converts a converged Remez reference iterate into
// linear-phase FIR tap coefficients and samples their frequency response.
//
// The remez package works in the cosine-transformed domain x = cos(w); a
// converged iterate there describes the filter's amplitude response as a
// Chebyshev series, which [FromReference] recovers and folds into
// symmetric taps. The resulting coefficients plug directly into an FIR
// runtime such as algo-dsp's dsp/filter/fir.
package taps
