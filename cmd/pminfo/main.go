// Command pminfo prints the equiripple interpolation state for a lowpass
// design problem: the barycentric weights, the ripple level and the
// response values on a Chebyshev reference set.
//
// Usage:
//
//	pminfo [flags]
//
// Band edges are normalized frequencies in (0, 1), where 1 is Nyquist.
//
// Examples:
//
//	pminfo
//	pminfo -pass 0.3 -stop 0.35 -nodes 17
//	pminfo -pass 0.4 -stop 0.5 -weight 10 -prec 300
//	pminfo -nodes 13 -degree 12 -fft 512
package main

import (
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-remez/cheby"
	"github.com/cwbudde/algo-remez/remez"
	"github.com/cwbudde/algo-remez/remez/band"
	"github.com/cwbudde/algo-remez/taps"
)

func main() {
	pass := flag.Float64("pass", 0.4, "passband edge as a fraction of Nyquist")
	stop := flag.Float64("stop", 0.5, "stopband edge as a fraction of Nyquist")
	weight := flag.Float64("weight", 1, "stopband weight relative to the passband")
	nodes := flag.Int("nodes", 9, "number of reference nodes")
	prec := flag.Uint("prec", 0, "also compute the ripple at this many bits of precision")
	degree := flag.Int("degree", 0, "if positive, print the folded 2*degree+1 tap set")
	fftSize := flag.Int("fft", 256, "FFT grid hint for the tap magnitude response")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pminfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the equiripple interpolation state for a lowpass design.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pminfo -pass 0.3 -stop 0.35 -nodes 17\n")
		fmt.Fprintf(os.Stderr, "  pminfo -weight 10 -prec 300\n")
	}
	flag.Parse()

	if *pass <= 0 || *stop >= 1 || *pass >= *stop {
		fmt.Fprintf(os.Stderr, "error: band edges must satisfy 0 < pass < stop < 1\n")
		os.Exit(2)
	}
	if *weight <= 0 {
		fmt.Fprintf(os.Stderr, "error: weight must be positive\n")
		os.Exit(2)
	}
	if *nodes < 4 {
		fmt.Fprintf(os.Stderr, "error: at least 4 reference nodes are required\n")
		os.Exit(2)
	}

	// Work on the cosine axis: x = cos(pi*f) maps the passband onto
	// [cos(pi*pass), 1] and the stopband onto [-1, cos(pi*stop)].
	passEdge := math.Cos(math.Pi * *pass)
	stopEdge := math.Cos(math.Pi * *stop)
	bands := []band.Band{
		band.Constant(passEdge, 1, 1, 1),
		band.Constant(-1, stopEdge, 0, *weight),
	}

	x := referenceNodes(*nodes, passEdge, stopEdge)
	w := remez.Weights(x)
	delta := remez.DeltaFromWeights(w, x, bands)
	c := remez.Response(delta, x, bands)

	fmt.Printf("pass edge  %.4f (x = %+.6f)\n", *pass, passEdge)
	fmt.Printf("stop edge  %.4f (x = %+.6f)\n", *stop, stopEdge)
	fmt.Printf("delta      %+.12e\n\n", delta)

	printReference(x, w, c, delta, bands)

	if *prec > 0 {
		printBigDelta(x, passEdge, stopEdge, *weight, *prec, delta)
	}
	if *degree > 0 {
		printTaps(x, c, w, *degree, *fftSize)
	}
}

// referenceNodes spreads Chebyshev extrema over both bands, splitting the
// node count in proportion to band width on the cosine axis.
func referenceNodes(n int, passEdge, stopEdge float64) []float64 {
	passWidth := 1 - passEdge
	stopWidth := stopEdge + 1
	nPass := int(math.Round(float64(n) * passWidth / (passWidth + stopWidth)))
	if nPass < 2 {
		nPass = 2
	}
	if nPass > n-2 {
		nPass = n - 2
	}
	nStop := n - nPass

	out := mapToInterval(cheby.Extrema(nStop), -1, stopEdge)
	return append(out, mapToInterval(cheby.Extrema(nPass), passEdge, 1)...)
}

func mapToInterval(u []float64, a, b float64) []float64 {
	out := make([]float64, len(u))
	for i, v := range u {
		out[i] = a + (b-a)*(v+1)*0.5
	}
	return out
}

func printReference(x, w, c []float64, delta float64, bands []band.Band) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Node\tx\tFreq\tWeight\tResponse\tError\n")
	fmt.Fprintf(tw, "----\t-\t----\t------\t--------\t-----\n")
	for i := range x {
		e := remez.Error(x[i], delta, x, c, w, bands)
		fmt.Fprintf(tw, "%d\t%+.6f\t%.4f\t%+.4e\t%+.6f\t%+.4e\n",
			i, x[i], math.Acos(x[i])/math.Pi, w[i], c[i], e)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}

func printBigDelta(x []float64, passEdge, stopEdge, weight float64, prec uint, delta float64) {
	bx := make([]*big.Float, len(x))
	for i, v := range x {
		bx[i] = new(big.Float).SetPrec(prec).SetFloat64(v)
	}
	bands := []band.BigBand{
		band.ConstantBig(passEdge, 1, 1, 1, prec),
		band.ConstantBig(-1, stopEdge, 0, weight, prec),
	}
	bd := remez.DeltaBig(bx, bands, prec)
	f, _ := bd.Float64()
	fmt.Printf("delta @ %d bits  %+.12e (float64 drift %.3e)\n\n", prec, f, math.Abs(f-delta))
}

func printTaps(x, c, w []float64, degree, fftSize int) {
	h, err := taps.FromReference(x, c, w, degree)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("taps (%d):\n", len(h))
	for i, v := range h {
		fmt.Printf("  h[%2d] = %+.10e\n", i, v)
	}

	mag, err := taps.MagnitudeResponse(h, fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	var peak float64
	for _, v := range mag {
		if v > peak {
			peak = v
		}
	}
	fmt.Printf("magnitude peak over %d bins: %.6f\n", len(mag), peak)
}
