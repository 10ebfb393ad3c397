package taps

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-remez/internal/testutil"
	"github.com/cwbudde/algo-remez/remez"
	"github.com/cwbudde/algo-remez/remez/band"
)

// lowpassFixture is a two-band cosine-space lowpass specification.
func lowpassFixture() []band.Band {
	return []band.Band{
		band.Constant(-1, -0.1, 0, 1),
		band.Constant(0.2, 1, 1, 1),
	}
}

// lowpassReference places Chebyshev extrema inside both fixture bands,
// nine nodes in total.
func lowpassReference() []float64 {
	place := func(n int, a, b float64) []float64 {
		out := make([]float64, n)
		for k := range out {
			u := math.Cos(float64(n-1-k) * math.Pi / float64(n-1))
			out[k] = a + (b-a)*(u+1)*0.5
		}
		return out
	}
	x := place(4, -1, -0.1)
	return append(x, place(5, 0.2, 1)...)
}

func TestFromReferenceConstant(t *testing.T) {
	// A reference whose interpolant is identically 1 must collapse to a
	// unit center tap.
	x := []float64{-0.5, 0.5}
	c := []float64{1, 1}
	w := remez.Weights(x)

	h, err := FromReference(x, c, w, 6)
	if err != nil {
		t.Fatalf("FromReference: %v", err)
	}
	if len(h) != 13 {
		t.Fatalf("tap count %d, want 13", len(h))
	}
	testutil.RequireNear(t, h[6], 1, 1e-12)
	for i, v := range h {
		if i == 6 {
			continue
		}
		testutil.RequireNear(t, v, 0, 1e-12)
	}
}

func TestFromReferenceLinear(t *testing.T) {
	// The interpolant through (-1, -1), (1, 1) is T_1, whose tap folding
	// is a half at either side of the center.
	x := []float64{-1, 1}
	c := []float64{-1, 1}
	w := remez.Weights(x)

	h, err := FromReference(x, c, w, 4)
	if err != nil {
		t.Fatalf("FromReference: %v", err)
	}
	want := []float64{0, 0, 0, 0.5, 0, 0.5, 0, 0, 0}
	testutil.RequireSliceNear(t, h, want, 1e-12)
}

func TestFromReferenceSymmetric(t *testing.T) {
	bands := lowpassFixture()
	x := lowpassReference()
	w := remez.Weights(x)
	d := remez.DeltaFromWeights(w, x, bands)
	c := remez.Response(d, x, bands)

	h, err := FromReference(x, c, w, 12)
	if err != nil {
		t.Fatalf("FromReference: %v", err)
	}
	if len(h) != 25 {
		t.Fatalf("tap count %d, want 25", len(h))
	}
	testutil.RequireFinite(t, h)
	for j := 0; j < len(h)/2; j++ {
		if h[j] != h[len(h)-1-j] {
			t.Fatalf("taps not symmetric at %d: %v vs %v", j, h[j], h[len(h)-1-j])
		}
	}
}

func TestFromReferenceMatchesInterpolant(t *testing.T) {
	// The folded taps encode the same amplitude response the interpolant
	// has: A(w) = sum_k h[k] e^{-jkw} evaluated on the unit circle must
	// match Approx(cos w) once the linear phase is removed.
	bands := lowpassFixture()
	x := lowpassReference()
	w := remez.Weights(x)
	d := remez.DeltaFromWeights(w, x, bands)
	c := remez.Response(d, x, bands)

	const degree = 14
	h, err := FromReference(x, c, w, degree)
	if err != nil {
		t.Fatalf("FromReference: %v", err)
	}

	for _, omega := range []float64{0.2, 1.1, 2.0, 2.9} {
		var amp float64
		for k, v := range h {
			amp += v * math.Cos(float64(k-degree)*omega)
		}
		want := remez.Approx(math.Cos(omega), x, c, w)
		testutil.RequireNear(t, amp, want, 1e-9)
	}
}

func TestFromReferenceErrors(t *testing.T) {
	x := []float64{-0.5, 0.5}
	c := []float64{1, 1}
	w := remez.Weights(x)

	if _, err := FromReference(x, c, w, 0); !errors.Is(err, ErrInvalidDegree) {
		t.Fatalf("degree 0: err = %v, want ErrInvalidDegree", err)
	}
	if _, err := FromReference(x[:1], c[:1], w[:1], 4); !errors.Is(err, ErrShortReference) {
		t.Fatalf("short reference: err = %v, want ErrShortReference", err)
	}
}
