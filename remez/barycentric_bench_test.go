package remez

import (
	"fmt"
	"testing"
)

func BenchmarkWeights(b *testing.B) {
	for _, n := range []int{8, 25, 60} {
		x := chebPoints(n)
		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchSinkSlice = Weights(x)
			}
		})
	}
}

func BenchmarkDelta(b *testing.B) {
	bands := lowpass()
	x := lowpassNodes(10, 15)
	w := Weights(x)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = DeltaFromWeights(w, x, bands)
	}
}

func BenchmarkError(b *testing.B) {
	bands := lowpass()
	x := lowpassNodes(10, 15)
	w := Weights(x)
	d := DeltaFromWeights(w, x, bands)
	c := Response(d, x, bands)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Error(0.5, d, x, c, w, bands)
	}
}

var (
	benchSink      float64
	benchSinkSlice []float64
)
