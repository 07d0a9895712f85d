package filter

import (
	"fmt"
	"math"

	"github.com/viktorchvatal/nanocv/core"
)

// BoxKernel returns a kernel of 2*radius+1 equal taps that sum to one.
func BoxKernel[T core.Float](radius int) []T {
	if radius < 0 {
		panic(fmt.Sprintf("filter: negative kernel radius %d", radius))
	}
	n := 2*radius + 1
	k := make([]T, n)
	w := T(1) / T(n)
	for i := range k {
		k[i] = w
	}
	return k
}

// GaussianKernel returns a kernel of 2*radius+1 taps sampling a Gaussian
// with the given standard deviation, normalized to sum to one.
func GaussianKernel[T core.Float](radius int, sigma float64) []T {
	if radius < 0 {
		panic(fmt.Sprintf("filter: negative kernel radius %d", radius))
	}
	if sigma <= 0 {
		panic(fmt.Sprintf("filter: sigma must be positive, got %g", sigma))
	}
	n := 2*radius + 1
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		d := float64(i - radius)
		weights[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += weights[i]
	}
	k := make([]T, n)
	for i, w := range weights {
		k[i] = T(w / sum)
	}
	return k
}
