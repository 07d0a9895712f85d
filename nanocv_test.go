package nanocv

import (
	"math"
	"testing"

	"github.com/viktorchvatal/nanocv/filter"
	"github.com/viktorchvatal/nanocv/workerpool"
)

func gradient(w, h int) *Buffer[float64] {
	img := New[float64](NewSize(w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, float64(x+y)/float64(w+h))
		}
	}
	return img
}

func TestBoxBlurPreservesBorder(t *testing.T) {
	src := gradient(9, 9)
	out := BoxBlur(src, 1)

	if out.Size() != src.Size() {
		t.Fatalf("size = %s, want %s", out.Size(), src.Size())
	}
	// Corner pixels lie outside the reach of both passes and must keep
	// their source values exactly.
	for _, c := range [][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		if got, want := out.At(c[0], c[1]), src.At(c[0], c[1]); got != want {
			t.Fatalf("corner (%d,%d) = %g, want %g", c[0], c[1], got, want)
		}
	}
}

func TestBoxBlurFlatImageIsFixedPoint(t *testing.T) {
	src := New[float64](NewSize(7, 7))
	filter.Update(src, func(float64) float64 { return 0.5 })
	out := BoxBlur(src, 2)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if d := math.Abs(out.At(x, y) - 0.5); d > 1e-12 {
				t.Fatalf("out(%d,%d) = %g, want 0.5", x, y, out.At(x, y))
			}
		}
	}
}

func TestGaussianBlurSmooths(t *testing.T) {
	// A single bright pixel must spread into its neighborhood.
	src := New[float64](NewSize(9, 9))
	src.Set(4, 4, 1)
	out := GaussianBlur(src, 2, 1.0)

	if out.At(4, 4) >= 1 {
		t.Error("center did not lose energy")
	}
	if out.At(4, 4) <= out.At(3, 4) {
		t.Error("center is not the local maximum")
	}
	if out.At(3, 4) <= 0 {
		t.Error("energy did not spread to neighbors")
	}
}

func TestParallelBlurMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	src := gradient(33, 21)

	if !ParallelBoxBlur(pool, src, 2).Equal(BoxBlur(src, 2)) {
		t.Error("parallel box blur differs from sequential")
	}
	if !ParallelGaussianBlur(pool, src, 2, 0.8).Equal(GaussianBlur(src, 2, 0.8)) {
		t.Error("parallel gaussian blur differs from sequential")
	}
}

func TestFromSliceFacade(t *testing.T) {
	b, err := FromSlice(NewSize(2, 2), []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if b.At(1, 1) != 4 {
		t.Errorf("At(1,1) = %g, want 4", b.At(1, 1))
	}
	if _, err := FromSlice(NewSize(2, 2), []float32{1}); err == nil {
		t.Error("expected error for short slice")
	}
}
