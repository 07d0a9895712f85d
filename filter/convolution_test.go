package filter

import (
	"testing"

	"github.com/viktorchvatal/nanocv/core"
)

// rampImage returns a 5x5 buffer whose rows are all [1, 2, 3, 4, 5].
func rampImage() *core.Buffer[int32] {
	img := core.NewBuffer[int32](core.NewSize(5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, int32(x+1))
		}
	}
	return img
}

func TestHorizontalFilterInterior(t *testing.T) {
	src := rampImage()
	dst := core.NewBufferLike[int32](src)
	HorizontalFilter(src, dst, []int32{1, 1, 1}, ConvolutionOperator[int32], 0)

	// Row values [1 2 3 4 5] under a 3-tap sum kernel.
	want := []int32{0, 6, 9, 12, 0}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := dst.At(x, y); got != want[x] {
				t.Errorf("dst(%d,%d) = %d, want %d", x, y, got, want[x])
			}
		}
	}
}

func TestHorizontalFilterBorderUntouched(t *testing.T) {
	src := rampImage()
	dst := core.NewBufferInit(src.Size(), int32(-7))
	HorizontalFilter(src, dst, []int32{0, 1, 0}, ConvolutionOperator[int32], 0)
	for y := 0; y < 5; y++ {
		if got := dst.At(0, y); got != -7 {
			t.Errorf("left border row %d overwritten: %d", y, got)
		}
		if got := dst.At(4, y); got != -7 {
			t.Errorf("right border row %d overwritten: %d", y, got)
		}
		if got := dst.At(2, y); got != 3 {
			t.Errorf("interior dst(2,%d) = %d, want 3", y, got)
		}
	}
}

func TestVerticalFilterInterior(t *testing.T) {
	src := core.NewBuffer[int32](core.NewSize(5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			src.Set(x, y, int32(y+1))
		}
	}
	dst := core.NewBufferLike[int32](src)
	VerticalFilter(src, dst, []int32{1, 1, 1}, ConvolutionOperator[int32], 0)

	want := []int32{0, 6, 9, 12, 0}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := dst.At(x, y); got != want[y] {
				t.Errorf("dst(%d,%d) = %d, want %d", x, y, got, want[y])
			}
		}
	}
}

func TestSingleTapKernelIsIdentity(t *testing.T) {
	src := rampImage()

	h := core.NewBufferLike[int32](src)
	HorizontalFilter(src, h, []int32{1}, ConvolutionOperator[int32], 0)
	if !h.Equal(src) {
		t.Error("horizontal [1] kernel is not identity")
	}

	v := core.NewBufferLike[int32](src)
	VerticalFilter(src, v, []int32{1}, ConvolutionOperator[int32], 0)
	if !v.Equal(src) {
		t.Error("vertical [1] kernel is not identity")
	}
}

func TestSeparableAllOnes(t *testing.T) {
	src := core.NewBufferInit(core.NewSize(5, 5), int32(1))
	tmp := core.NewBufferLike[int32](src)
	out := core.NewBufferLike[int32](src)
	kernel := []int32{1, 1, 1}

	HorizontalFilter(src, tmp, kernel, ConvolutionOperator[int32], 0)
	VerticalFilter(tmp, out, kernel, ConvolutionOperator[int32], 0)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := int32(0)
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = 9
			}
			if got := out.At(x, y); got != want {
				t.Errorf("out(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEvenKernel(t *testing.T) {
	src := rampImage()
	dst := core.NewBufferLike[int32](src)
	HorizontalFilter(src, dst, []int32{1, 1}, ConvolutionOperator[int32], 0)

	// half = 1, so dst(x) = src(x-1) + src(x) for x in [1, 5).
	want := []int32{0, 3, 5, 7, 9}
	for x := 0; x < 5; x++ {
		if got := dst.At(x, 0); got != want[x] {
			t.Errorf("dst(%d,0) = %d, want %d", x, got, want[x])
		}
	}
}

func TestKernelWiderThanImage(t *testing.T) {
	src := core.NewBufferInit(core.NewSize(2, 2), int32(5))
	dst := core.NewBufferInit(src.Size(), int32(-1))
	HorizontalFilter(src, dst, []int32{1, 1, 1}, ConvolutionOperator[int32], 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := dst.At(x, y); got != -1 {
				t.Errorf("dst(%d,%d) = %d, want untouched -1", x, y, got)
			}
		}
	}
}

func TestWideningAccumulator(t *testing.T) {
	src := core.NewBufferInit(core.NewSize(5, 1), uint8(200))
	dst := core.NewBufferLike[int32](src)
	widen := func(acc int32, px uint8, weight int32) int32 {
		return acc + int32(px)*weight
	}
	HorizontalFilter(src, dst, []int32{1, 1, 1}, widen, 0)
	for x := 1; x < 4; x++ {
		if got := dst.At(x, 0); got != 600 {
			t.Errorf("dst(%d,0) = %d, want 600", x, got)
		}
	}
}

func TestEmptyKernelPanics(t *testing.T) {
	src := rampImage()
	dst := core.NewBufferLike[int32](src)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty kernel")
		}
	}()
	HorizontalFilter(src, dst, []int32{}, ConvolutionOperator[int32], 0)
}

func TestSizeMismatchPanics(t *testing.T) {
	src := rampImage()
	dst := core.NewBuffer[int32](core.NewSize(4, 5))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched destination size")
		}
	}()
	HorizontalFilter(src, dst, []int32{1}, ConvolutionOperator[int32], 0)
}

func TestFilterThroughView(t *testing.T) {
	// Engines must work against any capability implementation, not just
	// owned buffers.
	parent := core.NewBuffer[int32](core.NewSize(7, 7))
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			parent.Set(x, y, int32(x))
		}
	}
	src := core.Crop[int32](parent, 1, 1, core.NewSize(5, 5))
	dst := core.NewBuffer[int32](core.NewSize(5, 5))
	HorizontalFilter[int32, int32, int32](src, dst, []int32{1, 1, 1}, ConvolutionOperator[int32], 0)

	// View row values are [1 2 3 4 5], same as rampImage.
	want := []int32{0, 6, 9, 12, 0}
	for x := 0; x < 5; x++ {
		if got := dst.At(x, 2); got != want[x] {
			t.Errorf("dst(%d,2) = %d, want %d", x, got, want[x])
		}
	}
}

func TestInterior(t *testing.T) {
	tests := []struct {
		n, k   int
		lo, hi int
	}{
		{5, 3, 1, 4},
		{5, 1, 0, 5},
		{5, 2, 1, 5},
		{5, 5, 2, 3},
		{2, 3, 1, 1},
		{1, 3, 1, 1},
	}
	for _, tt := range tests {
		lo, hi := interior(tt.n, tt.k)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("interior(%d, %d) = (%d, %d), want (%d, %d)",
				tt.n, tt.k, lo, hi, tt.lo, tt.hi)
		}
	}
}
