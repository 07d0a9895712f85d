package filter

import (
	"testing"

	"github.com/viktorchvatal/nanocv/core"
	"github.com/viktorchvatal/nanocv/workerpool"
)

// noiseImage fills a buffer with a deterministic pseudo-random pattern.
func noiseImage(w, h int) *core.Buffer[int32] {
	img := core.NewBuffer[int32](core.NewSize(w, h))
	seed := int32(12345)
	for y := 0; y < h; y++ {
		row := img.Row(y)
		for x := range row {
			seed = seed*1103515245 + 12345
			row[x] = (seed >> 16) & 0xFF
		}
	}
	return img
}

func TestParallelUpdateMatchesSequential(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	seq := noiseImage(64, 33)
	par := seq.Clone()
	f := func(v int32) int32 { return v*3 + 1 }

	Update(seq, f)
	ParallelUpdate(pool, par, f)

	if !par.Equal(seq) {
		t.Error("parallel update differs from sequential")
	}
}

func TestParallelMapNewMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	src := noiseImage(40, 17)
	f := func(v int32) int64 { return int64(v) * int64(v) }

	seq := MapNew(src, f)
	par := ParallelMapNew(pool, src, f)

	if !par.Equal(seq) {
		t.Error("parallel map differs from sequential")
	}
}

func TestParallelHorizontalFilterMatchesSequential(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	src := noiseImage(31, 29)
	kernel := []int32{1, 2, 3, 2, 1}

	seq := core.NewBufferLike[int32](src)
	HorizontalFilter(src, seq, kernel, ConvolutionOperator[int32], 0)

	par := core.NewBufferLike[int32](src)
	ParallelHorizontalFilter(pool, src, par, kernel, ConvolutionOperator[int32], 0)

	if !par.Equal(seq) {
		t.Error("parallel horizontal filter differs from sequential")
	}
}

func TestParallelVerticalFilterMatchesSequential(t *testing.T) {
	pool := workerpool.New(5)
	defer pool.Close()

	src := noiseImage(29, 31)
	kernel := []int32{1, 2, 1}

	seq := core.NewBufferLike[int32](src)
	VerticalFilter(src, seq, kernel, ConvolutionOperator[int32], 0)

	par := core.NewBufferLike[int32](src)
	ParallelVerticalFilter(pool, src, par, kernel, ConvolutionOperator[int32], 0)

	if !par.Equal(seq) {
		t.Error("parallel vertical filter differs from sequential")
	}
}

func TestParallelSingleWorker(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	img := noiseImage(8, 8)
	want := img.Clone()
	Update(want, func(v int32) int32 { return v + 1 })
	ParallelUpdate(pool, img, func(v int32) int32 { return v + 1 })
	if !img.Equal(want) {
		t.Error("single worker pool differs from sequential")
	}
}

func TestParallelSmallerThanWorkers(t *testing.T) {
	pool := workerpool.New(8)
	defer pool.Close()

	img := noiseImage(4, 2)
	want := img.Clone()
	Update(want, func(v int32) int32 { return -v })
	ParallelUpdate(pool, img, func(v int32) int32 { return -v })
	if !img.Equal(want) {
		t.Error("image smaller than worker count mishandled")
	}
}
