package filter

import (
	"fmt"

	"github.com/viktorchvatal/nanocv/core"
)

// Operator combines one source element and one kernel weight into an
// accumulator.  Decoupling the arithmetic of combination from the sliding
// window lets the same engine express convolution, correlation or any other
// windowed reduction.  The accumulator type is independent of the stored
// element type so callers can accumulate in a wider representation.
type Operator[T, K, A core.Element] func(acc A, px T, weight K) A

// ConvolutionOperator is the standard multiply-accumulate combining
// operator: acc + px*weight.  Use the zero value of T as the initial
// accumulator.
func ConvolutionOperator[T core.Element](acc, px, weight T) T {
	return acc + px*weight
}

// HorizontalFilter applies a 1-D kernel along the x axis of src, writing
// accumulated values into dst through op.
//
// Edge policy: only destination pixels whose full kernel window fits inside
// the source are computed.  A border of len(kernel)/2 columns on the left
// and (len(kernel)-1)/2 on the right keeps whatever value dst already holds,
// so pre-initialize dst (typically with core.NewBufferLike or CloneNew).
// This keeps the inner loop free of per-pixel bounds branching.
//
// dst must have exactly the source size and kernel must be non-empty; both
// are caller contracts and violating them panics.
func HorizontalFilter[T, K, A core.Element](
	src core.Image[T],
	dst core.MutableImage[A],
	kernel []K,
	op Operator[T, K, A],
	init A,
) {
	checkFilterArgs(src, dst, kernel)
	horizontalFilterRows(src, dst, kernel, op, init, 0, src.Size().Y)
}

// VerticalFilter is the transpose of HorizontalFilter: the kernel slides
// along the y axis and the untouched border is len(kernel)/2 rows at the
// top and (len(kernel)-1)/2 at the bottom.
func VerticalFilter[T, K, A core.Element](
	src core.Image[T],
	dst core.MutableImage[A],
	kernel []K,
	op Operator[T, K, A],
	init A,
) {
	checkFilterArgs(src, dst, kernel)
	lo, hi := interior(src.Size().Y, len(kernel))
	verticalFilterRows(src, dst, kernel, op, init, lo, hi)
}

// checkFilterArgs validates the engine preconditions once, at the public
// entry point.  The row loops below derive every index from the validated
// sizes, so they stay in bounds without further checks.
func checkFilterArgs[T, K, A core.Element](src core.Image[T], dst core.Image[A], kernel []K) {
	if len(kernel) == 0 {
		panic("filter: empty kernel")
	}
	if src.Size() != dst.Size() {
		panic(fmt.Sprintf("filter: destination size %s does not match source size %s",
			dst.Size(), src.Size()))
	}
}

// interior returns the half-open index range along one axis of length n for
// which a kernel of k taps centered at k/2 stays inside [0, n).
func interior(n, k int) (lo, hi int) {
	half := k / 2
	lo = half
	hi = n - k + half + 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// horizontalFilterRows convolves output rows [y0, y1).  Each output row
// depends only on the same source row, so disjoint row ranges may run on
// separate workers.
func horizontalFilterRows[T, K, A core.Element](
	src core.Image[T],
	dst core.MutableImage[A],
	kernel []K,
	op Operator[T, K, A],
	init A,
	y0, y1 int,
) {
	k := len(kernel)
	half := k / 2
	lo, hi := interior(src.Size().X, k)

	srcRows, srcOK := src.(core.RowReader[T])
	dstRows, dstOK := dst.(core.RowReader[A])

	if srcOK && dstOK {
		for y := y0; y < y1; y++ {
			in, out := srcRows.Row(y), dstRows.Row(y)
			for x := lo; x < hi; x++ {
				acc := init
				for i := 0; i < k; i++ {
					acc = op(acc, in[x+i-half], kernel[i])
				}
				out[x] = acc
			}
		}
		return
	}

	for y := y0; y < y1; y++ {
		for x := lo; x < hi; x++ {
			acc := init
			for i := 0; i < k; i++ {
				acc = op(acc, src.At(x+i-half, y), kernel[i])
			}
			dst.Set(x, y, acc)
		}
	}
}

// verticalFilterRows convolves output rows [y0, y1), which must lie inside
// the interior range of the y axis.  Each output row reads source rows
// y-k/2 .. y+k-1-k/2 but writes only row y, so disjoint output row ranges
// may run on separate workers.
func verticalFilterRows[T, K, A core.Element](
	src core.Image[T],
	dst core.MutableImage[A],
	kernel []K,
	op Operator[T, K, A],
	init A,
	y0, y1 int,
) {
	k := len(kernel)
	half := k / 2
	width := src.Size().X

	srcRows, srcOK := src.(core.RowReader[T])
	dstRows, dstOK := dst.(core.RowReader[A])

	if srcOK && dstOK {
		// Accumulate a whole row at a time so the innermost loop runs over
		// contiguous slices.
		acc := make([]A, width)
		for y := y0; y < y1; y++ {
			for x := range acc {
				acc[x] = init
			}
			for i := 0; i < k; i++ {
				in := srcRows.Row(y + i - half)
				w := kernel[i]
				for x := 0; x < width; x++ {
					acc[x] = op(acc[x], in[x], w)
				}
			}
			copy(dstRows.Row(y), acc)
		}
		return
	}

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			acc := init
			for i := 0; i < k; i++ {
				acc = op(acc, src.At(x, y+i-half), kernel[i])
			}
			dst.Set(x, y, acc)
		}
	}
}
