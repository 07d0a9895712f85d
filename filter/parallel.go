package filter

import (
	"github.com/viktorchvatal/nanocv/core"
	"github.com/viktorchvatal/nanocv/workerpool"
)

// Parallel variants of the engines.  Each one partitions the output rows
// into disjoint ranges processed by independent workers; every worker runs
// the same row loop as the sequential engine, so for identical inputs the
// output is bit-identical to the sequential variant.  The pool call blocks
// until every row range has completed, so the destination is fully written
// when these functions return.

// ParallelUpdate is the row-partitioned variant of Update.
func ParallelUpdate[T core.Element](pool *workerpool.Pool, img core.MutableImage[T], f func(T) T) {
	pool.ParallelFor(img.Size().Y, func(y0, y1 int) {
		updateRows(img, y0, y1, f)
	})
}

// ParallelMapNew is the row-partitioned variant of MapNew.
func ParallelMapNew[T, U core.Element](pool *workerpool.Pool, src core.Image[T], f func(T) U) *core.Buffer[U] {
	dst := core.NewBufferLike[U](src)
	pool.ParallelFor(src.Size().Y, func(y0, y1 int) {
		mapRows(src, dst, y0, y1, f)
	})
	return dst
}

// ParallelHorizontalFilter is the row-partitioned variant of
// HorizontalFilter, with the same edge policy and contracts.
func ParallelHorizontalFilter[T, K, A core.Element](
	pool *workerpool.Pool,
	src core.Image[T],
	dst core.MutableImage[A],
	kernel []K,
	op Operator[T, K, A],
	init A,
) {
	checkFilterArgs(src, dst, kernel)
	pool.ParallelFor(src.Size().Y, func(y0, y1 int) {
		horizontalFilterRows(src, dst, kernel, op, init, y0, y1)
	})
}

// ParallelVerticalFilter is the row-partitioned variant of VerticalFilter.
// Workers read overlapping source rows but write disjoint destination rows,
// so no synchronization is needed during the parallel phase.
func ParallelVerticalFilter[T, K, A core.Element](
	pool *workerpool.Pool,
	src core.Image[T],
	dst core.MutableImage[A],
	kernel []K,
	op Operator[T, K, A],
	init A,
) {
	checkFilterArgs(src, dst, kernel)
	lo, hi := interior(src.Size().Y, len(kernel))
	pool.ParallelFor(hi-lo, func(i0, i1 int) {
		verticalFilterRows(src, dst, kernel, op, init, lo+i0, lo+i1)
	})
}
