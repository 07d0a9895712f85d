package filter

import (
	"github.com/viktorchvatal/nanocv/core"
	"github.com/viktorchvatal/nanocv/geometry"
)

// MapNew produces a newly allocated buffer of the same size with
// dst(x, y) = f(src(x, y)) for every coordinate.  The source is never
// mutated.  Because the destination element type is an independent
// parameter, this is the mechanism for widening (uint8 to int32 before
// convolution) and narrowing back afterwards.
func MapNew[T, U core.Element](src core.Image[T], f func(T) U) *core.Buffer[U] {
	dst := core.NewBufferLike[U](src)
	mapRows(src, dst, 0, src.Size().Y, f)
	return dst
}

// CloneNew copies src into a newly allocated owned buffer.
func CloneNew[T core.Element](src core.Image[T]) *core.Buffer[T] {
	return MapNew(src, func(v T) T { return v })
}

// mapRows fills dst rows [y0, y1) from src through f.
func mapRows[T, U core.Element](src core.Image[T], dst *core.Buffer[U], y0, y1 int, f func(T) U) {
	width := src.Size().X
	if rows, ok := src.(core.RowReader[T]); ok {
		for y := y0; y < y1; y++ {
			in, out := rows.Row(y), dst.Row(y)
			for x := 0; x < width; x++ {
				out[x] = f(in[x])
			}
		}
		return
	}
	for y := y0; y < y1; y++ {
		out := dst.Row(y)
		for x := 0; x < width; x++ {
			out[x] = f(src.At(x, y))
		}
	}
}

// MapRange maps pixels of src inside srcRange onto dst inside dstRange
// through op, which combines a source value with the pre-existing
// destination value (for a plain copy use func(s T, _ U) U).  Both regions
// are clipped to their images, so pixels falling outside either image are
// ignored.
func MapRange[T, U core.Element](
	src core.Image[T],
	dst core.MutableImage[U],
	srcRange, dstRange geometry.Range2d[int],
	op func(T, U) U,
) {
	shift := dstRange.Start().Sub(srcRange.Start())

	srcR := srcRange.
		Intersect(ImageRange(src)).
		Intersect(ImageRange(dst).Shift(geometry.Pt(-shift.X, -shift.Y)))
	dstR := dstRange.
		Intersect(ImageRange(dst)).
		Intersect(ImageRange(src).Shift(shift))

	height := min(srcR.Height(), dstR.Height())
	width := min(srcR.Width(), dstR.Width())

	for dy := 0; dy < height; dy++ {
		sy := srcR.Y.Start + dy
		ty := dstR.Y.Start + dy
		for dx := 0; dx < width; dx++ {
			sx := srcR.X.Start + dx
			tx := dstR.X.Start + dx
			dst.Set(tx, ty, op(src.At(sx, sy), dst.At(tx, ty)))
		}
	}
}
