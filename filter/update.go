// Package filter provides the point-transform and separable convolution
// engines.  Engines operate only through the core capability pair, so any
// storage implementing core.Image / core.MutableImage participates; owned
// buffers additionally take a contiguous-row fast path.
package filter

import (
	"github.com/viktorchvatal/nanocv/core"
	"github.com/viktorchvatal/nanocv/geometry"
)

// ImageRange returns the full pixel region of img as a half-open Range2d.
func ImageRange(img core.Sized) geometry.Range2d[int] {
	s := img.Size()
	return geometry.NewRange2d(0, s.X, 0, s.Y)
}

// Update replaces every element of img with f(element), in place.
// f must be pure; evaluation order is row-major.
func Update[T core.Element](img core.MutableImage[T], f func(T) T) {
	updateRows(img, 0, img.Size().Y, f)
}

// UpdateRange applies f in place to the pixels of region only.  The region
// is clipped to the image bounds, so out-of-image parts are ignored.
func UpdateRange[T core.Element](img core.MutableImage[T], region geometry.Range2d[int], f func(T) T) {
	r := region.Intersect(ImageRange(img))
	if r.Empty() {
		return
	}
	if rows, ok := img.(core.RowReader[T]); ok {
		for y := r.Y.Start; y < r.Y.End; y++ {
			row := rows.Row(y)[r.X.Start:r.X.End]
			for i, v := range row {
				row[i] = f(v)
			}
		}
		return
	}
	for y := r.Y.Start; y < r.Y.End; y++ {
		for x := r.X.Start; x < r.X.End; x++ {
			img.Set(x, y, f(img.At(x, y)))
		}
	}
}

// updateRows applies f to the rows [y0, y1).  The parallel variants call it
// with disjoint row ranges; the results are bit-identical to Update.
func updateRows[T core.Element](img core.MutableImage[T], y0, y1 int, f func(T) T) {
	width := img.Size().X
	if rows, ok := img.(core.RowReader[T]); ok {
		for y := y0; y < y1; y++ {
			row := rows.Row(y)
			for i, v := range row {
				row[i] = f(v)
			}
		}
		return
	}
	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, f(img.At(x, y)))
		}
	}
}
