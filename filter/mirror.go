package filter

import "github.com/viktorchvatal/nanocv/core"

// MirrorHorizontalNew returns a new buffer with every row of src reversed.
func MirrorHorizontalNew[T core.Element](src core.Image[T]) *core.Buffer[T] {
	size := src.Size()
	out := core.NewBufferLike[T](src)
	last := size.X - 1

	if rows, ok := src.(core.RowReader[T]); ok {
		for y := 0; y < size.Y; y++ {
			in, dst := rows.Row(y), out.Row(y)
			for x := 0; x < size.X; x++ {
				dst[x] = in[last-x]
			}
		}
		return out
	}
	for y := 0; y < size.Y; y++ {
		dst := out.Row(y)
		for x := 0; x < size.X; x++ {
			dst[x] = src.At(last-x, y)
		}
	}
	return out
}

// MirrorVerticalNew returns a new buffer with the rows of src in reverse
// order.
func MirrorVerticalNew[T core.Element](src core.Image[T]) *core.Buffer[T] {
	size := src.Size()
	out := core.NewBufferLike[T](src)

	for y := 0; y < size.Y; y++ {
		dst := out.Row(size.Y - 1 - y)
		if rows, ok := src.(core.RowReader[T]); ok {
			copy(dst, rows.Row(y))
			continue
		}
		for x := 0; x < size.X; x++ {
			dst[x] = src.At(x, y)
		}
	}
	return out
}
