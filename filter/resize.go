package filter

import "github.com/viktorchvatal/nanocv/core"

// ResizeNearestNew scales src to the given size by nearest-neighbor
// sampling, returning a new buffer.  Index lookup tables keep the inner
// loop divide-free.
func ResizeNearestNew[T core.Element](src core.Image[T], size core.Size) *core.Buffer[T] {
	xIndex := scaleIndexTable(src.Size().X, size.X)
	yIndex := scaleIndexTable(src.Size().Y, size.Y)
	out := core.NewBuffer[T](size)

	rows, rowsOK := src.(core.RowReader[T])
	for y := 0; y < size.Y; y++ {
		dst := out.Row(y)
		if rowsOK {
			in := rows.Row(yIndex[y])
			for x := 0; x < size.X; x++ {
				dst[x] = in[xIndex[x]]
			}
			continue
		}
		sy := yIndex[y]
		for x := 0; x < size.X; x++ {
			dst[x] = src.At(xIndex[x], sy)
		}
	}
	return out
}

// scaleIndexTable maps every target index to its nearest source index.
func scaleIndexTable(sourceSize, targetSize int) []int {
	table := make([]int, targetSize)
	for i := range table {
		table[i] = i * sourceSize / targetSize
	}
	return table
}
