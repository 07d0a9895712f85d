package geometry

import "fmt"

// Range2d is a rectangular region described by two half-open coordinate
// ranges, one per axis.
type Range2d[T Number] struct {
	X Range[T]
	Y Range[T]
}

// NewRange2d returns the region [x0, x1) x [y0, y1).
func NewRange2d[T Number](x0, x1, y0, y1 T) Range2d[T] {
	return Range2d[T]{X: NewRange(x0, x1), Y: NewRange(y0, y1)}
}

// Width returns the horizontal extent of the region.
func (r Range2d[T]) Width() T { return r.X.Length() }

// Height returns the vertical extent of the region.
func (r Range2d[T]) Height() T { return r.Y.Length() }

// Empty reports whether the region contains no pixels.
func (r Range2d[T]) Empty() bool { return r.X.Empty() || r.Y.Empty() }

// Start returns the top-left corner of the region.
func (r Range2d[T]) Start() Point[T] { return Point[T]{X: r.X.Start, Y: r.Y.Start} }

// Shift returns the region moved by offset.
func (r Range2d[T]) Shift(offset Point[T]) Range2d[T] {
	return Range2d[T]{X: r.X.Shift(offset.X), Y: r.Y.Shift(offset.Y)}
}

// Intersect returns the overlap of r and q.
func (r Range2d[T]) Intersect(q Range2d[T]) Range2d[T] {
	return Range2d[T]{X: r.X.Intersect(q.X), Y: r.Y.Intersect(q.Y)}
}

func (r Range2d[T]) String() string { return fmt.Sprintf("%v x %v", r.X, r.Y) }
