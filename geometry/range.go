package geometry

import "fmt"

// Range is a half-open interval bounded from Start (inclusive) to End
// (exclusive).  An empty range has End <= Start.
type Range[T Number] struct {
	Start T
	End   T
}

// NewRange returns the range [start, end).
func NewRange[T Number](start, end T) Range[T] { return Range[T]{Start: start, End: end} }

// Length returns End - Start, or zero for an empty range.
func (r Range[T]) Length() T {
	if r.End <= r.Start {
		var zero T
		return zero
	}
	return r.End - r.Start
}

// Empty reports whether the range contains no values.
func (r Range[T]) Empty() bool { return r.End <= r.Start }

// Contains reports whether v lies inside [Start, End).
func (r Range[T]) Contains(v T) bool { return v >= r.Start && v < r.End }

// Shift returns the range moved by offset.
func (r Range[T]) Shift(offset T) Range[T] {
	return Range[T]{Start: r.Start + offset, End: r.End + offset}
}

// Intersect returns the overlap of r and q; the result is empty when the
// ranges do not overlap.
func (r Range[T]) Intersect(q Range[T]) Range[T] {
	out := Range[T]{Start: max(r.Start, q.Start), End: min(r.End, q.End)}
	if out.End < out.Start {
		out.End = out.Start
	}
	return out
}

func (r Range[T]) String() string { return fmt.Sprintf("[%v, %v)", r.Start, r.End) }
