package core

import "fmt"

// Size is an immutable 2-D dimension value: image width (X) and height (Y)
// in pixels.  Two Sizes are equal iff both components are equal, so plain
// == comparison works.
type Size struct {
	X int
	Y int
}

// NewSize returns a Size with the given width and height.
func NewSize(width, height int) Size {
	return Size{X: width, Y: height}
}

// Area returns the number of pixels (width * height).  Callers are
// responsible for choosing dimensions whose product fits in an int.
func (s Size) Area() int { return s.X * s.Y }

// Contains reports whether (x, y) lies inside [0, X) x [0, Y).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.X && y >= 0 && y < s.Y
}

// Index returns the row-major flat index of (x, y): y*X + x.
// Callers relying on a specific flat layout (codec interop) can assume
// exactly this mapping.
func (s Size) Index(x, y int) int { return y*s.X + x }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.X, s.Y) }
