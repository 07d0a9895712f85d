// Package geometry provides the basic value types used to describe pixel
// positions, half-open coordinate ranges and rectangular regions.
package geometry

import "fmt"

// Number is the constraint for coordinate component types.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Point is a general purpose two dimensional vector.
type Point[T Number] struct {
	X T
	Y T
}

// Pt returns a Point with the given components.
func Pt[T Number](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// Add returns the component-wise sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference of p and q.
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{X: p.X - q.X, Y: p.Y - q.Y} }

// AddScalar shifts both components by s.
func (p Point[T]) AddScalar(s T) Point[T] { return Point[T]{X: p.X + s, Y: p.Y + s} }

// MulScalar scales both components by s.
func (p Point[T]) MulScalar(s T) Point[T] { return Point[T]{X: p.X * s, Y: p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) T { return p.X*q.X + p.Y*q.Y }

// Product returns the product of the vector components.
func (p Point[T]) Product() T { return p.X * p.Y }

func (p Point[T]) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }
