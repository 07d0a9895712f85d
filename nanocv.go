// Package nanocv is a tiny image processing library built on owned 2-D
// pixel buffers.  The core data type is core.Buffer, a generic row-major
// buffer over any pixel element type; the filter package provides point
// transforms and separable convolution engines over the capability
// interfaces core.Image and core.MutableImage, so any backing storage that
// exposes those methods can participate.
//
// This file bundles the most common entry points so callers can get a blur
// going without touching the engine packages directly.
package nanocv

import (
	"github.com/viktorchvatal/nanocv/core"
	"github.com/viktorchvatal/nanocv/filter"
	"github.com/viktorchvatal/nanocv/workerpool"
)

// Re-exported core types.
type (
	Size                         = core.Size
	Buffer[T core.Element]       = core.Buffer[T]
	Image[T core.Element]        = core.Image[T]
	MutableImage[T core.Element] = core.MutableImage[T]
)

// NewSize constructs a Size from width and height.
func NewSize(width, height int) Size { return core.NewSize(width, height) }

// New allocates a zero-filled buffer of the given size.
func New[T core.Element](size Size) *Buffer[T] { return core.NewBuffer[T](size) }

// FromSlice wraps flat row-major data in a buffer, taking ownership of the
// slice.  It returns an error when len(data) does not equal size.Area().
func FromSlice[T core.Element](size Size, data []T) (*Buffer[T], error) {
	return core.FromSlice(size, data)
}

// BoxBlur convolves src with a (2*radius+1)-tap box kernel in both axes.
// Each pass leaves the pixels its kernel cannot reach at that pass's input
// values, so a radius-r frame around the result is only partially blurred.
func BoxBlur[T core.Float](src *Buffer[T], radius int) *Buffer[T] {
	return separableBlur(src, filter.BoxKernel[T](radius))
}

// GaussianBlur convolves src with a normalized gaussian kernel of the
// given radius and sigma in both axes.
func GaussianBlur[T core.Float](src *Buffer[T], radius int, sigma float64) *Buffer[T] {
	return separableBlur(src, filter.GaussianKernel[T](radius, sigma))
}

// ParallelBoxBlur is BoxBlur with rows partitioned across pool workers.
// The result is identical to the sequential variant.
func ParallelBoxBlur[T core.Float](pool *workerpool.Pool, src *Buffer[T], radius int) *Buffer[T] {
	return parallelSeparableBlur(pool, src, filter.BoxKernel[T](radius))
}

// ParallelGaussianBlur is GaussianBlur with rows partitioned across pool
// workers.
func ParallelGaussianBlur[T core.Float](pool *workerpool.Pool, src *Buffer[T], radius int, sigma float64) *Buffer[T] {
	return parallelSeparableBlur(pool, src, filter.GaussianKernel[T](radius, sigma))
}

// separableBlur runs one horizontal and one vertical pass.  Each pass
// starts from a copy of its input so untouched borders keep source values.
func separableBlur[T core.Float](src *Buffer[T], kernel []T) *Buffer[T] {
	tmp := src.Clone()
	filter.HorizontalFilter(src, tmp, kernel, filter.ConvolutionOperator[T], 0)
	out := tmp.Clone()
	filter.VerticalFilter(tmp, out, kernel, filter.ConvolutionOperator[T], 0)
	return out
}

func parallelSeparableBlur[T core.Float](pool *workerpool.Pool, src *Buffer[T], kernel []T) *Buffer[T] {
	tmp := src.Clone()
	filter.ParallelHorizontalFilter(pool, src, tmp, kernel, filter.ConvolutionOperator[T], 0)
	out := tmp.Clone()
	filter.ParallelVerticalFilter(pool, tmp, out, kernel, filter.ConvolutionOperator[T], 0)
	return out
}
