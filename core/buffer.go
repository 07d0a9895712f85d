package core

import (
	"fmt"

	apperrors "github.com/viktorchvatal/nanocv/errors"
)

// Buffer is the default owned pixel store: a single contiguous row-major
// slice of elements of length Size().Area().  It implements both Image and
// MutableImage, owns its storage exclusively (no aliasing), and is always
// fully initialized.
type Buffer[T Element] struct {
	size   Size
	pixels []T
}

// NewBuffer allocates a buffer of the given size with all elements set to
// the zero value of T.  Negative dimensions are a programming error.
func NewBuffer[T Element](size Size) *Buffer[T] {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("core: negative buffer size %s", size))
	}
	return &Buffer[T]{size: size, pixels: make([]T, size.Area())}
}

// NewBufferInit allocates a buffer with every element set to value.
func NewBufferInit[T Element](size Size, value T) *Buffer[T] {
	b := NewBuffer[T](size)
	for i := range b.pixels {
		b.pixels[i] = value
	}
	return b
}

// NewBufferLike allocates a zero-valued buffer with the same size as src.
// It is the usual way to produce convolution and point-transform
// destinations without re-deriving the size manually.
func NewBufferLike[T Element](src Sized) *Buffer[T] {
	return NewBuffer[T](src.Size())
}

// FromSlice wraps an existing flat row-major sequence without copying.
// It fails with errors.ErrSizeMismatch when len(data) != size.Area(); this
// is the only recoverable construction error in the library.
func FromSlice[T Element](size Size, data []T) (*Buffer[T], error) {
	if size.X < 0 || size.Y < 0 {
		return nil, apperrors.New(apperrors.CategoryConstruct, "buffer.from_slice",
			apperrors.ErrInvalidDimensions)
	}
	if len(data) != size.Area() {
		return nil, apperrors.New(apperrors.CategoryConstruct, "buffer.from_slice",
			fmt.Errorf("%w: got %d elements for %s (want %d)",
				apperrors.ErrSizeMismatch, len(data), size, size.Area()))
	}
	return &Buffer[T]{size: size, pixels: data}, nil
}

// MustFromSlice is FromSlice for statically known inputs (tests, fixtures);
// it panics on length mismatch.
func MustFromSlice[T Element](size Size, data []T) *Buffer[T] {
	b, err := FromSlice(size, data)
	if err != nil {
		panic(err)
	}
	return b
}

// Size implements Image.
func (b *Buffer[T]) Size() Size { return b.size }

// At implements Image.  Out-of-range coordinates panic.
func (b *Buffer[T]) At(x, y int) T {
	if !b.size.Contains(x, y) {
		panic(fmt.Sprintf("core: At(%d, %d) outside %s", x, y, b.size))
	}
	return b.pixels[y*b.size.X+x]
}

// Set implements MutableImage.  Out-of-range coordinates panic.
func (b *Buffer[T]) Set(x, y int, value T) {
	if !b.size.Contains(x, y) {
		panic(fmt.Sprintf("core: Set(%d, %d) outside %s", x, y, b.size))
	}
	b.pixels[y*b.size.X+x] = value
}

// Row implements RowReader: the pixels of row y as a contiguous slice.
// Writes through the slice are visible in the buffer.  Engines use this
// fast path to keep per-pixel interface calls out of hot loops.
func (b *Buffer[T]) Row(y int) []T {
	start := y * b.size.X
	return b.pixels[start : start+b.size.X]
}

// IntoSlice transfers ownership of the flat backing sequence out of the
// buffer and leaves it empty.  The buffer must not be used afterwards.
func (b *Buffer[T]) IntoSlice() []T {
	p := b.pixels
	b.pixels = nil
	b.size = Size{}
	return p
}

// Clone returns a deep copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	out := make([]T, len(b.pixels))
	copy(out, b.pixels)
	return &Buffer[T]{size: b.size, pixels: out}
}

// Equal reports whether both buffers have the same size and identical
// element values.
func (b *Buffer[T]) Equal(other *Buffer[T]) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.pixels {
		if b.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

var (
	_ Image[uint8]        = (*Buffer[uint8])(nil)
	_ MutableImage[uint8] = (*Buffer[uint8])(nil)
	_ RowReader[uint8]    = (*Buffer[uint8])(nil)
)
