package core

import "fmt"

// Views adapt a rectangular window of an existing image to the capability
// pair without copying pixels.  Engines see them as ordinary images, which
// is what lets filters run over sub-regions of foreign storage.

// View is a read-only zero-copy window into another image.
type View[T Element] struct {
	parent Image[T]
	x0, y0 int
	size   Size
}

// Crop returns a read-only view of the window of the given size whose
// top-left corner is at (x0, y0) in parent coordinates.  The window must
// lie fully inside the parent.
func Crop[T Element](parent Image[T], x0, y0 int, size Size) *View[T] {
	checkWindow(parent.Size(), x0, y0, size)
	return &View[T]{parent: parent, x0: x0, y0: y0, size: size}
}

// Size implements Image.
func (v *View[T]) Size() Size { return v.size }

// At implements Image.
func (v *View[T]) At(x, y int) T { return v.parent.At(x+v.x0, y+v.y0) }

// MutableView is a read-write zero-copy window into another image.
type MutableView[T Element] struct {
	parent MutableImage[T]
	x0, y0 int
	size   Size
}

// CropMut returns a mutable view of the window of the given size whose
// top-left corner is at (x0, y0) in parent coordinates.
func CropMut[T Element](parent MutableImage[T], x0, y0 int, size Size) *MutableView[T] {
	checkWindow(parent.Size(), x0, y0, size)
	return &MutableView[T]{parent: parent, x0: x0, y0: y0, size: size}
}

// Size implements Image.
func (v *MutableView[T]) Size() Size { return v.size }

// At implements Image.
func (v *MutableView[T]) At(x, y int) T { return v.parent.At(x+v.x0, y+v.y0) }

// Set implements MutableImage.
func (v *MutableView[T]) Set(x, y int, value T) { v.parent.Set(x+v.x0, y+v.y0, value) }

func checkWindow(parent Size, x0, y0 int, size Size) {
	if size.X < 0 || size.Y < 0 ||
		x0 < 0 || y0 < 0 || x0+size.X > parent.X || y0+size.Y > parent.Y {
		panic(fmt.Sprintf("core: crop window %s at (%d, %d) outside parent %s",
			size, x0, y0, parent))
	}
}

var (
	_ Image[int32]        = (*View[int32])(nil)
	_ MutableImage[int32] = (*MutableView[int32])(nil)
)
