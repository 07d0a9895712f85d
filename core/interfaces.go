package core

// The capability pair below is the polymorphism boundary of the library:
// any concrete storage (owned buffer, cropped view, foreign pixel container)
// that implements Image participates as a filter source, and additionally
// implementing MutableImage makes it a filter destination.  Engines never
// assume a concrete type.

// Sized reports 2-D dimensions.
type Sized interface {
	// Size returns image width and height, in pixels.
	Size() Size
}

// Image is read-only access to pixels, usually used as engine input.
//
// At(x, y) is defined only for 0 <= x < Size().X and 0 <= y < Size().Y;
// calling it outside those bounds is a programming error, not a recoverable
// condition.  Engines derive their iteration ranges from Size() and never
// issue such a call.
type Image[T Element] interface {
	Sized
	// At returns the pixel value at (x, y).
	At(x, y int) T
}

// MutableImage is read-write access to pixels, used as engine output.
// Set is under the same bounds contract as At.
type MutableImage[T Element] interface {
	Image[T]
	// Set writes the pixel value at (x, y).
	Set(x, y int, value T)
}

// RowReader is an optional fast-path capability: storage types whose rows
// are contiguous in memory can expose them as slices.  Engines type-assert
// for it and fall back to At/Set when the cast fails, so implementing it is
// never required for correctness.
type RowReader[T Element] interface {
	// Row returns the pixels of row y as a slice of length Size().X.
	// Writes through the slice are visible in the image.
	Row(y int) []T
}

// Logger is a minimal structured logging interface.  hooks.NewSlogLogger
// adapts log/slog to it.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}
