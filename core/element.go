package core

// Numeric constraints for pixel element types.  Engines are generic over
// Element; the arithmetic a specific combining operator needs (addition,
// multiplication) is closed over every type in the set, and the zero value
// doubles as the additive identity.

// Signed is a constraint for signed integer pixel types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is a constraint for unsigned integer pixel types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integer is a constraint for all integer pixel types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for floating-point pixel types.
type Float interface {
	~float32 | ~float64
}

// Element is the constraint any pixel element type must satisfy: trivially
// copyable, default-valued, and arithmetic-combinable.  Accumulator types
// may differ from stored element types (widen before convolution via
// filter.MapNew, narrow afterwards), never through implicit coercion.
type Element interface {
	Integer | Float
}
