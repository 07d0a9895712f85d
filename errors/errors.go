package errors

import (
	"errors"
	"fmt"
)

// Category classifies error types for targeted handling and monitoring.
type Category string

const (
	CategoryConstruct Category = "construct"
	CategoryDecode    Category = "decode"
	CategoryEncode    Category = "encode"
	CategoryPipeline  Category = "pipeline"
	CategoryConfig    Category = "config"
	CategoryTransient Category = "transient"
	CategoryBackend   Category = "backend"
)

// PixelError is the structured error type used throughout the module.
type PixelError struct {
	Category  Category
	Op        string // operation name
	Err       error
	Retryable bool
}

func (e *PixelError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Category, e.Op, e.Err)
}

func (e *PixelError) Unwrap() error { return e.Err }

// New creates a non-retryable PixelError.
func New(category Category, op string, err error) *PixelError {
	return &PixelError{Category: category, Op: op, Err: err}
}

// Transient creates a retryable PixelError.
func Transient(op string, err error) *PixelError {
	return &PixelError{Category: CategoryTransient, Op: op, Err: err, Retryable: true}
}

// Wrap wraps an existing error with context.
func Wrap(category Category, op string, err error) error {
	if err == nil {
		return nil
	}
	return New(category, op, err)
}

// IsRetryable reports whether err represents a transient failure.
func IsRetryable(err error) bool {
	var pe *PixelError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// IsCategory reports whether err belongs to the given category.
func IsCategory(err error, cat Category) bool {
	var pe *PixelError
	if errors.As(err, &pe) {
		return pe.Category == cat
	}
	return false
}

// Sentinel errors for common failure modes.  ErrSizeMismatch (flat data
// length does not match the declared buffer area) is the only condition a
// well-behaved caller should expect to handle programmatically; everything
// else indicates a bug in the calling code or a failing collaborator.
var (
	ErrSizeMismatch      = errors.New("data length does not match buffer area")
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrEmptyInput        = errors.New("empty input")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrContextCanceled   = errors.New("context canceled")
)
