package pipeline

import (
	"context"
	"fmt"

	"github.com/viktorchvatal/nanocv/core"
	apperrors "github.com/viktorchvatal/nanocv/errors"
	"github.com/viktorchvatal/nanocv/filter"
	"github.com/viktorchvatal/nanocv/workerpool"
)

// Built-in steps wrapping the filter engines.  Steps form the checked outer
// layer: they validate their parameters and return typed errors, so a
// pipeline never trips the engines' contract panics.

// UpdateStep applies a pure per-pixel function in place.
type UpdateStep[T core.Element] struct {
	StepName string // optional; default "update"
	Fn       func(T) T

	// Pool enables the row-partitioned variant; nil runs sequentially.
	Pool *workerpool.Pool
}

func (s *UpdateStep[T]) Name() string {
	if s.StepName != "" {
		return s.StepName
	}
	return "update"
}

func (s *UpdateStep[T]) Apply(ctx context.Context, img *core.Buffer[T]) (*core.Buffer[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryPipeline, s.Name(), err)
	}
	if s.Fn == nil {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(), apperrors.ErrEmptyInput)
	}
	if s.Pool != nil {
		filter.ParallelUpdate(s.Pool, img, s.Fn)
	} else {
		filter.Update(img, s.Fn)
	}
	return img, nil
}

// ConvolveStep applies a 1-D multiply-accumulate convolution along one
// axis.  The destination is pre-initialized with a copy of the source, so
// the untouched border keeps the source values.
type ConvolveStep[T core.Element] struct {
	Kernel   []T
	Vertical bool

	// Pool enables the row-partitioned variant; nil runs sequentially.
	Pool *workerpool.Pool
}

func (s *ConvolveStep[T]) Name() string {
	if s.Vertical {
		return "convolve.vertical"
	}
	return "convolve.horizontal"
}

func (s *ConvolveStep[T]) Apply(ctx context.Context, img *core.Buffer[T]) (*core.Buffer[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryPipeline, s.Name(), err)
	}
	if len(s.Kernel) == 0 {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(),
			fmt.Errorf("%w: empty kernel", apperrors.ErrEmptyInput))
	}

	var zero T
	dst := img.Clone()
	switch {
	case s.Pool != nil && s.Vertical:
		filter.ParallelVerticalFilter(s.Pool, img, dst, s.Kernel, filter.ConvolutionOperator[T], zero)
	case s.Pool != nil:
		filter.ParallelHorizontalFilter(s.Pool, img, dst, s.Kernel, filter.ConvolutionOperator[T], zero)
	case s.Vertical:
		filter.VerticalFilter(img, dst, s.Kernel, filter.ConvolutionOperator[T], zero)
	default:
		filter.HorizontalFilter(img, dst, s.Kernel, filter.ConvolutionOperator[T], zero)
	}
	return dst, nil
}

// MirrorStep reverses the image along one axis.
type MirrorStep[T core.Element] struct {
	Vertical bool
}

func (s *MirrorStep[T]) Name() string {
	if s.Vertical {
		return "mirror.vertical"
	}
	return "mirror.horizontal"
}

func (s *MirrorStep[T]) Apply(ctx context.Context, img *core.Buffer[T]) (*core.Buffer[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryPipeline, s.Name(), err)
	}
	if s.Vertical {
		return filter.MirrorVerticalNew[T](img), nil
	}
	return filter.MirrorHorizontalNew[T](img), nil
}

// ResizeNearestStep scales the buffer by nearest-neighbor sampling.
type ResizeNearestStep[T core.Element] struct {
	Target core.Size
}

func (s *ResizeNearestStep[T]) Name() string { return "resize.nearest" }

func (s *ResizeNearestStep[T]) Apply(ctx context.Context, img *core.Buffer[T]) (*core.Buffer[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryPipeline, s.Name(), err)
	}
	if s.Target.X <= 0 || s.Target.Y <= 0 {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(),
			apperrors.ErrInvalidDimensions)
	}
	return filter.ResizeNearestNew[T](img, s.Target), nil
}
