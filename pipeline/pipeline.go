// Package pipeline chains buffer transformations together, runs hooks, and
// handles retries for transient steps.
package pipeline

import (
	"context"
	"time"

	"github.com/viktorchvatal/nanocv/core"
	apperrors "github.com/viktorchvatal/nanocv/errors"
)

// Step is the fundamental pipeline building block.  Each Step transforms a
// pixel buffer and must be safe for concurrent use across goroutines.
// Steps may mutate the input buffer in place and return it, or allocate a
// new buffer (size-changing steps must).
type Step[T core.Element] interface {
	Name() string
	Apply(ctx context.Context, img *core.Buffer[T]) (*core.Buffer[T], error)
}

// Hook is an optional observer invoked around pipeline steps.
type Hook[T core.Element] interface {
	BeforeStep(ctx context.Context, stepName string, img *core.Buffer[T])
	AfterStep(ctx context.Context, stepName string, img *core.Buffer[T], d time.Duration, err error)
}

// Pipeline executes a sequence of Steps with hook and retry support.
type Pipeline[T core.Element] struct {
	steps      []Step[T]
	hooks      []Hook[T]
	maxRetries int
	retryDelay time.Duration
}

// New returns an empty Pipeline.
func New[T core.Element]() *Pipeline[T] { return &Pipeline[T]{} }

// Use appends steps to the pipeline.  Returns the same Pipeline for chaining.
func (p *Pipeline[T]) Use(s ...Step[T]) *Pipeline[T] {
	p.steps = append(p.steps, s...)
	return p
}

// AddHook registers an observer.
func (p *Pipeline[T]) AddHook(h Hook[T]) *Pipeline[T] {
	p.hooks = append(p.hooks, h)
	return p
}

// WithRetry sets the maximum retry count and delay for transient failures.
func (p *Pipeline[T]) WithRetry(maxRetries int, delay time.Duration) *Pipeline[T] {
	p.maxRetries = maxRetries
	p.retryDelay = delay
	return p
}

// Run executes the pipeline on img.  It returns the final buffer and a map
// of per-step timing observations.
func (p *Pipeline[T]) Run(ctx context.Context, img *core.Buffer[T]) (*core.Buffer[T], map[string]time.Duration, error) {
	timings := make(map[string]time.Duration, len(p.steps))
	current := img

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return nil, timings, apperrors.Wrap(apperrors.CategoryPipeline, step.Name(), err)
		}

		result, elapsed, err := p.runStep(ctx, step, current)
		timings[step.Name()] = elapsed
		if err != nil {
			return nil, timings, err
		}
		current = result
	}
	return current, timings, nil
}

// runStep executes a single step, calling hooks and retrying transient errors.
func (p *Pipeline[T]) runStep(ctx context.Context, step Step[T], img *core.Buffer[T]) (*core.Buffer[T], time.Duration, error) {
	p.callHooksBefore(ctx, step.Name(), img)

	var (
		result  *core.Buffer[T]
		elapsed time.Duration
		err     error
	)

	attempts := p.maxRetries + 1
	for i := 0; i < attempts; i++ {
		start := time.Now()
		result, err = step.Apply(ctx, img)
		elapsed = time.Since(start)

		if err == nil {
			break
		}
		if !apperrors.IsRetryable(err) || i == attempts-1 {
			break
		}
		// Wait before retrying.
		select {
		case <-ctx.Done():
			err = apperrors.Wrap(apperrors.CategoryPipeline, step.Name(), ctx.Err())
			goto done
		case <-time.After(p.retryDelay):
		}
	}

done:
	p.callHooksAfter(ctx, step.Name(), result, elapsed, err)
	return result, elapsed, err
}

func (p *Pipeline[T]) callHooksBefore(ctx context.Context, name string, img *core.Buffer[T]) {
	for _, h := range p.hooks {
		h.BeforeStep(ctx, name, img)
	}
}

func (p *Pipeline[T]) callHooksAfter(ctx context.Context, name string, img *core.Buffer[T], d time.Duration, err error) {
	for _, h := range p.hooks {
		h.AfterStep(ctx, name, img, d, err)
	}
}

// Clone returns a shallow copy of the pipeline so templates can be reused
// safely across goroutines.
func (p *Pipeline[T]) Clone() *Pipeline[T] {
	cp := &Pipeline[T]{
		steps:      make([]Step[T], len(p.steps)),
		hooks:      make([]Hook[T], len(p.hooks)),
		maxRetries: p.maxRetries,
		retryDelay: p.retryDelay,
	}
	copy(cp.steps, p.steps)
	copy(cp.hooks, p.hooks)
	return cp
}
