//go:build cgo

package vips

import (
	"context"
	"errors"

	"github.com/viktorchvatal/nanocv/core"
	apperrors "github.com/viktorchvatal/nanocv/errors"
	"github.com/viktorchvatal/nanocv/pipeline"
)

var errBackendMissing = errors.New("vips backend not configured")

// BlurStep runs a libvips gaussian blur inside a pipeline.
type BlurStep struct {
	Backend *Backend
	Sigma   float64
}

func (s *BlurStep) Name() string { return "vips.blur" }

func (s *BlurStep) Apply(ctx context.Context, img *core.Buffer[uint8]) (*core.Buffer[uint8], error) {
	if s.Backend == nil {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(), errBackendMissing)
	}
	return s.Backend.GaussianBlur(ctx, img, s.Sigma)
}

// ResizeStep runs a libvips Lanczos3 resize inside a pipeline.
type ResizeStep struct {
	Backend *Backend
	Target  core.Size
}

func (s *ResizeStep) Name() string { return "vips.resize" }

func (s *ResizeStep) Apply(ctx context.Context, img *core.Buffer[uint8]) (*core.Buffer[uint8], error) {
	if s.Backend == nil {
		return nil, apperrors.New(apperrors.CategoryPipeline, s.Name(), errBackendMissing)
	}
	return s.Backend.Resize(ctx, img, s.Target)
}

var (
	_ pipeline.Step[uint8] = (*BlurStep)(nil)
	_ pipeline.Step[uint8] = (*ResizeStep)(nil)
)
