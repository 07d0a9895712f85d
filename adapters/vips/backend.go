//go:build cgo

// Package vips backs blur and resize with libvips via
// github.com/davidbyttow/govips.  Buffers travel to libvips as PNG bytes
// and come back the same way, so the core never sees a vips handle.
package vips

import (
	"bytes"
	"context"
	"image/png"
	"runtime"

	govips "github.com/davidbyttow/govips/v2/vips"

	"github.com/viktorchvatal/nanocv/adapters/codec"
	"github.com/viktorchvatal/nanocv/core"
	apperrors "github.com/viktorchvatal/nanocv/errors"
)

// BackendConfig configures the libvips backend.
type BackendConfig struct {
	MaxCacheSize int
	MaxWorkers   int
	ReportLeaks  bool
}

// Backend runs blur and resize through libvips.  Safe for concurrent use
// across goroutines.
type Backend struct {
	cfg BackendConfig
}

// NewBackend initialises libvips and returns a ready Backend.
// Call Shutdown() when the process exits.
func NewBackend(cfg BackendConfig) *Backend {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU()
	}
	govips.Startup(&govips.Config{
		ConcurrencyLevel: cfg.MaxWorkers,
		MaxCacheSize:     cfg.MaxCacheSize,
		ReportLeaks:      cfg.ReportLeaks,
	})
	return &Backend{cfg: cfg}
}

// Shutdown releases all libvips resources.  Call once at process exit.
func (b *Backend) Shutdown() {
	govips.Shutdown()
}

// GaussianBlur blurs img with the given sigma and returns a new buffer.
func (b *Backend) GaussianBlur(ctx context.Context, img core.Image[uint8], sigma float64) (*core.Buffer[uint8], error) {
	const op = "vips.blur"
	if sigma <= 0 {
		return nil, apperrors.New(apperrors.CategoryBackend, op, apperrors.ErrInvalidDimensions)
	}
	ref, err := b.open(ctx, op, img)
	if err != nil {
		return nil, err
	}
	defer ref.Close()
	if err := ref.GaussianBlur(sigma); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	return b.export(op, ref)
}

// Resize resamples img to the target size using the Lanczos3 kernel.
func (b *Backend) Resize(ctx context.Context, img core.Image[uint8], target core.Size) (*core.Buffer[uint8], error) {
	const op = "vips.resize"
	if target.X <= 0 || target.Y <= 0 {
		return nil, apperrors.New(apperrors.CategoryBackend, op, apperrors.ErrInvalidDimensions)
	}
	ref, err := b.open(ctx, op, img)
	if err != nil {
		return nil, err
	}
	defer ref.Close()
	size := img.Size()
	hScale := float64(target.X) / float64(size.X)
	vScale := float64(target.Y) / float64(size.Y)
	if err := ref.ResizeWithVScale(hScale, vScale, govips.KernelLanczos3); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	return b.export(op, ref)
}

func (b *Backend) open(ctx context.Context, op string, img core.Image[uint8]) (*govips.ImageRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	size := img.Size()
	if size.Area() == 0 {
		return nil, apperrors.New(apperrors.CategoryBackend, op, apperrors.ErrEmptyInput)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, codec.ToGray(img)); err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	ref, err := govips.NewImageFromBuffer(buf.Bytes())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	return ref, nil
}

func (b *Backend) export(op string, ref *govips.ImageRef) (*core.Buffer[uint8], error) {
	raw, _, err := ref.ExportPng(govips.NewPngExportParams())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CategoryBackend, op, err)
	}
	return codec.FromImage(decoded), nil
}
