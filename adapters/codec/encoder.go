package codec

import (
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	apperrors "github.com/viktorchvatal/nanocv/errors"
)

// PNGEncoder writes PNG.  Quality is ignored; PNG is lossless and the
// encoder maps it to the default compression level.
type PNGEncoder struct{}

func NewPNGEncoder() *PNGEncoder { return &PNGEncoder{} }

func (e *PNGEncoder) CanEncode(f Format) bool { return f == FormatPNG }

func (e *PNGEncoder) Encode(ctx context.Context, w io.Writer, img image.Image, quality int) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(apperrors.CategoryEncode, "png.encode", err)
	}
	if err := png.Encode(w, img); err != nil {
		return apperrors.New(apperrors.CategoryEncode, "png.encode", err)
	}
	return nil
}

// JPEGEncoder writes JPEG at the requested quality (1..100; values outside
// the range are clamped).
type JPEGEncoder struct{}

func NewJPEGEncoder() *JPEGEncoder { return &JPEGEncoder{} }

func (e *JPEGEncoder) CanEncode(f Format) bool { return f == FormatJPEG }

func (e *JPEGEncoder) Encode(ctx context.Context, w io.Writer, img image.Image, quality int) error {
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(apperrors.CategoryEncode, "jpeg.encode", err)
	}
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return apperrors.New(apperrors.CategoryEncode, "jpeg.encode", err)
	}
	return nil
}
