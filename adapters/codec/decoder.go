package codec

import (
	"context"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/webp"

	apperrors "github.com/viktorchvatal/nanocv/errors"
)

// PNGDecoder decodes PNG streams using the standard library.
type PNGDecoder struct{}

func NewPNGDecoder() *PNGDecoder { return &PNGDecoder{} }

func (d *PNGDecoder) CanDecode(f Format) bool { return f == FormatPNG }

func (d *PNGDecoder) Decode(ctx context.Context, r io.Reader) (Decoded, error) {
	if err := ctx.Err(); err != nil {
		return Decoded{}, apperrors.Wrap(apperrors.CategoryDecode, "png.decode", err)
	}
	img, err := png.Decode(r)
	if err != nil {
		return Decoded{}, apperrors.New(apperrors.CategoryDecode, "png.decode", err)
	}
	return Decoded{Image: img, Format: FormatPNG}, nil
}

// JPEGDecoder decodes JPEG streams using the standard library.
type JPEGDecoder struct{}

func NewJPEGDecoder() *JPEGDecoder { return &JPEGDecoder{} }

func (d *JPEGDecoder) CanDecode(f Format) bool { return f == FormatJPEG }

func (d *JPEGDecoder) Decode(ctx context.Context, r io.Reader) (Decoded, error) {
	if err := ctx.Err(); err != nil {
		return Decoded{}, apperrors.Wrap(apperrors.CategoryDecode, "jpeg.decode", err)
	}
	img, err := jpeg.Decode(r)
	if err != nil {
		return Decoded{}, apperrors.New(apperrors.CategoryDecode, "jpeg.decode", err)
	}
	return Decoded{Image: img, Format: FormatJPEG}, nil
}

// WebPDecoder decodes WebP streams via golang.org/x/image/webp.
type WebPDecoder struct{}

func NewWebPDecoder() *WebPDecoder { return &WebPDecoder{} }

func (d *WebPDecoder) CanDecode(f Format) bool { return f == FormatWebP }

func (d *WebPDecoder) Decode(ctx context.Context, r io.Reader) (Decoded, error) {
	if err := ctx.Err(); err != nil {
		return Decoded{}, apperrors.Wrap(apperrors.CategoryDecode, "webp.decode", err)
	}
	img, err := webp.Decode(r)
	if err != nil {
		return Decoded{}, apperrors.New(apperrors.CategoryDecode, "webp.decode", err)
	}
	return Decoded{Image: img, Format: FormatWebP}, nil
}
